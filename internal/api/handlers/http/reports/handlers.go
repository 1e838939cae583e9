package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/middleware"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Create(ctx context.Context, user domain.User, req domain.CreateReportRequest) (*domain.Report, error)
	VerifyImage(ctx context.Context, req domain.VerifyImageRequest) (domain.VerificationResult, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports Reports
}

func NewHandler(logger *slog.Logger, reports Reports) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
	}
}

func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid report request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "disaster_id and content are required"})
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	report, err := h.Reports.Create(r.Context(), user, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("disaster_id", report.DisasterID.String()),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) VerifyImage(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.VerifyImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid verify request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reportId and imageUrl are required"})
		return
	}

	result, err := h.Reports.VerifyImage(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("image verification served",
		slog.String("report_id", req.ReportID),
		slog.String("status", string(result.Status)),
	)
	h.writeJSON(w, http.StatusOK, result)
}
