package disasters

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/internal/middleware"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Disasters interface {
	Create(ctx context.Context, user domain.User, req domain.CreateDisasterRequest) (*domain.Disaster, error)
	List(ctx context.Context, tag string) ([]*domain.Disaster, error)
	Update(ctx context.Context, user domain.User, id uuid.UUID, req domain.UpdateDisasterRequest) (*domain.Disaster, error)
	Delete(ctx context.Context, user domain.User, id uuid.UUID) error
}

type Handler struct {
	logger    *slog.Logger
	Disasters Disasters
}

func NewHandler(logger *slog.Logger, disasters Disasters) *Handler {
	return &Handler{
		logger:    logger,
		Disasters: disasters,
	}
}

func (h *Handler) DisasterCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateDisasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid create request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and description are required"})
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	l.Info("creating disaster",
		slog.String("title", req.Title),
		slog.String("user", user.ID),
		slog.String("location_name", req.LocationName),
	)

	d, err := h.Disasters.Create(r.Context(), user, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("disaster created", slog.String("id", d.ID.String()))
	h.writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) DisasterList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	tag := r.URL.Query().Get("tag")

	disasters, err := h.Disasters.List(r.Context(), tag)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("disasters listed", slog.Int("count", len(disasters)), slog.String("tag", tag))
	h.writeJSON(w, http.StatusOK, disasters)
}

func (h *Handler) DisasterUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateDisasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid update request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and description are required"})
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	d, err := h.Disasters.Update(r.Context(), user, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) DisasterDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	if err := h.Disasters.Delete(r.Context(), user, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("disaster deleted", slog.String("id", id.String()), slog.String("user", user.ID))
	w.WriteHeader(http.StatusNoContent)
}
