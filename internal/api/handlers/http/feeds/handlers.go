package feeds

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Feeds interface {
	SocialMedia(ctx context.Context, disasterID uuid.UUID) ([]domain.SocialPost, error)
	OfficialUpdates(ctx context.Context) ([]domain.OfficialUpdate, error)
	NearbyResources(ctx context.Context, lat, lon float64) ([]*domain.Resource, error)
}

type Handler struct {
	logger *slog.Logger
	Feeds  Feeds
}

func NewHandler(logger *slog.Logger, feeds Feeds) *Handler {
	return &Handler{
		logger: logger,
		Feeds:  feeds,
	}
}

func (h *Handler) SocialMedia(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	posts, err := h.Feeds.SocialMedia(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("social media served", slog.String("disaster_id", idStr), slog.Int("count", len(posts)))
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) OfficialUpdates(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	updates, err := h.Feeds.OfficialUpdates(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("official updates served", slog.Int("count", len(updates)))
	h.writeJSON(w, http.StatusOK, updates)
}

func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude and longitude are required"})
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		l.Warn("invalid coordinates", slog.String("lat", latStr), slog.String("lon", lonStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lon must be numbers"})
		return
	}

	resources, err := h.Feeds.NearbyResources(r.Context(), lat, lon)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("resources served", slog.Int("count", len(resources)))
	h.writeJSON(w, http.StatusOK, resources)
}
