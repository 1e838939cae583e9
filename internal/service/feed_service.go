package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

const updatesCacheKey = "official_updates_fema"

type feedService struct {
	resources  ResourceRepository
	fetcher    UpdatesFetcher
	cache      Cache
	publisher  Publisher
	updatesTTL time.Duration
	radius     float64
	logger     *slog.Logger
}

func NewFeedService(
	resources ResourceRepository,
	fetcher UpdatesFetcher,
	cache Cache,
	publisher Publisher,
	updatesTTL time.Duration,
	radiusMeters float64,
	logger *slog.Logger,
) FeedService {
	if radiusMeters <= 0 {
		radiusMeters = 10000
	}
	return &feedService{
		resources:  resources,
		fetcher:    fetcher,
		cache:      cache,
		publisher:  publisher,
		updatesTTL: updatesTTL,
		radius:     radiusMeters,
		logger:     logger,
	}
}

// SocialMedia serves a mock feed; a real deployment would hit a social
// platform API here.
func (s *feedService) SocialMedia(ctx context.Context, disasterID uuid.UUID) ([]domain.SocialPost, error) {
	posts := []domain.SocialPost{
		{User: "citizen1", Post: "#floodrelief Need food in Lower East Side"},
		{User: "helper22", Post: "We have blankets and water at the community center. #NYCHelp"},
		{User: "sos_alert", Post: "URGENT: Family trapped on rooftop at 123 Flood St. #SOS"},
	}

	s.publisher.Publish(ctx, domain.Event{
		Name: domain.EventSocialMediaUpdated,
		Payload: map[string]any{
			"disaster_id": disasterID.String(),
			"posts":       posts,
		},
	})

	return posts, nil
}

// OfficialUpdates serves the cached scrape inside its TTL and refetches
// on miss. A failed or empty scrape degrades to an empty list and is
// not cached, so the next request retries the source.
func (s *feedService) OfficialUpdates(ctx context.Context) ([]domain.OfficialUpdate, error) {
	var cached []domain.OfficialUpdate
	if s.cache.Get(ctx, updatesCacheKey, &cached) {
		s.logger.Debug("official updates cache hit", slog.String("key", updatesCacheKey))
		return cached, nil
	}

	updates, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("official updates fetch failed", slog.Any("error", err))
		return []domain.OfficialUpdate{}, nil
	}

	if len(updates) > 0 {
		s.cache.Set(ctx, updatesCacheKey, updates, s.updatesTTL)
	}

	return updates, nil
}

func (s *feedService) NearbyResources(ctx context.Context, lat, lon float64) ([]*domain.Resource, error) {
	resources, err := s.resources.FindNearby(ctx, lat, lon, s.radius)
	if err != nil {
		return nil, err
	}

	s.logger.Info("resources fetched", slog.Int("count", len(resources)))
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventResourcesUpdated,
		Payload: map[string]any{"resources": resources},
	})

	return resources, nil
}
