package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Use-case surfaces exposed to the HTTP layer.

type DisasterService interface {
	Create(ctx context.Context, user domain.User, req domain.CreateDisasterRequest) (*domain.Disaster, error)
	List(ctx context.Context, tag string) ([]*domain.Disaster, error)
	Update(ctx context.Context, user domain.User, id uuid.UUID, req domain.UpdateDisasterRequest) (*domain.Disaster, error)
	Delete(ctx context.Context, user domain.User, id uuid.UUID) error
}

type ReportService interface {
	Create(ctx context.Context, user domain.User, req domain.CreateReportRequest) (*domain.Report, error)
	VerifyImage(ctx context.Context, req domain.VerifyImageRequest) (domain.VerificationResult, error)
}

type FeedService interface {
	SocialMedia(ctx context.Context, disasterID uuid.UUID) ([]domain.SocialPost, error)
	OfficialUpdates(ctx context.Context) ([]domain.OfficialUpdate, error)
	NearbyResources(ctx context.Context, lat, lon float64) ([]*domain.Resource, error)
}

// Storage collaborators.

type DisasterRepository interface {
	Create(ctx context.Context, d *domain.Disaster) error
	List(ctx context.Context, tag string) ([]*domain.Disaster, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Disaster, error)
	Update(ctx context.Context, d *domain.Disaster) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	SetVerificationStatus(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error
}

type ResourceRepository interface {
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*domain.Resource, error)
}

// External collaborators, all modeled as narrow ports so the fragile
// free-text matching behind them can be swapped without touching
// callers.

type LocationExtractor interface {
	Extract(ctx context.Context, text string) string
}

type Geocoder interface {
	Geocode(ctx context.Context, locationName string) (domain.Coordinates, bool)
}

type ImageAnalyzer interface {
	Analyze(ctx context.Context, imageURL string) string
}

type UpdatesFetcher interface {
	Fetch(ctx context.Context) ([]domain.OfficialUpdate, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

// Publisher is the fan-out side-effect port called after successful
// state changes. Implementations must not fail the calling operation.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event)
}

type Service struct {
	Disasters DisasterService
	Reports   ReportService
	Feeds     FeedService
}

func NewService(disasters DisasterService, reports ReportService, feeds FeedService) *Service {
	return &Service{
		Disasters: disasters,
		Reports:   reports,
		Feeds:     feeds,
	}
}
