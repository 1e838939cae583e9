package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

type disasterService struct {
	repo      DisasterRepository
	resolver  *Resolver
	publisher Publisher
	logger    *slog.Logger
}

func NewDisasterService(repo DisasterRepository, resolver *Resolver, publisher Publisher, logger *slog.Logger) DisasterService {
	return &disasterService{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// Create resolves the location first; nothing is written when
// resolution fails, so no partial records exist.
func (s *disasterService) Create(ctx context.Context, user domain.User, req domain.CreateDisasterRequest) (*domain.Disaster, error) {
	locationName, coords, err := s.resolver.Resolve(ctx, req.LocationName, req.Description)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &domain.Disaster{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Tags:         domain.SplitTags(req.Tags),
		OwnerID:      user.ID,
		LocationName: locationName,
		Location:     coords,
		AuditTrail: []domain.AuditEntry{
			{Action: domain.AuditActionCreate, UserID: user.ID, Timestamp: now},
		},
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("disaster created",
		slog.String("id", d.ID.String()),
		slog.String("title", d.Title),
		slog.String("owner", user.ID),
		slog.String("location", d.LocationName),
	)
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventDisasterUpdated,
		Action:  domain.AuditActionCreate,
		Payload: d,
	})

	return d, nil
}

func (s *disasterService) List(ctx context.Context, tag string) ([]*domain.Disaster, error) {
	return s.repo.List(ctx, tag)
}

// Update is restricted to the record owner or an admin. Every update
// appends exactly one audit entry; prior entries are never rewritten.
func (s *disasterService) Update(ctx context.Context, user domain.User, id uuid.UUID, req domain.UpdateDisasterRequest) (*domain.Disaster, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() && d.OwnerID != user.ID {
		s.logger.Warn("disaster update forbidden",
			slog.String("id", id.String()),
			slog.String("user", user.ID),
			slog.String("owner", d.OwnerID),
		)
		return nil, e.ErrForbidden
	}

	d.Title = req.Title
	d.Description = req.Description
	d.Tags = domain.SplitTags(req.Tags)
	d.AuditTrail = append(d.AuditTrail, domain.AuditEntry{
		Action:    domain.AuditActionUpdate,
		UserID:    user.ID,
		Timestamp: time.Now().UTC(),
	})

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("disaster updated", slog.String("id", id.String()), slog.String("user", user.ID))
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventDisasterUpdated,
		Action:  domain.AuditActionUpdate,
		Payload: d,
	})

	return d, nil
}

func (s *disasterService) Delete(ctx context.Context, user domain.User, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("disaster deleted", slog.String("id", id.String()), slog.String("user", user.ID))
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventDisasterUpdated,
		Action:  "delete",
		Payload: map[string]string{"id": id.String()},
	})

	return nil
}
