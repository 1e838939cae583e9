package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// verifyCacheKeyPrefix namespaces verification entries; the report id
// makes the key collision-free.
const verifyCacheKeyPrefix = "verify_image_"

type reportService struct {
	repo      ReportRepository
	analyzer  ImageAnalyzer
	cache     Cache
	publisher Publisher
	verifyTTL time.Duration
	logger    *slog.Logger
}

func NewReportService(
	repo ReportRepository,
	analyzer ImageAnalyzer,
	cache Cache,
	publisher Publisher,
	verifyTTL time.Duration,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		repo:      repo,
		analyzer:  analyzer,
		cache:     cache,
		publisher: publisher,
		verifyTTL: verifyTTL,
		logger:    logger,
	}
}

func (s *reportService) Create(ctx context.Context, user domain.User, req domain.CreateReportRequest) (*domain.Report, error) {
	disasterID, err := uuid.Parse(req.DisasterID)
	if err != nil {
		return nil, fmt.Errorf("disaster_id: %w", e.ErrInvalidInput)
	}

	// The disaster link is referential only; existence is not enforced
	// at this layer.
	r := &domain.Report{
		ID:         uuid.New(),
		DisasterID: disasterID,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		UserID:     user.ID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("report created",
		slog.String("id", r.ID.String()),
		slog.String("disaster_id", r.DisasterID.String()),
		slog.String("user", user.ID),
	)
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventDisasterUpdated,
		Action:  "report_created",
		Payload: r,
	})

	return r, nil
}

// VerifyImage returns a well-formed result in every case: a failed
// model call still yields an analysis string and classifies, typically
// as inconclusive. An unexpired cached result short-circuits the
// external call entirely.
func (s *reportService) VerifyImage(ctx context.Context, req domain.VerifyImageRequest) (domain.VerificationResult, error) {
	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("reportId: %w", e.ErrInvalidInput)
	}

	cacheKey := verifyCacheKeyPrefix + req.ReportID

	var cached domain.VerificationResult
	if s.cache.Get(ctx, cacheKey, &cached) {
		s.logger.Debug("verification cache hit", slog.String("report_id", req.ReportID))
		return cached, nil
	}

	analysis := s.analyzer.Analyze(ctx, req.ImageURL)
	status := domain.ClassifyAnalysis(analysis)

	// Best-effort persistence: the verification result is still
	// returned when the record write fails, but the miss is observable.
	if err := s.repo.SetVerificationStatus(ctx, reportID, status); err != nil {
		s.logger.Warn("verification status persistence failed",
			slog.String("report_id", req.ReportID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}

	result := domain.VerificationResult{
		ReportID: reportID,
		Status:   status,
		Analysis: analysis,
	}
	s.cache.Set(ctx, cacheKey, result, s.verifyTTL)

	s.logger.Info("image verified",
		slog.String("report_id", req.ReportID),
		slog.String("status", string(status)),
	)
	s.publisher.Publish(ctx, domain.Event{
		Name:    domain.EventReportVerified,
		Action:  "verify",
		Payload: result,
	})

	return result, nil
}
