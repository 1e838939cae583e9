package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// Resolver turns an incoming disaster submission into a storable
// location: use the supplied name or extract one from the description,
// then geocode it. A strict two-stage pipeline with no retry and no
// fallback geocoder; a failure at either stage is terminal for the
// request and surfaces as a client-facing rejection.
type Resolver struct {
	extractor LocationExtractor
	geocoder  Geocoder
	logger    *slog.Logger
}

func NewResolver(extractor LocationExtractor, geocoder Geocoder, logger *slog.Logger) *Resolver {
	return &Resolver{
		extractor: extractor,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Resolve returns the resolved location name and its coordinates.
// Errors: e.ErrLocationUndetermined when no candidate name exists,
// e.ErrGeocodeFailed (wrapped with the candidate) when geocoding finds
// nothing.
func (r *Resolver) Resolve(ctx context.Context, suppliedName, description string) (string, domain.Coordinates, error) {
	candidate := strings.TrimSpace(suppliedName)
	if candidate == "" {
		candidate = r.extractor.Extract(ctx, description)
	}

	if candidate == "" {
		r.logger.Info("location resolution rejected: no candidate name")
		return "", domain.Coordinates{}, e.ErrLocationUndetermined
	}

	coords, ok := r.geocoder.Geocode(ctx, candidate)
	if !ok {
		r.logger.Info("location resolution rejected: geocode miss", slog.String("candidate", candidate))
		return "", domain.Coordinates{}, e.GeocodeFailed(candidate)
	}

	return candidate, coords, nil
}
