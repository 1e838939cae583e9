package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

type ResourceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResourceRepo(pool *pgxpool.Pool, logger *slog.Logger) *ResourceRepo {
	return &ResourceRepo{pool: pool, logger: logger}
}

// FindNearby returns resources within radiusMeters of the point,
// closest first. geo_point is cast to geography so ST_DWithin measures
// in meters, not degrees.
func (p *ResourceRepo) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*domain.Resource, error) {
	const op = "postgres.Resource.FindNearby"

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 || radiusMeters <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT id,
       name,
       type,
       location_name,
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       ST_Distance(geo_point::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m,
       created_at
FROM resources
WHERE ST_DWithin(
    geo_point::geography,
    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
    $3
  )
ORDER BY distance_m
`

	rows, err := p.pool.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0, 8)
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Type,
			&res.LocationName,
			&res.Location.Lat,
			&res.Location.Lon,
			&res.DistanceMeters,
			&res.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		resources = append(resources, &res)
	}

	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return resources, nil
}
