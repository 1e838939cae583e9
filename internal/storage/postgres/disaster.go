package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

type DisasterRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDisasterRepo(pool *pgxpool.Pool, logger *slog.Logger) *DisasterRepo {
	return &DisasterRepo{pool: pool, logger: logger}
}

func (p *DisasterRepo) Create(ctx context.Context, d *domain.Disaster) error {
	const op = "postgres.Disaster.Create"

	const query = `
		INSERT INTO disasters (id, title, description, tags, owner_id, location_name, geo_point, audit_trail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9, $10)
	`

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	trail, err := json.Marshal(d.AuditTrail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	_, err = p.pool.Exec(ctx, query,
		d.ID,
		d.Title,
		d.Description,
		d.Tags,
		d.OwnerID,
		d.LocationName,
		d.Location.Lon,
		d.Location.Lat,
		trail,
		d.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const disasterColumns = `
	id,
	title,
	description,
	tags,
	owner_id,
	location_name,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	audit_trail,
	created_at
`

// List returns disasters newest first, optionally filtered by tag.
func (p *DisasterRepo) List(ctx context.Context, tag string) ([]*domain.Disaster, error) {
	const op = "postgres.Disaster.List"

	query := `SELECT ` + disasterColumns + ` FROM disasters ORDER BY created_at DESC`
	args := []any{}
	if tag != "" {
		query = `SELECT ` + disasterColumns + ` FROM disasters WHERE $1 = ANY(tags) ORDER BY created_at DESC`
		args = append(args, tag)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	disasters := make([]*domain.Disaster, 0)
	for rows.Next() {
		d, err := scanDisaster(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		disasters = append(disasters, d)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return disasters, nil
}

func (p *DisasterRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Disaster, error) {
	const op = "postgres.Disaster.Get"

	query := `SELECT ` + disasterColumns + ` FROM disasters WHERE id = $1`

	row := p.pool.QueryRow(ctx, query, id)
	d, err := scanDisaster(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return d, nil
}

// Update rewrites the mutable fields and the full audit trail. The
// trail is append-only at the service layer; this write only ever
// carries the existing entries plus the new one.
func (p *DisasterRepo) Update(ctx context.Context, d *domain.Disaster) error {
	const op = "postgres.Disaster.Update"

	const query = `
		UPDATE disasters
		SET title       = $2,
			description = $3,
			tags        = $4,
			audit_trail = $5
		WHERE id = $1
	`

	trail, err := json.Marshal(d.AuditTrail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	cmd, err := p.pool.Exec(ctx, query, d.ID, d.Title, d.Description, d.Tags, trail)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", d.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *DisasterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Disaster.Delete"

	const query = `DELETE FROM disasters WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanDisaster(row pgx.Row) (*domain.Disaster, error) {
	var (
		d     domain.Disaster
		trail []byte
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Tags,
		&d.OwnerID,
		&d.LocationName,
		&d.Location.Lat,
		&d.Location.Lon,
		&trail,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(trail) > 0 {
		if err := json.Unmarshal(trail, &d.AuditTrail); err != nil {
			return nil, err
		}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d, nil
}
