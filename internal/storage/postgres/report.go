package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, r *domain.Report) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports (id, disaster_id, content, image_url, user_id, verification_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		r.ID,
		r.DisasterID,
		r.Content,
		r.ImageURL,
		r.UserID,
		string(r.VerificationStatus),
		r.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// SetVerificationStatus overwrites the status. Re-verification is an
// idempotent overwrite.
func (p *ReportRepo) SetVerificationStatus(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error {
	const op = "postgres.Report.SetVerificationStatus"

	const query = `UPDATE reports SET verification_status = $2 WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
