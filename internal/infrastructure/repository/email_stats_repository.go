package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db/models"
)

const incrementStatsSQL = `
INSERT INTO email_stats (id, success_count, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (id) DO UPDATE
  SET success_count = email_stats.success_count + EXCLUDED.success_count,
      updated_at = NOW()
RETURNING success_count
`

const getStatsSQL = `SELECT success_count FROM email_stats WHERE id = $1`

// rowQuerier is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type EmailStatsRepository struct {
	db rowQuerier
}

func NewEmailStatsRepository(db rowQuerier) *EmailStatsRepository {
	return &EmailStatsRepository{db: db}
}

// Increment adds by to the singleton counter in one upsert statement, so
// overlapping batches never lose updates.
func (r *EmailStatsRepository) Increment(ctx context.Context, by int64) (domain.EmailStats, error) {
	if by <= 0 {
		return domain.EmailStats{}, domain.ErrInvalidIncrement
	}

	var count int64
	if err := r.db.QueryRow(ctx, incrementStatsSQL, models.SingletonID, by).Scan(&count); err != nil {
		return domain.EmailStats{}, fmt.Errorf("increment email stats: %w", err)
	}

	return domain.EmailStats{SuccessCount: count}, nil
}

func (r *EmailStatsRepository) Get(ctx context.Context) (domain.EmailStats, error) {
	var count int64
	err := r.db.QueryRow(ctx, getStatsSQL, models.SingletonID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EmailStats{}, nil
		}
		return domain.EmailStats{}, fmt.Errorf("get email stats: %w", err)
	}

	return domain.EmailStats{SuccessCount: count}, nil
}
