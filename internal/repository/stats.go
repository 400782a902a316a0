package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type StatsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStatsRepo(db *dbpg.DB) *StatsRepository {
	return &StatsRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE last_login >= $1`, since)
}

func (r *StatsRepository) CountSignupsSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
}

// PaidRevenue sums the event price over every booking currently marked paid.
func (r *StatsRepository) PaidRevenue(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(e.price), 0)
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.paid = TRUE`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("paid revenue: %w", err)
	}

	var total float64
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan revenue: %w", err)
	}

	return total, nil
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return n, nil
}
