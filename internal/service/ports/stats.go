package ports

import (
	"context"
	"time"
)

type StatsRepo interface {
	CountUsers(ctx context.Context) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
	CountSignupsSince(ctx context.Context, since time.Time) (int, error)
	PaidRevenue(ctx context.Context) (float64, error)
}
