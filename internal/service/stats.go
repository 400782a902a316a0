package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
)

const (
	DashboardActivityLimit = 20
	AdminActivityLimit     = 100
	MaxActivityLimit       = 1000
)

type StatsService struct {
	repo     ports.StatsRepo
	activity ports.ActivityLog
	now      func() time.Time
}

func NewStatsService(repo ports.StatsRepo, activity ports.ActivityLog) *StatsService {
	return &StatsService{repo: repo, activity: activity, now: time.Now}
}

func (s *StatsService) Dashboard(ctx context.Context, actor *domain.Actor) (*domain.Dashboard, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		d   domain.Dashboard
		err error
	)
	if d.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if d.ActiveToday, err = s.repo.CountActiveSince(ctx, today); err != nil {
		return nil, fmt.Errorf("count active users: %w", err)
	}
	if d.NewSignups, err = s.repo.CountSignupsSince(ctx, today); err != nil {
		return nil, fmt.Errorf("count signups: %w", err)
	}
	if d.TotalRevenue, err = s.repo.PaidRevenue(ctx); err != nil {
		return nil, fmt.Errorf("paid revenue: %w", err)
	}
	if d.Activity, err = s.activity.ReadRecent(ctx, DashboardActivityLimit); err != nil {
		return nil, err
	}

	return &d, nil
}

// Activity returns the admin activity feed. A non-positive limit selects
// AdminActivityLimit; larger limits are capped at MaxActivityLimit.
func (s *StatsService) Activity(ctx context.Context, actor *domain.Actor, limit int) ([]domain.ActivityEntry, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = AdminActivityLimit
	}
	limit = min(limit, MaxActivityLimit)
	return s.activity.ReadRecent(ctx, limit)
}
