package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type ActivityLog interface {
	Append(ctx context.Context, kind domain.ActivityKind, message string) error
	ReadRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
