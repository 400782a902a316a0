package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	// Transition persists status, payment and rejection fields of b only if
	// the stored status still equals from.
	Transition(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error
}
