package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingApproved(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking, refunded bool)
}
