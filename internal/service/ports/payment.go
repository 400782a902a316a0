package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

// PaymentGateway charges and refunds bookings. The shipped implementation is
// a simulation; a real provider can be substituted here.
type PaymentGateway interface {
	Charge(ctx context.Context, b *domain.Booking, method string) (string, error)
	Refund(ctx context.Context, b *domain.Booking, amount float64) error
}
