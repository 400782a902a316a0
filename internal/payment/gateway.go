// Package payment holds the simulated payment gateway. No money moves: a
// charge yields a deterministic reference and a refund only returns nil.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

const DefaultMethod = "CARD"

type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

// Charge returns FAKE-<METHOD>-<booking id padded to 6 digits>.
func (g *SimulatedGateway) Charge(_ context.Context, b *domain.Booking, method string) (string, error) {
	return Reference(b.ID, method), nil
}

func (g *SimulatedGateway) Refund(_ context.Context, _ *domain.Booking, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: refund amount must not be negative", domain.ErrValidation)
	}
	return nil
}

// NormalizeMethod upper-cases method and substitutes DefaultMethod for blanks.
func NormalizeMethod(method string) string {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		return DefaultMethod
	}
	return m
}

func Reference(bookingID int64, method string) string {
	return fmt.Sprintf("FAKE-%s-%06d", NormalizeMethod(method), bookingID)
}
