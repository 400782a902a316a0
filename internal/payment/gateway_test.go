package payment

import (
	"context"
	"testing"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	assert.Equal(t, "FAKE-UPI-000042", Reference(42, "upi"))
	assert.Equal(t, "FAKE-CARD-000007", Reference(7, ""))
	assert.Equal(t, "FAKE-NETBANKING-1234567", Reference(1234567, " NetBanking "))
}

func TestSimulatedGateway_Charge(t *testing.T) {
	g := NewSimulatedGateway()

	ref, err := g.Charge(context.Background(), &domain.Booking{ID: 42}, "upi")

	require.NoError(t, err)
	assert.Equal(t, "FAKE-UPI-000042", ref)
}

func TestSimulatedGateway_Refund(t *testing.T) {
	g := NewSimulatedGateway()

	assert.NoError(t, g.Refund(context.Background(), &domain.Booking{ID: 1}, 5000))
	assert.ErrorIs(t, g.Refund(context.Background(), &domain.Booking{ID: 1}, -1), domain.ErrValidation)
}
