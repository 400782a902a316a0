package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/activity"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/payment"
	"github.com/stpnv0/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestActivity() *activity.Log {
	return activity.NewLog(activity.NewMemoryJournal(), activity.WithLocation(time.UTC))
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

// countingGateway records the charges and refunds passed to the simulated gateway.
type countingGateway struct {
	payment.SimulatedGateway
	charges  int
	refunds  int
	refunded float64
}

func (g *countingGateway) Charge(ctx context.Context, b *domain.Booking, method string) (string, error) {
	g.charges++
	return g.SimulatedGateway.Charge(ctx, b, method)
}

func (g *countingGateway) Refund(ctx context.Context, b *domain.Booking, amount float64) error {
	g.refunds++
	g.refunded += amount
	return g.SimulatedGateway.Refund(ctx, b, amount)
}

type bookingFixture struct {
	bookings *mocks.MockBookingRepo
	events   *mocks.MockEventRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockBookingNotifier
	gateway  *countingGateway
	feed     *activity.Log
	svc      *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookings: mocks.NewMockBookingRepo(t),
		events:   mocks.NewMockEventRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
		gateway:  &countingGateway{},
		feed:     newTestActivity(),
	}
	f.svc = NewBookingService(f.bookings, f.events, f.users, f.feed,
		f.gateway, f.notifier, newTestLogger(t))
	return f
}

func (f *bookingFixture) recent(t *testing.T) []domain.ActivityEntry {
	t.Helper()
	entries, err := f.feed.ReadRecent(context.Background(), 50)
	require.NoError(t, err)
	return entries
}

var (
	alice = &domain.Actor{UserID: 1, Name: "Alice", Email: "alice@example.com"}
	bob   = &domain.Actor{UserID: 2, Name: "Bob", Email: "bob@example.com"}
	admin = &domain.Actor{UserID: 99, Name: "Admin", Email: "admin@events.local", IsAdmin: true}
)

func testEvent() *domain.Event {
	return &domain.Event{
		ID:       5,
		Name:     "Wedding",
		Category: "Wedding",
		Price:    1500,
		AvailableDates: domain.AvailableDates{
			"Hall A": {"2026-03-01"},
		},
	}
}

func aliceUser() *domain.User {
	return &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:      7,
		UserID:  1,
		EventID: 5,
		Date:    "2026-03-01",
		Venue:   "Hall A",
		Status:  domain.BookingStatusPending,
	}
}

func strPtr(s string) *string { return &s }

func TestBookingService_Create(t *testing.T) {
	f := newBookingFixture(t)
	event := testEvent()

	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) error {
			b.ID = 7
			return nil
		})

	booking, err := f.svc.Create(context.Background(), alice, domain.CreateBookingInput{
		EventID: 5,
		Date:    " 2026-03-01 ",
		Venue:   "Hall A",
		Day:     "Sunday",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	assert.Equal(t, "2026-03-01", booking.Date)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.False(t, booking.Paid)
	assert.Nil(t, booking.PaymentReference)

	entries := f.recent(t)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityBooking, entries[0].Kind)
	assert.Equal(t, "Alice created booking #7 for Wedding on 2026-03-01 at Hall A", entries[0].Text)
}

func TestBookingService_Create_Unauthenticated(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), nil, domain.CreateBookingInput{EventID: 5, Date: "2026-03-01", Venue: "Hall A"})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_Create_MissingFields(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), alice, domain.CreateBookingInput{EventID: 5, Venue: "Hall A"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(context.Background(), alice, domain.CreateBookingInput{EventID: 5, Date: "2026-03-01", Venue: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_EventNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Create(context.Background(), alice, domain.CreateBookingInput{EventID: 404, Date: "2026-03-01", Venue: "Hall A"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Create_ActivityFailure(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventRepo(t)
	feed := mocks.NewMockActivityLog(t)
	svc := NewBookingService(bookings, events, mocks.NewMockUserRepo(t), feed,
		payment.NewSimulatedGateway(), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	feed.EXPECT().Append(mock.Anything, domain.ActivityBooking, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Create(context.Background(), alice, domain.CreateBookingInput{EventID: 5, Date: "2026-03-01", Venue: "Hall A"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record activity")
}

func TestBookingService_CompletePayment(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Paid && b.PaymentReference != nil && *b.PaymentReference == "FAKE-UPI-000007" &&
			b.Status == domain.BookingStatusPending
	}), domain.BookingStatusPending).Return(nil)

	booking, err := f.svc.CompletePayment(context.Background(), alice, 7, " upi ")

	require.NoError(t, err)
	assert.True(t, booking.Paid)
	assert.Equal(t, "FAKE-UPI-000007", *booking.PaymentReference)

	entries := f.recent(t)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityPayment, entries[0].Kind)
	assert.Equal(t, "Alice paid for booking #7 (FAKE-UPI-000007) via UPI", entries[0].Text)
}

func TestBookingService_CompletePayment_RepeatOverwritesReference(t *testing.T) {
	f := newBookingFixture(t)

	paid := pendingBooking()
	paid.Paid = true
	paid.PaymentReference = strPtr("FAKE-UPI-000007")

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(paid, nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).Return(nil)

	booking, err := f.svc.CompletePayment(context.Background(), alice, 7, "")

	require.NoError(t, err)
	assert.Equal(t, "FAKE-CARD-000007", *booking.PaymentReference)
}

func TestBookingService_CompletePayment_LostRaceReversesCharge(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).
		Return(domain.ErrInvalidTransition)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)

	_, err := f.svc.CompletePayment(context.Background(), alice, 7, "CARD")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, 1, f.gateway.charges)
	assert.Equal(t, 1, f.gateway.refunds)
	assert.Equal(t, 1500.0, f.gateway.refunded)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_CompletePayment_NotOwner(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)

	_, err := f.svc.CompletePayment(context.Background(), bob, 7, "CARD")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.gateway.charges)
	f.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_CompletePayment_NotPending(t *testing.T) {
	f := newBookingFixture(t)

	approved := pendingBooking()
	approved.Status = domain.BookingStatusApproved
	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(approved, nil)

	_, err := f.svc.CompletePayment(context.Background(), alice, 7, "CARD")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_CompletePayment_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(8)).Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.CompletePayment(context.Background(), alice, 8, "CARD")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Approve(t *testing.T) {
	f := newBookingFixture(t)

	paid := pendingBooking()
	paid.Paid = true
	paid.PaymentReference = strPtr("FAKE-CARD-000007")
	user := aliceUser()
	event := testEvent()
	done := make(chan struct{})

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(paid, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(user, nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusApproved && b.Paid
	}), domain.BookingStatusPending).Return(nil)
	f.notifier.EXPECT().NotifyBookingApproved(mock.Anything, user, event, mock.Anything).
		Run(func(_ context.Context, _ *domain.User, _ *domain.Event, b *domain.Booking) {
			assert.Equal(t, domain.BookingStatusApproved, b.Status)
			close(done)
		}).Return()

	booking, err := f.svc.Approve(context.Background(), admin, 7)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)

	entries := f.recent(t)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityApprove, entries[0].Kind)
	assert.Equal(t, "Booking #7 APPROVED by admin. User: alice@example.com. Paid: Yes. Ref: FAKE-CARD-000007", entries[0].Text)

	waitNotified(t, done)
}

func TestBookingService_Approve_RequiresAdmin(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Approve(context.Background(), alice, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Approve(context.Background(), nil, 7)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestBookingService_Approve_AlreadyDecided(t *testing.T) {
	f := newBookingFixture(t)

	rejected := pendingBooking()
	rejected.Status = domain.BookingStatusRejected
	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(rejected, nil)

	_, err := f.svc.Approve(context.Background(), admin, 7)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_Approve_LostRace(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(aliceUser(), nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).
		Return(domain.ErrInvalidTransition)

	_, err := f.svc.Approve(context.Background(), admin, 7)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_Reject_PaidIsRefunded(t *testing.T) {
	f := newBookingFixture(t)

	paid := pendingBooking()
	paid.Paid = true
	paid.PaymentReference = strPtr("FAKE-CARD-000007")
	user := aliceUser()
	event := testEvent()
	done := make(chan struct{})

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(paid, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(user, nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusRejected && !b.Paid && b.PaymentReference == nil
	}), domain.BookingStatusPending).Return(nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, user, event, mock.Anything, true).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Booking, bool) { close(done) }).
		Return()

	booking, err := f.svc.Reject(context.Background(), admin, 7, "Venue closed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)
	assert.False(t, booking.Paid)
	assert.Nil(t, booking.PaymentReference)
	assert.Equal(t, "Venue closed", *booking.RejectionReason)
	assert.Equal(t, 1, f.gateway.refunds)
	assert.Equal(t, 1500.0, f.gateway.refunded)

	entries := f.recent(t)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ActivityRefunded, entries[0].Kind)
	assert.Equal(t, "Refund simulated for booking #7 (user alice@example.com) amount ₹1500.00", entries[0].Text)
	assert.Equal(t, domain.ActivityReject, entries[1].Kind)
	assert.Equal(t, "Booking #7 REJECTED by admin. Reason: Venue closed. Previously paid: Yes. Refunded (simulated). PrevRef: FAKE-CARD-000007", entries[1].Text)

	waitNotified(t, done)
}

func TestBookingService_Reject_LostRaceKeepsPayment(t *testing.T) {
	f := newBookingFixture(t)

	paid := pendingBooking()
	paid.Paid = true
	paid.PaymentReference = strPtr("FAKE-CARD-000007")

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(paid, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(aliceUser(), nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).
		Return(domain.ErrInvalidTransition)

	_, err := f.svc.Reject(context.Background(), admin, 7, "Venue closed")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Zero(t, f.gateway.refunds)
	assert.Empty(t, f.recent(t))
}

func TestBookingService_Reject_DefaultReason(t *testing.T) {
	f := newBookingFixture(t)
	done := make(chan struct{})

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(aliceUser(), nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).Return(nil)
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, mock.Anything, mock.Anything, mock.Anything, false).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Booking, bool) { close(done) }).
		Return()

	booking, err := f.svc.Reject(context.Background(), admin, 7, "   ")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRejectionReason, *booking.RejectionReason)

	entries := f.recent(t)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityReject, entries[0].Kind)
	assert.Equal(t, "Booking #7 REJECTED by admin. Reason: Your booking was rejected by the admin.. Previously paid: No.", entries[0].Text)

	waitNotified(t, done)
}

// A booking walked through create, pay and reject leaves one activity record
// per step, with the refund recorded last.
func TestBookingService_CreatePayReject_ActivityTrail(t *testing.T) {
	f := newBookingFixture(t)
	event := testEvent()
	user := aliceUser()
	done := make(chan struct{})

	var stored domain.Booking
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(event, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(user, nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) error {
			b.ID = 7
			stored = *b
			return nil
		})
	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).
		RunAndReturn(func(context.Context, int64) (*domain.Booking, error) {
			cp := stored
			return &cp, nil
		})
	f.bookings.EXPECT().Transition(mock.Anything, mock.Anything, domain.BookingStatusPending).
		RunAndReturn(func(_ context.Context, b *domain.Booking, from domain.BookingStatus) error {
			if stored.Status != from {
				return domain.ErrInvalidTransition
			}
			stored = *b
			return nil
		})
	f.notifier.EXPECT().NotifyBookingRejected(mock.Anything, user, event, mock.Anything, true).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Booking, bool) { close(done) }).
		Return()

	ctx := context.Background()
	_, err := f.svc.Create(ctx, alice, domain.CreateBookingInput{EventID: 5, Date: "2026-03-01", Venue: "Hall A"})
	require.NoError(t, err)
	_, err = f.svc.CompletePayment(ctx, alice, 7, "CARD")
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, admin, 7, "")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, admin, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	entries := f.recent(t)
	kinds := make([]domain.ActivityKind, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []domain.ActivityKind{
		domain.ActivityRefunded,
		domain.ActivityReject,
		domain.ActivityPayment,
		domain.ActivityBooking,
	}, kinds)

	assert.Equal(t, domain.BookingStatusRejected, stored.Status)
	assert.False(t, stored.Paid)

	waitNotified(t, done)
}

func TestBookingService_Receipt(t *testing.T) {
	f := newBookingFixture(t)

	settled := pendingBooking()
	settled.Status = domain.BookingStatusApproved
	settled.Paid = true
	settled.PaymentReference = strPtr("FAKE-CARD-000007")

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(settled, nil)
	f.users.EXPECT().GetByID(mock.Anything, int64(1)).Return(aliceUser(), nil)
	f.events.EXPECT().GetByID(mock.Anything, int64(5)).Return(testEvent(), nil)

	receipt, err := f.svc.Receipt(context.Background(), alice, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), receipt.Number)
	assert.Equal(t, "FAKE-CARD-000007", receipt.PaymentReference)
	assert.Equal(t, "Alice", receipt.CustomerName)
	assert.Equal(t, "Wedding", receipt.EventName)
	assert.Equal(t, "Hall A", receipt.Venue)
	assert.Equal(t, "1500.00", receipt.AmountText)
}

func TestBookingService_Receipt_Unsettled(t *testing.T) {
	cases := []struct {
		name    string
		status  domain.BookingStatus
		paid    bool
		wantErr error
	}{
		{"pending unpaid", domain.BookingStatusPending, false, domain.ErrReceiptUnavailable},
		{"pending paid", domain.BookingStatusPending, true, domain.ErrReceiptUnavailable},
		{"approved unpaid", domain.BookingStatusApproved, false, domain.ErrReceiptUnavailable},
		{"rejected", domain.BookingStatusRejected, false, domain.ErrReceiptUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)

			b := pendingBooking()
			b.Status = tc.status
			b.Paid = tc.paid
			f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(b, nil)

			_, err := f.svc.Receipt(context.Background(), alice, 7)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBookingService_Receipt_NotOwner(t *testing.T) {
	f := newBookingFixture(t)

	settled := pendingBooking()
	settled.Status = domain.BookingStatusApproved
	settled.Paid = true
	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(settled, nil)

	_, err := f.svc.Receipt(context.Background(), bob, 7)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Get(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, int64(7)).Return(pendingBooking(), nil)

	_, err := f.svc.Get(context.Background(), bob, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	b, err := f.svc.Get(context.Background(), admin, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)

	b, err = f.svc.Get(context.Background(), alice, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.UserID)
}

func TestBookingService_List_AdminOnly(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.List(context.Background(), alice, domain.BookingFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	filter := domain.BookingFilter{Statuses: []domain.BookingStatus{domain.BookingStatusPending}}
	f.bookings.EXPECT().List(mock.Anything, filter).Return([]*domain.Booking{pendingBooking()}, nil)

	list, err := f.svc.List(context.Background(), admin, filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingService_ListMine(t *testing.T) {
	f := newBookingFixture(t)

	f.bookings.EXPECT().ListByUser(mock.Anything, int64(1)).Return([]*domain.Booking{pendingBooking()}, nil)

	list, err := f.svc.ListMine(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.ListMine(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
