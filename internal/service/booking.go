package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/payment"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	activity    ports.ActivityLog
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	activity ports.ActivityLog,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		activity:    activity,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Create books an event for the actor. Date and venue are stored as given and
// are not checked against the event's availability.
func (s *BookingService) Create(ctx context.Context, actor *domain.Actor, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	date := strings.TrimSpace(input.Date)
	venue := strings.TrimSpace(input.Venue)
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	booking := &domain.Booking{
		UserID:    actor.UserID,
		EventID:   event.ID,
		Date:      date,
		Venue:     venue,
		Day:       strings.TrimSpace(input.Day),
		CreatedAt: s.now().UTC(),
		Status:    domain.BookingStatusPending,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("event_id", event.ID),
		logger.Int64("user_id", actor.UserID),
	)

	msg := fmt.Sprintf("%s created booking #%d for %s on %s at %s",
		actor.Name, booking.ID, event.Name, booking.Date, booking.Venue)
	if err = s.record(ctx, domain.ActivityBooking, msg); err != nil {
		return nil, err
	}

	return booking, nil
}

// CompletePayment marks the actor's pending booking as paid through the gateway.
func (s *BookingService) CompletePayment(ctx context.Context, actor *domain.Actor, bookingID int64, method string) (*domain.Booking, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("%w: booking #%d belongs to another user", domain.ErrForbidden, booking.ID)
	}
	if err = requirePending(booking); err != nil {
		return nil, err
	}

	method = payment.NormalizeMethod(method)
	ref, err := s.gateway.Charge(ctx, booking, method)
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}

	booking.Paid = true
	booking.PaymentReference = &ref
	if err = s.bookingRepo.Transition(ctx, booking, domain.BookingStatusPending); err != nil {
		s.reverseCharge(ctx, booking, ref)
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	s.logger.Info("booking paid",
		logger.Int64("booking_id", booking.ID),
		logger.String("method", method),
		logger.String("reference", ref),
	)

	msg := fmt.Sprintf("%s paid for booking #%d (%s) via %s", actor.Name, booking.ID, ref, method)
	if err = s.record(ctx, domain.ActivityPayment, msg); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) Approve(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Booking, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}

	booking, user, event, err := s.loadForDecision(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusApproved
	if err = s.bookingRepo.Transition(ctx, booking, domain.BookingStatusPending); err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.logger.Info("booking approved",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("admin_id", actor.UserID),
	)

	msg := fmt.Sprintf("Booking #%d APPROVED by admin. User: %s. Paid: %s. Ref: %s",
		booking.ID, user.Email, yesNo(booking.Paid), refOrDash(booking.PaymentReference))
	if err = s.record(ctx, domain.ActivityApprove, msg); err != nil {
		return nil, err
	}

	snapshot := *booking
	go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), user, event, &snapshot)

	return booking, nil
}

// Reject rejects a pending booking. A paid booking is refunded through the
// gateway and loses its paid flag and payment reference.
func (s *BookingService) Reject(ctx context.Context, actor *domain.Actor, bookingID int64, reason string) (*domain.Booking, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}

	booking, user, event, err := s.loadForDecision(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.DefaultRejectionReason
	}

	previouslyPaid := booking.Paid
	prevRef := refOrDash(booking.PaymentReference)

	booking.Paid = false
	booking.PaymentReference = nil
	booking.Status = domain.BookingStatusRejected
	booking.RejectionReason = &reason

	if err = s.bookingRepo.Transition(ctx, booking, domain.BookingStatusPending); err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	// Деньги возвращаем только после того, как отказ зафиксирован
	if previouslyPaid {
		if err = s.gateway.Refund(ctx, booking, event.Price); err != nil {
			s.logger.Error("refund failed for rejected booking",
				logger.Int64("booking_id", booking.ID),
				logger.String("reference", prevRef),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("refund: %w", err)
		}
	}

	s.logger.Info("booking rejected",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("admin_id", actor.UserID),
		logger.Any("refunded", previouslyPaid),
	)

	if previouslyPaid {
		msg := fmt.Sprintf("Booking #%d REJECTED by admin. Reason: %s. Previously paid: Yes. Refunded (simulated). PrevRef: %s",
			booking.ID, reason, prevRef)
		if err = s.record(ctx, domain.ActivityReject, msg); err != nil {
			return nil, err
		}
		msg = fmt.Sprintf("Refund simulated for booking #%d (user %s) amount ₹%.2f",
			booking.ID, user.Email, event.Price)
		if err = s.record(ctx, domain.ActivityRefunded, msg); err != nil {
			return nil, err
		}
	} else {
		msg := fmt.Sprintf("Booking #%d REJECTED by admin. Reason: %s. Previously paid: No.", booking.ID, reason)
		if err = s.record(ctx, domain.ActivityReject, msg); err != nil {
			return nil, err
		}
	}

	snapshot := *booking
	go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), user, event, &snapshot, previouslyPaid)

	return booking, nil
}

// Receipt returns the receipt bundle of a settled booking owned by the actor.
func (s *BookingService) Receipt(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Receipt, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("%w: booking #%d belongs to another user", domain.ErrForbidden, booking.ID)
	}
	if !booking.Settled() {
		return nil, domain.ErrReceiptUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return &domain.Receipt{
		Number:           booking.ID,
		GeneratedAt:      s.now(),
		PaymentReference: refOrDash(booking.PaymentReference),
		CustomerName:     user.Name,
		CustomerEmail:    user.Email,
		EventName:        event.Name,
		Venue:            booking.Venue,
		Date:             booking.Date,
		Amount:           event.Price,
		AmountText:       fmt.Sprintf("%.2f", event.Price),
	}, nil
}

// Get returns a booking visible to the actor: its owner or an admin.
func (s *BookingService) Get(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Booking, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actor.UserID && !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	return booking, nil
}

func (s *BookingService) ListMine(ctx context.Context, actor *domain.Actor) ([]*domain.Booking, error) {
	if err := actor.Authenticated(); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByUser(ctx, actor.UserID)
}

func (s *BookingService) List(ctx context.Context, actor *domain.Actor, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) loadForDecision(ctx context.Context, bookingID int64) (*domain.Booking, *domain.User, *domain.Event, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get booking: %w", err)
	}
	if err = requirePending(booking); err != nil {
		return nil, nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get event: %w", err)
	}

	return booking, user, event, nil
}

// reverseCharge refunds a charge whose paid flag could not be stored.
func (s *BookingService) reverseCharge(ctx context.Context, booking *domain.Booking, ref string) {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err == nil {
		err = s.gateway.Refund(ctx, booking, event.Price)
	}
	if err != nil {
		s.logger.Error("failed to reverse charge",
			logger.Int64("booking_id", booking.ID),
			logger.String("reference", ref),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Warn("charge reversed, booking no longer pending",
		logger.Int64("booking_id", booking.ID),
		logger.String("reference", ref),
	)
}

func (s *BookingService) record(ctx context.Context, kind domain.ActivityKind, msg string) error {
	if err := s.activity.Append(ctx, kind, msg); err != nil {
		s.logger.Error("failed to record activity",
			logger.String("kind", string(kind)),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func requirePending(b *domain.Booking) error {
	if b.Status != domain.BookingStatusPending {
		return fmt.Errorf("%w: booking #%d is %s", domain.ErrInvalidTransition, b.ID, b.Status)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func refOrDash(ref *string) string {
	if ref == nil || *ref == "" {
		return "-"
	}
	return *ref
}
