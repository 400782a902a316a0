package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/stpnv0/VenueBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, actor *domain.Actor, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, actor *domain.Actor, id int64, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, actor *domain.Actor, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Categories(ctx context.Context) ([]string, error)
	ValidateAvailability(text string) error
}

type BookingSvc interface {
	Create(ctx context.Context, actor *domain.Actor, input domain.CreateBookingInput) (*domain.Booking, error)
	CompletePayment(ctx context.Context, actor *domain.Actor, bookingID int64, method string) (*domain.Booking, error)
	Approve(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Booking, error)
	Reject(ctx context.Context, actor *domain.Actor, bookingID int64, reason string) (*domain.Booking, error)
	Receipt(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Receipt, error)
	Get(ctx context.Context, actor *domain.Actor, bookingID int64) (*domain.Booking, error)
	ListMine(ctx context.Context, actor *domain.Actor) ([]*domain.Booking, error)
	List(ctx context.Context, actor *domain.Actor, filter domain.BookingFilter) ([]*domain.Booking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string, adminOnly bool) (*domain.User, error)
	Logout(ctx context.Context, actor *domain.Actor) error
	ChangePassword(ctx context.Context, actor *domain.Actor, newPassword, confirm string) error
	Profile(ctx context.Context, actor *domain.Actor) (*domain.Profile, error)
	List(ctx context.Context, actor *domain.Actor, filter domain.UserFilter) ([]*domain.User, error)
}

type StatsSvc interface {
	Dashboard(ctx context.Context, actor *domain.Actor) (*domain.Dashboard, error)
	Activity(ctx context.Context, actor *domain.Actor, limit int) ([]domain.ActivityEntry, error)
}

type TokenIssuer interface {
	Issue(u *domain.User) (string, time.Time, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
	statsService   StatsSvc
	tokens         TokenIssuer
	now            func() time.Time
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	userService UserSvc,
	statsService StatsSvc,
	tokens TokenIssuer,
) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
		statsService:   statsService,
		tokens:         tokens,
		now:            time.Now,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrReceiptUnavailable):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func (h *Handler) actor(c *ginext.Context) *domain.Actor {
	return middleware.ActorFrom(c)
}

func parseID(c *ginext.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid %s id", what)})
		return 0, false
	}
	return id, true
}

func bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body and leaves req at its zero value.
func bindOptionalJSON(c *ginext.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, req)
}
