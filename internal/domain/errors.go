package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not allowed")
)

var (
	ErrInvalidTransition  = errors.New("booking status does not allow this action")
	ErrReceiptUnavailable = errors.New("receipt is available only for paid and approved bookings")
)

var (
	ErrEmailTaken = errors.New("email already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
