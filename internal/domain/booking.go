package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

const DefaultRejectionReason = "Your booking was rejected by the admin."

type Booking struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"user_id"`
	EventID          int64         `json:"event_id"`
	Date             string        `json:"date"`
	Venue            string        `json:"venue"`
	Day              string        `json:"day"`
	CreatedAt        time.Time     `json:"created_at"`
	Status           BookingStatus `json:"status"`
	Paid             bool          `json:"paid"`
	PaymentReference *string       `json:"payment_reference"`
	RejectionReason  *string       `json:"rejection_reason"`
}

// IsUpcoming reports whether the booked date is today or later. Dates that
// are not in YYYY-MM-DD form are never upcoming.
func (b *Booking) IsUpcoming(now time.Time) bool {
	d, err := time.Parse(time.DateOnly, b.Date)
	if err != nil {
		return false
	}
	today := now.Format(time.DateOnly)
	return d.Format(time.DateOnly) >= today
}

// Settled reports whether a receipt may be issued for the booking.
func (b *Booking) Settled() bool {
	return b.Paid && b.Status == BookingStatusApproved
}

type CreateBookingInput struct {
	EventID int64
	Date    string
	Venue   string
	Day     string
}

type BookingFilter struct {
	UserID   *int64
	Statuses []BookingStatus
	Paid     *bool
	DateFrom string
	DateTo   string
}

type Receipt struct {
	Number           int64     `json:"number"`
	GeneratedAt      time.Time `json:"generated_at"`
	PaymentReference string    `json:"payment_reference"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	EventName        string    `json:"event_name"`
	Venue            string    `json:"venue"`
	Date             string    `json:"date"`
	Amount           float64   `json:"amount"`
	AmountText       string    `json:"amount_text"`
}
