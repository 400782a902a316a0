package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type EventResponse struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Price           float64             `json:"price"`
	PriceText       string              `json:"price_text"`
	AvailableDays   string              `json:"available_days"`
	AvailableVenues string              `json:"available_venues"`
	AvailableDates  map[string][]string `json:"available_dates"`
	CreatedAt       string              `json:"created_at"`
}

type BookingResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	EventID          int64   `json:"event_id"`
	Date             string  `json:"date"`
	Venue            string  `json:"venue"`
	Day              string  `json:"day,omitempty"`
	Status           string  `json:"status"`
	Paid             bool    `json:"paid"`
	PaymentReference *string `json:"payment_reference"`
	RejectionReason  *string `json:"rejection_reason"`
	Upcoming         bool    `json:"upcoming"`
	CreatedAt        string  `json:"created_at"`
}

type UserResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsAdmin        bool    `json:"is_admin"`
	TelegramChatID *int64  `json:"telegram_chat_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
	LastLogin      *string `json:"last_login"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type ProfileResponse struct {
	User          UserResponse      `json:"user"`
	TotalBookings int               `json:"total_bookings"`
	PaidBookings  int               `json:"paid_bookings"`
	Upcoming      int               `json:"upcoming"`
	Recent        []BookingResponse `json:"recent"`
}

type ActivityResponse struct {
	Type string `json:"type"`
	Icon string `json:"icon"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type DashboardResponse struct {
	TotalUsers   int                `json:"total_users"`
	ActiveToday  int                `json:"active_today"`
	NewSignups   int                `json:"new_signups"`
	TotalRevenue float64            `json:"total_revenue"`
	Activity     []ActivityResponse `json:"activity"`
}

type ReceiptResponse struct {
	Number           int64   `json:"number"`
	GeneratedAt      string  `json:"generated_at"`
	PaymentReference string  `json:"payment_reference"`
	CustomerName     string  `json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	EventName        string  `json:"event_name"`
	Venue            string  `json:"venue"`
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	AmountText       string  `json:"amount_text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	dates := make(map[string][]string, len(e.AvailableDates))
	for venue, list := range e.AvailableDates {
		dates[venue] = list
	}

	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		Price:           e.Price,
		PriceText:       fmt.Sprintf("%.2f", e.Price),
		AvailableDays:   e.AvailableDays,
		AvailableVenues: e.AvailableVenues,
		AvailableDates:  dates,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking, now time.Time) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		EventID:          b.EventID,
		Date:             b.Date,
		Venue:            b.Venue,
		Day:              b.Day,
		Status:           string(b.Status),
		Paid:             b.Paid,
		PaymentReference: b.PaymentReference,
		RejectionReason:  b.RejectionReason,
		Upcoming:         b.IsUpcoming(now),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(list []*domain.Booking, now time.Time) []BookingResponse {
	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, ToBookingResponse(b, now))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		s := u.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &s
	}
	return resp
}

func ToProfileResponse(p *domain.Profile, now time.Time) ProfileResponse {
	return ProfileResponse{
		User:          ToUserResponse(&p.User),
		TotalBookings: p.TotalBookings,
		PaidBookings:  p.PaidBookings,
		Upcoming:      p.Upcoming,
		Recent:        ToBookingResponses(p.Recent, now),
	}
}

func ToActivityResponses(entries []domain.ActivityEntry) []ActivityResponse {
	resp := make([]ActivityResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ActivityResponse{
			Type: string(e.Kind),
			Icon: e.Icon,
			Text: e.Text,
			Time: e.Time,
		})
	}
	return resp
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalUsers:   d.TotalUsers,
		ActiveToday:  d.ActiveToday,
		NewSignups:   d.NewSignups,
		TotalRevenue: d.TotalRevenue,
		Activity:     ToActivityResponses(d.Activity),
	}
}

func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Number:           r.Number,
		GeneratedAt:      r.GeneratedAt.Format(time.RFC3339),
		PaymentReference: r.PaymentReference,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		EventName:        r.EventName,
		Venue:            r.Venue,
		Date:             r.Date,
		Amount:           r.Amount,
		AmountText:       r.AmountText,
	}
}

// ValidateDatesResponse reports the outcome of an availability check. An
// invalid mapping is a normal result, not a request error.
type ValidateDatesResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
