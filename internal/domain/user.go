package domain

import "time"

type User struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	IsAdmin        bool       `json:"is_admin"`
	TelegramChatID *int64     `json:"telegram_chat_id"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login"`
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	TelegramChatID *int64
}

type UserFilter struct {
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type Profile struct {
	User          User
	TotalBookings int
	PaidBookings  int
	Upcoming      int
	Recent        []*Booking
}

// Actor is the authenticated identity on whose behalf a core operation runs.
type Actor struct {
	UserID  int64
	Name    string
	Email   string
	IsAdmin bool
}

// Authenticated returns ErrUnauthenticated for a nil actor.
func (a *Actor) Authenticated() error {
	if a == nil {
		return ErrUnauthenticated
	}
	return nil
}

// Admin returns nil only for an authenticated administrator.
func (a *Actor) Admin() error {
	if err := a.Authenticated(); err != nil {
		return err
	}
	if !a.IsAdmin {
		return ErrForbidden
	}
	return nil
}
