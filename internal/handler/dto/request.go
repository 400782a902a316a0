package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EventRequest struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price" binding:"gte=0"`
	AvailableDays   string  `json:"available_days"`
	AvailableVenues string  `json:"available_venues"`
	AvailableDates  string  `json:"available_dates"`
}

type ValidateDatesRequest struct {
	AvailableDates string `json:"available_dates"`
}

type BookRequest struct {
	Date  string `json:"date" binding:"required"`
	Venue string `json:"venue" binding:"required"`
	Day   string `json:"day"`
}

type PayRequest struct {
	Method string `json:"method"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
