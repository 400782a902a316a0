package domain

import "time"

// AvailableDates maps a venue name to the ordered list of ISO dates it can be booked on.
type AvailableDates map[string][]string

type Event struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Price           float64        `json:"price"`
	AvailableDays   string         `json:"available_days"`
	AvailableVenues string         `json:"available_venues"`
	AvailableDates  AvailableDates `json:"available_dates"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EventInput is the admin-authored form of an event. AvailableDates is kept
// as raw text until it passes validation.
type EventInput struct {
	Name            string
	Category        string
	Price           float64
	AvailableDays   string
	AvailableVenues string
	AvailableDates  string
}

type EventFilter struct {
	Category string
	Search   string
}
