package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/stpnv0/VenueBooker/internal/availability"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
)

type EventService struct {
	repo     ports.EventRepo
	activity ports.ActivityLog
	now      func() time.Time
}

func NewEventService(repo ports.EventRepo, activity ports.ActivityLog) *EventService {
	return &EventService{
		repo:     repo,
		activity: activity,
		now:      time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, actor *domain.Actor, input domain.EventInput) (*domain.Event, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}

	event := &domain.Event{CreatedAt: s.now().UTC()}
	if err := applyEventInput(event, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	msg := fmt.Sprintf("Event added: %s by %s", event.Name, actor.Name)
	if err := s.activity.Append(ctx, domain.ActivityEvent, msg); err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	return event, nil
}

// Update replaces every editable field of an event. The availability mapping
// is validated exactly as on create.
func (s *EventService) Update(ctx context.Context, actor *domain.Actor, id int64, input domain.EventInput) (*domain.Event, error) {
	if err := actor.Admin(); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	oldName := event.Name
	if err = applyEventInput(event, input); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	msg := fmt.Sprintf("Event edited: %s -> %s by %s", oldName, event.Name, actor.Name)
	if err = s.activity.Append(ctx, domain.ActivityEvent, msg); err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	return event, nil
}

// Delete removes an event together with its bookings.
func (s *EventService) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := actor.Admin(); err != nil {
		return err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	msg := fmt.Sprintf("Event deleted: %s by %s", event.Name, actor.Name)
	if err = s.activity.Append(ctx, domain.ActivityEvent, msg); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	return nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

func (s *EventService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *EventService) ValidateAvailability(text string) error {
	return availability.Validate(text)
}

func applyEventInput(e *domain.Event, in domain.EventInput) error {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	days := strings.TrimSpace(in.AvailableDays)
	venues := strings.TrimSpace(in.AvailableVenues)
	datesText := strings.TrimSpace(in.AvailableDates)

	if err := checkLength("name", name, 2, 200); err != nil {
		return err
	}
	if err := checkLength("category", category, 2, 100); err != nil {
		return err
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}
	if err := checkLength("available_days", days, 3, 200); err != nil {
		return err
	}
	if err := checkLength("available_venues", venues, 3, 400); err != nil {
		return err
	}
	if err := checkLength("available_dates", datesText, 2, 2000); err != nil {
		return err
	}

	dates, err := availability.Parse(datesText)
	if err != nil {
		return err
	}

	e.Name = name
	e.Category = category
	e.Price = in.Price
	e.AvailableDays = days
	e.AvailableVenues = venues
	e.AvailableDates = dates

	return nil
}

func checkLength(field, v string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(v)
	if n < minLen || n > maxLen {
		return fmt.Errorf("%w: %s must be between %d and %d characters", domain.ErrValidation, field, minLen, maxLen)
	}
	return nil
}
