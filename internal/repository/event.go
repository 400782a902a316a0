package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, category, price, available_days, available_venues, available_dates, created_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	dates, err := json.Marshal(e.AvailableDates)
	if err != nil {
		return fmt.Errorf("marshal available dates: %w", err)
	}

	query := `INSERT INTO events (name, category, price, available_days, available_venues, available_dates, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Name, e.Category, e.Price, e.AvailableDays, e.AvailableVenues,
		string(dates), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	dates, err := json.Marshal(e.AvailableDates)
	if err != nil {
		return fmt.Errorf("marshal available dates: %w", err)
	}

	query := `UPDATE events
			  SET name = $2, category = $3, price = $4,
			      available_days = $5, available_venues = $6, available_dates = $7::jsonb
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Category, e.Price, e.AvailableDays, e.AvailableVenues, string(dates),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

// Delete removes the event; its bookings go with it through ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM events ORDER BY category`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e     domain.Event
		dates []byte
	)
	if err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Price,
		&e.AvailableDays, &e.AvailableVenues, &dates, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.AvailableDates = domain.AvailableDates{}
	if len(dates) > 0 {
		if err := json.Unmarshal(dates, &e.AvailableDates); err != nil {
			return nil, fmt.Errorf("decode available dates of event %d: %w", e.ID, err)
		}
	}

	return &e, nil
}

func expectAffected(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
