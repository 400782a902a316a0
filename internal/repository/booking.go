package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, event_id, date, venue, day, created_at,
		status, paid, payment_reference, rejection_reason`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, event_id, date, venue, day, created_at, status, paid)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.UserID, b.EventID, b.Date, b.Venue, b.Day,
		b.CreatedAt, b.Status, b.Paid,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID); err != nil {
		var pgErr *pq.Error
		// 23503: событие или пользователь удалены между проверкой и вставкой
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query, userID)
}

// List returns bookings matching filter, newest first.
func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.UserID != nil {
		add("user_id = $%d", *filter.UserID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		add("status = ANY($%d)", pq.Array(statuses))
	}
	if filter.Paid != nil {
		add("paid = $%d", *filter.Paid)
	}
	if filter.DateFrom != "" {
		add("date >= $%d", filter.DateFrom)
	}
	if filter.DateTo != "" {
		add("date <= $%d", filter.DateTo)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query, args...)
}

// Transition writes the mutable fields of b in one compare-and-set update
// guarded by the expected current status.
func (r *BookingRepository) Transition(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, paid = $4, payment_reference = $5, rejection_reason = $6
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(
		ctx, query, b.ID, from,
		b.Status, b.Paid, b.PaymentReference, b.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: брони нет или статус уже сменился
		var status string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if err = tx.QueryRowContext(ctx, checkQuery, b.ID).Scan(&status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("check booking status: %w", err)
		}
		return fmt.Errorf("%w: booking #%d is %s", domain.ErrInvalidTransition, b.ID, status)
	}

	return tx.Commit()
}

func (r *BookingRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.EventID, &b.Date, &b.Venue, &b.Day, &b.CreatedAt,
		&b.Status, &b.Paid, &b.PaymentReference, &b.RejectionReason,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
