// Package activity implements the append-only activity journal shown on the
// admin and statistics dashboards.
//
// Each record is stored as a single line:
//
//	2026-02-10T09:15:00.000000||booking||Alice created booking #12 for ...
//
// The timestamp is UTC without an offset suffix, so lines sort chronologically.
package activity

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

const (
	separator       = "||"
	timestampLayout = "2006-01-02T15:04:05.000000"
	displayLayout   = "02 Jan 2006, 03:04 PM"
)

var icons = map[domain.ActivityKind]string{
	domain.ActivityRegister: "🟢",
	domain.ActivityLogin:    "🔵",
	domain.ActivityLogout:   "⚪",
	domain.ActivityBooking:  "📝",
	domain.ActivityPayment:  "💰",
	domain.ActivityApprove:  "✅",
	domain.ActivityReject:   "❌",
	domain.ActivityRefunded: "💸",
	domain.ActivityEvent:    "📅",
	domain.ActivityUser:     "👤",
	domain.ActivityOther:    "🔔",
}

// Icon returns the display icon for kind, falling back to the "other" icon.
func Icon(kind domain.ActivityKind) string {
	if icon, ok := icons[kind]; ok {
		return icon
	}
	return icons[domain.ActivityOther]
}

// Journal is an append-only line store.
type Journal interface {
	// Append stores one complete line. Concurrent appends must not interleave.
	Append(ctx context.Context, line string) error
	// Tail returns up to n most recent non-empty lines, oldest first.
	Tail(ctx context.Context, n int) ([]string, error)
}

type Log struct {
	mu       sync.Mutex
	journal  Journal
	location *time.Location
	now      func() time.Time
}

type Option func(*Log)

// WithLocation sets the time zone used for display timestamps.
func WithLocation(loc *time.Location) Option {
	return func(l *Log) {
		if loc != nil {
			l.location = loc
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func NewLog(journal Journal, opts ...Option) *Log {
	l := &Log{
		journal:  journal,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records one activity. Timestamps are taken under the same lock as
// the write, so journal order and timestamp order agree within a process.
func (l *Log) Append(ctx context.Context, kind domain.ActivityKind, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := domain.ActivityRecord{
		Timestamp: l.now().UTC(),
		Kind:      kind,
		Message:   message,
	}
	if err := l.journal.Append(ctx, Encode(rec)); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// ReadRecent returns the latest limit entries, most recent first.
func (l *Log) ReadRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		return []domain.ActivityEntry{}, nil
	}

	lines, err := l.journal.Tail(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}

	res := make([]domain.ActivityEntry, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		res = append(res, l.entry(lines[i]))
	}

	return res, nil
}

func (l *Log) entry(line string) domain.ActivityEntry {
	parts := strings.SplitN(line, separator, 3)
	if len(parts) != 3 {
		return domain.ActivityEntry{
			Kind: domain.ActivityOther,
			Icon: Icon(domain.ActivityOther),
			Text: line,
		}
	}

	kind := domain.ActivityKind(parts[1])
	when := parts[0]
	if ts, err := time.ParseInLocation(timestampLayout, parts[0], time.UTC); err == nil {
		when = ts.In(l.location).Format(displayLayout)
	}

	return domain.ActivityEntry{
		Kind: kind,
		Icon: Icon(kind),
		Text: parts[2],
		Time: when,
	}
}

// Encode renders rec as a single journal line without the trailing newline.
func Encode(rec domain.ActivityRecord) string {
	msg := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(rec.Message)
	return rec.Timestamp.UTC().Format(timestampLayout) + separator + string(rec.Kind) + separator + msg
}
