package activity

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEncode(t *testing.T) {
	rec := domain.ActivityRecord{
		Timestamp: time.Date(2026, 2, 10, 9, 15, 0, 123456000, time.UTC),
		Kind:      domain.ActivityBooking,
		Message:   "Alice created booking #1\nfor Expo",
	}

	assert.Equal(t, "2026-02-10T09:15:00.123456||booking||Alice created booking #1 for Expo", Encode(rec))
}

func TestLog_AppendAndReadRecent(t *testing.T) {
	j := NewMemoryJournal()
	ts := time.Date(2026, 2, 10, 21, 5, 0, 0, time.UTC)
	l := NewLog(j, WithClock(fixedClock(ts)), WithLocation(time.UTC))
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, domain.ActivityRegister, "first"))
	require.NoError(t, l.Append(ctx, domain.ActivityPayment, "second"))
	require.NoError(t, l.Append(ctx, domain.ActivityKind("custom"), "third"))

	entries, err := l.ReadRecent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Text)
	assert.Equal(t, domain.ActivityKind("custom"), entries[0].Kind)
	assert.Equal(t, Icon(domain.ActivityOther), entries[0].Icon)
	assert.Equal(t, "second", entries[1].Text)
	assert.Equal(t, "💰", entries[1].Icon)
	assert.Equal(t, "10 Feb 2026, 09:05 PM", entries[1].Time)

	lines, err := j.Tail(ctx, 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(lines[2], "2026-02-10T21:05:00.000000||custom||"))
}

func TestLog_ReadRecent_Malformed(t *testing.T) {
	j := NewMemoryJournal()
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "garbage without separators"))
	require.NoError(t, j.Append(ctx, "yesterday||login||User logged in"))

	l := NewLog(j)
	entries, err := l.ReadRecent(ctx, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.ActivityLogin, entries[0].Kind)
	assert.Equal(t, "yesterday", entries[0].Time)
	assert.Equal(t, "User logged in", entries[0].Text)

	assert.Equal(t, domain.ActivityOther, entries[1].Kind)
	assert.Equal(t, "garbage without separators", entries[1].Text)
	assert.Empty(t, entries[1].Time)
}

func TestLog_ReadRecent_NonPositiveLimit(t *testing.T) {
	l := NewLog(NewMemoryJournal())
	require.NoError(t, l.Append(context.Background(), domain.ActivityUser, "x"))

	entries, err := l.ReadRecent(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLog_MessageWithSeparator(t *testing.T) {
	l := NewLog(NewMemoryJournal())
	require.NoError(t, l.Append(context.Background(), domain.ActivityOther, "a||b"))

	entries, err := l.ReadRecent(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "a||b", entries[0].Text)
}

func TestLog_ConcurrentAppend_FileJournal(t *testing.T) {
	j, err := NewFileJournal(filepath.Join(t.TempDir(), "logs", "activity.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	l := NewLog(j)
	ctx := context.Background()

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, l.Append(ctx, domain.ActivityBooking, fmt.Sprintf("record-%03d", i)))
		}(i)
	}
	wg.Wait()

	entries, err := l.ReadRecent(ctx, n)
	require.NoError(t, err)
	require.Len(t, entries, n)

	seen := make(map[string]bool, n)
	for _, e := range entries {
		assert.Equal(t, domain.ActivityBooking, e.Kind)
		assert.False(t, seen[e.Text], "duplicate %s", e.Text)
		seen[e.Text] = true
	}
	assert.Len(t, seen, n)

	lines, err := j.Tail(ctx, n)
	require.NoError(t, err)
	stamps := make([]string, 0, len(lines))
	for _, line := range lines {
		stamps = append(stamps, strings.SplitN(line, separator, 2)[0])
	}
	assert.True(t, sort.StringsAreSorted(stamps), "journal lines must be in timestamp order")
	assert.Equal(t, strings.SplitN(lines[n-1], separator, 3)[2], entries[0].Text)
}

func TestFileJournal_TailSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	j, err := NewFileJournal(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	ctx := context.Background()
	for _, line := range []string{"a", "", "b", "c"} {
		require.NoError(t, j.Append(ctx, line))
	}

	lines, err := j.Tail(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, lines)

	lines, err = j.Tail(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestFileJournal_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	ctx := context.Background()

	j, err := NewFileJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Append(ctx, "before"))
	require.NoError(t, j.Close())

	j, err = NewFileJournal(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	require.NoError(t, j.Append(ctx, "after"))

	lines, err := j.Tail(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"before", "after"}, lines)
}

func TestLog_ReadRecent_HugeLimit(t *testing.T) {
	ctx := context.Background()
	fj, err := NewFileJournal(filepath.Join(t.TempDir(), "activity.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fj.Close() })

	for name, j := range map[string]Journal{"memory": NewMemoryJournal(), "file": fj} {
		t.Run(name, func(t *testing.T) {
			l := NewLog(j)
			require.NoError(t, l.Append(ctx, domain.ActivityLogin, "only"))

			var entries []domain.ActivityEntry
			require.NotPanics(t, func() {
				entries, err = l.ReadRecent(ctx, math.MaxInt)
			})
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "only", entries[0].Text)
		})
	}
}

func TestFileJournal_KeepsSurroundingSpaces(t *testing.T) {
	j, err := NewFileJournal(filepath.Join(t.TempDir(), "activity.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "  padded record  "))
	require.NoError(t, j.Append(ctx, "   "))
	require.NoError(t, j.Append(ctx, "windows\r"))

	lines, err := j.Tail(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded record  ", "windows"}, lines)
}
