package activity

import (
	"context"
	"sync"
)

// MemoryJournal keeps lines in process memory. Contents are lost on restart.
type MemoryJournal struct {
	mu    sync.RWMutex
	lines []string
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Append(_ context.Context, line string) error {
	j.mu.Lock()
	j.lines = append(j.lines, line)
	j.mu.Unlock()
	return nil
}

func (j *MemoryJournal) Tail(_ context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	res := make([]string, 0, min(n, len(j.lines)))
	for i := len(j.lines) - 1; i >= 0 && len(res) < n; i-- {
		if j.lines[i] == "" {
			continue
		}
		res = append(res, j.lines[i])
	}
	reverse(res)

	return res, nil
}

func reverse(s []string) {
	for i, k := 0, len(s)-1; i < k; i, k = i+1, k-1 {
		s[i], s[k] = s[k], s[i]
	}
}
