// Package tracker holds the in-process view of who is currently checked in.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
)

// Tracker maps each user to at most one open check-in.
type Tracker interface {
	// CheckIn records an open entry, replacing any previous one for the user.
	CheckIn(entry domain.OpenEntry)

	// Open reports the user's open entry without modifying it.
	Open(userID int64) (domain.OpenEntry, bool)

	// CheckOut removes the user's open entry and returns the hours elapsed
	// since it was recorded. It fails with domain.ErrNotCheckedIn, leaving
	// the tracker unchanged, when the user has no open entry.
	CheckOut(userID int64, at time.Time) (float64, domain.OpenEntry, error)

	// Restore replaces all entries, e.g. with open records read back from
	// the store after a restart.
	Restore(entries []domain.OpenEntry)

	Len() int
}

// MemoryTracker keeps open entries in a map. Entries are lost when the
// process exits.
type MemoryTracker struct {
	mu      sync.Mutex
	entries map[int64]domain.OpenEntry
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{entries: make(map[int64]domain.OpenEntry)}
}

func (t *MemoryTracker) CheckIn(entry domain.OpenEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[entry.UserID] = entry
}

func (t *MemoryTracker) Open(userID int64) (domain.OpenEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userID]
	return e, ok
}

func (t *MemoryTracker) CheckOut(userID int64, at time.Time) (float64, domain.OpenEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userID]
	if !ok {
		return 0, domain.OpenEntry{}, fmt.Errorf("user %d: %w", userID, domain.ErrNotCheckedIn)
	}
	delete(t.entries, userID)
	return domain.HoursBetween(e.CheckedInAt, at), e, nil
}

func (t *MemoryTracker) Restore(entries []domain.OpenEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[int64]domain.OpenEntry, len(entries))
	for _, e := range entries {
		t.entries[e.UserID] = e
	}
}

func (t *MemoryTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
