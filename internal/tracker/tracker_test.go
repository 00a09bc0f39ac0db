package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestCheckOut_NotCheckedIn(t *testing.T) {
	tr := NewMemoryTracker()
	tr.CheckIn(domain.OpenEntry{UserID: 2, RecordID: 5, CheckedInAt: at(9, 0)})

	_, _, err := tr.CheckOut(1, at(17, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)

	assert.Equal(t, 1, tr.Len(), "failed check-out must not mutate")
	_, ok := tr.Open(2)
	assert.True(t, ok)
}

func TestCheckOut_ComputesHoursAndRemovesEntry(t *testing.T) {
	tr := NewMemoryTracker()
	tr.CheckIn(domain.OpenEntry{UserID: 1, RecordID: 5, CheckedInAt: at(9, 0)})

	hours, entry, err := tr.CheckOut(1, at(17, 30))
	require.NoError(t, err)
	assert.Equal(t, 8.5, hours)
	assert.Equal(t, int64(5), entry.RecordID)

	_, ok := tr.Open(1)
	assert.False(t, ok)

	_, _, err = tr.CheckOut(1, at(18, 0))
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)
}

func TestCheckIn_SecondCheckInOverwrites(t *testing.T) {
	tr := NewMemoryTracker()
	tr.CheckIn(domain.OpenEntry{UserID: 1, RecordID: 1, CheckedInAt: at(8, 0)})
	tr.CheckIn(domain.OpenEntry{UserID: 1, RecordID: 2, CheckedInAt: at(10, 0)})

	hours, entry, err := tr.CheckOut(1, at(12, 30))
	require.NoError(t, err)
	assert.Equal(t, 2.5, hours, "measured from the second check-in")
	assert.Equal(t, int64(2), entry.RecordID)
}

func TestCheckOut_ClockSkew(t *testing.T) {
	tr := NewMemoryTracker()
	tr.CheckIn(domain.OpenEntry{UserID: 1, CheckedInAt: at(9, 0)})

	hours, _, err := tr.CheckOut(1, at(8, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
}

func TestRestore_ReplacesEntries(t *testing.T) {
	tr := NewMemoryTracker()
	tr.CheckIn(domain.OpenEntry{UserID: 9, CheckedInAt: at(7, 0)})

	tr.Restore([]domain.OpenEntry{
		{UserID: 1, RecordID: 10, CheckedInAt: at(8, 0)},
		{UserID: 2, RecordID: 11, CheckedInAt: at(9, 0)},
	})

	assert.Equal(t, 2, tr.Len())
	_, ok := tr.Open(9)
	assert.False(t, ok)
	e, ok := tr.Open(2)
	require.True(t, ok)
	assert.Equal(t, int64(11), e.RecordID)
}

func TestMemoryTracker_ConcurrentUsers(t *testing.T) {
	tr := NewMemoryTracker()
	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			tr.CheckIn(domain.OpenEntry{UserID: id, CheckedInAt: at(9, 0)})
			_, _, err := tr.CheckOut(id, at(10, 0))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, tr.Len())
}
