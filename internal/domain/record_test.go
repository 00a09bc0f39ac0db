package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkRecord_FormatsLocalDateAndTime(t *testing.T) {
	kyiv := time.FixedZone("EET", 2*3600)
	checkIn := time.Date(2026, 3, 9, 23, 45, 0, 0, kyiv)

	r := NewWorkRecord(42, "Olena K", checkIn)

	assert.Equal(t, "2026-03-09", r.Date)
	assert.Equal(t, "23:45", r.CheckIn)
	assert.True(t, r.IsOpen())
	assert.Nil(t, r.HoursWorked)
}

func TestWorkRecord_CloseOnce(t *testing.T) {
	r := NewWorkRecord(1, "A", at(9, 0))

	require.NoError(t, r.Close("17:30", 8.5))
	assert.False(t, r.IsOpen())
	assert.Equal(t, 8.5, *r.HoursWorked)

	err := r.Close("18:00", 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentState)
	assert.Equal(t, "17:30", *r.CheckOut, "first check-out must be kept")
}

func TestWorkRecord_CheckInInstant(t *testing.T) {
	r := NewWorkRecord(1, "A", at(9, 15))
	got, err := r.CheckInInstant(time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(at(9, 15)))

	legacy := &WorkRecord{ID: 7, Date: "2026-03-09", CheckIn: "09:15"}
	got, err = legacy.CheckInInstant(time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(at(9, 15)))

	broken := &WorkRecord{ID: 8, Date: "yesterday", CheckIn: "09:15"}
	_, err = broken.CheckInInstant(time.UTC)
	assert.Error(t, err)
}
