package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	slot, err := NewTimeSlot(date, "14:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04 14:30", slot.Format(TimeSlotFormat))
}

func TestNewTimeSlot_InvalidTime(t *testing.T) {
	_, err := NewTimeSlot(time.Now(), "not-a-time")
	assert.Error(t, err)
}

func TestBooking_Accessors(t *testing.T) {
	b := &Booking{TimeSlot: time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC)}

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), b.Date())
	assert.Equal(t, "14:30", b.StartTime().String())
}

func TestIsAllowedWeekday(t *testing.T) {
	assert.False(t, IsAllowedWeekday(time.Sunday))
	assert.False(t, IsAllowedWeekday(time.Monday))
	assert.True(t, IsAllowedWeekday(time.Tuesday))
	assert.True(t, IsAllowedWeekday(time.Saturday))
}
