package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	slots []time.Time
	err   error

	gotDate *time.Time
}

func (r *fakeBookingRepo) ListTimeSlots(ctx context.Context, date *time.Time) ([]time.Time, error) {
	r.gotDate = date
	return r.slots, r.err
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		slots: []time.Time{time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, date, resp.Date)
	require.NotNil(t, repo.gotDate)
	assert.Equal(t, date, *repo.gotDate)

	require.Len(t, resp.Slots, 16)
	for _, s := range resp.Slots {
		if s.Time == "14:00" {
			assert.True(t, s.Booked)
		} else {
			assert.False(t, s.Booked)
		}
	}
}

func TestUseCase_Execute_DateRequired(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_StorageFailure(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)})
	require.ErrorIs(t, err, ErrInternal)
}
