package bookings

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

func TestService_ListBookedSlots(t *testing.T) {
	want := []time.Time{time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)}
	repo := &fakeBookingRepo{slots: want}
	svc := NewService(repo, noopLogger{})

	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	got, err := svc.ListBookedSlots(context.Background(), &date)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	require.NotNil(t, repo.gotDate)
	assert.Equal(t, date, *repo.gotDate)
}

func TestService_ListBookedSlots_AllDates(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.ListBookedSlots(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, repo.gotDate)
}

func TestService_ListBookedSlots_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, noopLogger{})

	_, err := svc.ListBookedSlots(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
