package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schwarztim/CSC425/internal/domain"
	"github.com/schwarztim/CSC425/pkg/types"
)

func TestValidateRequired(t *testing.T) {
	valid := Request{
		Date:        "2026-03-04",
		Time:        "10:00",
		Name:        "Ivan",
		PhoneNumber: "+15551234567",
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{name: "all fields present", mutate: func(r *Request) {}, field: ""},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }, field: "time"},
		{name: "missing date", mutate: func(r *Request) { r.Date = "" }, field: "date"},
		{name: "missing name", mutate: func(r *Request) { r.Name = "" }, field: "name"},
		{name: "missing phone", mutate: func(r *Request) { r.PhoneNumber = "" }, field: "phone_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validateRequired(&req)
			if tt.field == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingField)
				assert.Contains(t, err.Error(), tt.field)
			}
		})
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{name: "valid", date: "2026-03-04", time: "10:00"},
		{name: "bad date format", date: "04.03.2026", time: "10:00", wantErr: true},
		{name: "bad time format", date: "2026-03-04", time: "10am", wantErr: true},
		{name: "date is not a date", date: "not-a-date", time: "10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Date: tt.date, Time: tt.time, Name: "Ivan", PhoneNumber: "+1555"}

			date, startTime, err := parseSlot(req)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, date.Format(domain.DateFormat))
			assert.Equal(t, tt.time, startTime.String())
		})
	}
}

func TestValidateSlot_BusinessHours(t *testing.T) {
	// 2026-03-04 - среда, разрешенный день
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		time    types.TimeString
		wantErr error
	}{
		{name: "opening slot", time: "10:00"},
		{name: "last slot", time: "17:30"},
		{name: "midday slot", time: "13:30"},
		{name: "before opening", time: "09:30", wantErr: ErrOutsideBusinessHours},
		{name: "at closing", time: "18:00", wantErr: ErrOutsideBusinessHours},
		{name: "after closing", time: "19:00", wantErr: ErrOutsideBusinessHours},
		{name: "off the half-hour grid", time: "10:15", wantErr: ErrOutsideBusinessHours},
		{name: "off grid near closing", time: "17:45", wantErr: ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlot(wednesday, tt.time)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlot_Weekdays(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		allowed bool
	}{
		{name: "sunday rejected", date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), allowed: false},
		{name: "monday rejected", date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), allowed: false},
		{name: "tuesday allowed", date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), allowed: true},
		{name: "wednesday allowed", date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), allowed: true},
		{name: "thursday allowed", date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), allowed: true},
		{name: "friday allowed", date: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), allowed: true},
		{name: "saturday allowed", date: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlot(tt.date, "10:00")
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrClosedWeekday)
			}
		})
	}
}
