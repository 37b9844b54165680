package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/schwarztim/CSC425/internal/usecase/create_booking"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:       7,
			TimeSlot: time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, `{"date":"2026-03-04","time":"14:00","name":"Ivan","phone_number":"+15551234567"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Time slot booked successfully", resp.Message)
	assert.Equal(t, "2026-03-04 14:00", resp.TimeSlot)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2026-03-04", uc.gotReq.Date)
	assert.Equal(t, "14:00", uc.gotReq.Time)
	assert.Equal(t, "Ivan", uc.gotReq.Name)
	assert.Equal(t, "+15551234567", uc.gotReq.PhoneNumber)
}

func TestHandler_InvalidJSON(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidRequestBody)
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing field", err: createBooking.ErrMissingField, wantStatus: http.StatusBadRequest, wantMsg: msgMissingFields},
		{name: "invalid format", err: createBooking.ErrInvalidFormat, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidFormat},
		{name: "outside hours", err: createBooking.ErrOutsideBusinessHours, wantStatus: http.StatusBadRequest, wantMsg: msgOutsideHours},
		{name: "closed weekday", err: createBooking.ErrClosedWeekday, wantStatus: http.StatusBadRequest, wantMsg: msgClosedWeekday},
		{name: "slot taken", err: createBooking.ErrSlotTaken, wantStatus: http.StatusBadRequest, wantMsg: msgSlotTaken},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := doRequest(t, uc, `{"date":"2026-03-04","time":"14:00","name":"Ivan","phone_number":"+1555"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
