package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	resp *bookingservice.BookResponse
	err  error

	gotReq *bookingservice.BookRequest
}

func (c *fakeClient) CreateBooking(ctx context.Context, req *bookingservice.BookRequest) (*bookingservice.BookResponse, error) {
	c.gotReq = req
	return c.resp, c.err
}

func doRequest(t *testing.T, client BookingServiceClient, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(client, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ForwardsBooking(t *testing.T) {
	client := &fakeClient{
		resp: &bookingservice.BookResponse{
			Message:  "Time slot booked successfully",
			TimeSlot: "2026-03-04 14:00",
		},
	}

	rec := doRequest(t, client, `{"date":"2026-03-04","time":"14:00","name":"Ivan","phone_number":"+15551234567"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, client.gotReq)
	assert.Equal(t, "14:00", client.gotReq.Time)

	var resp bookingservice.BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Time slot booked successfully", resp.Message)
}

func TestHandler_RejectsBeforeForwarding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "broken json", body: `{"date":`, wantMsg: msgInvalidRequestBody},
		{name: "missing name", body: `{"date":"2026-03-04","time":"14:00","phone_number":"+1555"}`, wantMsg: msgMissingFields},
		{name: "missing time", body: `{"date":"2026-03-04","name":"Ivan","phone_number":"+1555"}`, wantMsg: msgMissingFields},
		{name: "bad time format", body: `{"date":"2026-03-04","time":"2pm","name":"Ivan","phone_number":"+1555"}`, wantMsg: msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			rec := doRequest(t, client, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			// Невалидный запрос в backend не уходит
			assert.Nil(t, client.gotReq)
		})
	}
}

func TestHandler_RelaysBackendRejection(t *testing.T) {
	client := &fakeClient{
		err: &bookingservice.APIError{StatusCode: http.StatusBadRequest, Message: "Time slot already booked"},
	}

	rec := doRequest(t, client, `{"date":"2026-03-04","time":"14:00","name":"Ivan","phone_number":"+1555"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time slot already booked")
}

func TestHandler_BackendUnavailable(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	rec := doRequest(t, client, `{"date":"2026-03-04","time":"14:00","name":"Ivan","phone_number":"+1555"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
