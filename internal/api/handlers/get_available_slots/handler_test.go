package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schwarztim/CSC425/internal/domain"
	getAvailableSlots "github.com/schwarztim/CSC425/internal/usecase/get_available_slots"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

func doRequest(t *testing.T, uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date: date,
			Slots: []domain.Slot{
				{Time: "10:00", Booked: false},
				{Time: "10:30", Booked: true},
			},
		},
	}

	rec := doRequest(t, uc, "/available-slots?date=2026-03-04")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, date, uc.gotReq.Date)

	// Плоский массив слотов
	var slots []SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	assert.Equal(t, SlotResponse{Time: "10:00", Booked: false}, slots[0])
	assert.Equal(t, SlotResponse{Time: "10:30", Booked: true}, slots[1])
}

func TestHandler_MissingDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/available-slots")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingDate)
}

func TestHandler_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/available-slots?date=04.03.2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDate)
}

func TestHandler_UseCaseFailure(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	rec := doRequest(t, uc, "/available-slots?date=2026-03-04")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
