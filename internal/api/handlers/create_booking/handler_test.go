package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/CleanClick-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"cleanerId":"cleaner-1","customerName":"Jane","customerPhone":"+1 555","customerAddress":"1 Main St",
"hasPets":true,"bedrooms":2,"bathrooms":1,"frequency":"weekly","date":"2030-01-08","timeBlock":"morning"}`

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:        "b-1",
		CleanerID: "cleaner-1",
		Date:      "2030-01-08",
		TimeBlock: "morning",
		StartTime: "09:00",
		EndTime:   "13:00",
		Status:    "confirmed",
		CreatedAt: time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC),
	}}
	rec := serve(NewHandler(uc, logger.NewNop()), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, uc.got.Bedrooms)
	assert.True(t, uc.got.HasPets)
	assert.Equal(t, "weekly", uc.got.Frequency)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "2030-01-07T08:00:00Z", resp.CreatedAt)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"unknown cleaner", createBooking.ErrCleanerNotFound, http.StatusNotFound},
		{"not priced", fmt.Errorf("%w: 3-5", createBooking.ErrNotPriced), http.StatusBadRequest},
		{"invalid", fmt.Errorf("%w: bedrooms must be between 1 and 5", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"storage", fmt.Errorf("%w: boom", createBooking.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, serve(h, `{"cleanerId":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"availability":{}}`).Code)
	assert.Nil(t, uc.got)
}
