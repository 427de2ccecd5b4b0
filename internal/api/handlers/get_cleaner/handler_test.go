package get_cleaner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Get(_ context.Context, id string) (*models.CleanerResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.CleanerResponse{ID: id, Name: "Ana"}, nil
}

func get(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/cleaners/{id}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cleaners/c1", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(&fakeService{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"c1"`)

	assert.Equal(t, http.StatusNotFound, get(&fakeService{err: cleaners.ErrCleanerNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: cleaners.ErrInternal}).Code)
}
