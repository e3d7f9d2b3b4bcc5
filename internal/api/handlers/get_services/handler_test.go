package get_services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
	"github.com/m04kA/BarberShop-BookingService/pkg/logger"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) LoadServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(mockCatalog)
		svc.On("LoadServices", mock.Anything).Return([]domain.Service{
			{ID: "s1", Name: "Barba", Price: 30, DurationMinutes: 20},
			{ID: "s2", Name: "Corte", Price: 45, DurationMinutes: 30},
		}, nil).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"services":[
			{"id":"s1","name":"Barba","price":30,"durationMinutes":20},
			{"id":"s2","name":"Corte","price":45,"durationMinutes":30}
		]}`, rec.Body.String())
	})

	t.Run("empty catalog is not an error", func(t *testing.T) {
		svc := new(mockCatalog)
		svc.On("LoadServices", mock.Anything).Return([]domain.Service{}, nil).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"services":[]}`, rec.Body.String())
	})

	t.Run("unavailable", func(t *testing.T) {
		svc := new(mockCatalog)
		svc.On("LoadServices", mock.Anything).Return(nil, fmt.Errorf("%w: LoadServices - timeout", catalog.ErrCatalogUnavailable)).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
