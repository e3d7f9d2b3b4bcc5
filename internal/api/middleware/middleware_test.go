package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/logger"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) GetRoleWithGracefulDegradation(ctx context.Context, userID string) (domain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}

type mockHTTPMetrics struct {
	mock.Mock
}

func (m *mockHTTPMetrics) ObserveHTTPRequest(method string, path string, status int, duration time.Duration) {
	m.Called(method, path, status, duration)
}

func TestAuth(t *testing.T) {
	var seen string
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("header present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, " user-7 ")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "user-7", seen)
	})
}

func TestGetRole_DefaultsToNone(t *testing.T) {
	assert.Equal(t, domain.RoleNone, GetRole(context.Background()))
	assert.Equal(t, domain.RoleOwner, GetRole(WithRole(context.Background(), domain.RoleOwner)))
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		err      error
		expected domain.Role
	}{
		{name: "staff", role: domain.RoleStaff, expected: domain.RoleStaff},
		{name: "degraded", role: domain.RoleNone, err: errors.New("down"), expected: domain.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mockResolver)
			resolver.On("GetRoleWithGracefulDegradation", mock.Anything, "u1").Return(tt.role, tt.err).Once()

			var got domain.Role
			h := Auth(ResolveRole(resolver, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetRole(r.Context())
			})))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderUserID, "u1")
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expected, got)
			resolver.AssertExpectations(t)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := new(mockHTTPMetrics)
	m.On("ObserveHTTPRequest", http.MethodPatch, "/appointments/{appointmentId}/status", http.StatusConflict, mock.Anything).Once()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{appointmentId}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/appointments/abc/status", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	m.AssertExpectations(t)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, time.Minute, nil)
	h := limiter.Middleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/drafts", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}

func TestRateLimiter_IgnoresClientHeadersFromUntrustedPeer(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1, time.Minute, nil)
	h := limiter.Middleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodPost, "/drafts", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		req.Header.Set(HeaderUserID, fmt.Sprintf("user-%d", i))
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
	assert.Equal(t, 1, limiter.Size())
}

func TestRateLimiter_ClientKey(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute, []string{"10.0.0.1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", limiter.clientKey(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", limiter.clientKey(req))

	req.RemoteAddr = "192.0.2.50:5555"
	assert.Equal(t, "192.0.2.50", limiter.clientKey(req))

	req.Header.Set(HeaderUserID, "u1")
	assert.Equal(t, "192.0.2.50", limiter.clientKey(req))
}

func TestRateLimiter_SweepEvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1, 10*time.Minute, nil)
	limiter.now = func() time.Time { return now }

	limiter.allow("192.0.2.1")
	now = now.Add(8 * time.Minute)
	limiter.allow("192.0.2.2")
	require.Equal(t, 2, limiter.Size())

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, limiter.Sweep())
	assert.Equal(t, 1, limiter.Size())

	// Удалённый клиент получает новый полный bucket
	assert.True(t, limiter.allow("192.0.2.1"))
}
