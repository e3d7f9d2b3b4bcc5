package authservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/logger"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/users/staff-1/role":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id":"staff-1","role":"staff"}`))
		case "/internal/users/owner-1/role":
			_, _ = w.Write([]byte(`{"user_id":"owner-1","role":"owner"}`))
		case "/internal/users/weird/role":
			_, _ = w.Write([]byte(`{"role":"superuser"}`))
		case "/internal/users/broken/role":
			_, _ = w.Write([]byte(`not json`))
		case "/internal/users/down/role":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetRole(t *testing.T) {
	srv := newServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())
	ctx := context.Background()

	tests := []struct {
		userID  string
		want    domain.Role
		wantErr error
	}{
		{"staff-1", domain.RoleStaff, nil},
		{"owner-1", domain.RoleOwner, nil},
		{"customer", domain.RoleNone, nil},
		{"weird", domain.RoleNone, nil},
		{"broken", domain.RoleNone, ErrInvalidResponse},
		{"down", domain.RoleNone, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			role, err := client.GetRole(ctx, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestGetRoleWithGracefulDegradation(t *testing.T) {
	srv := newServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	role, err := client.GetRoleWithGracefulDegradation(context.Background(), "down")
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.Equal(t, domain.RoleNone, role)

	unreachable := NewClient("http://127.0.0.1:1", 100*time.Millisecond, logger.Nop())
	role, err = unreachable.GetRoleWithGracefulDegradation(context.Background(), "staff-1")
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.Equal(t, domain.RoleNone, role)
}
