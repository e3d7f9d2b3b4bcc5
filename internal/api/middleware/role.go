package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// RoleResolver источник роли пользователя
type RoleResolver interface {
	GetRoleWithGracefulDegradation(ctx context.Context, userID string) (domain.Role, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// ResolveRole определяет роль один раз на запрос, должен стоять после Auth
// Ошибка сервиса ролей не прерывает запрос: роль остаётся RoleNone
func ResolveRole(resolver RoleResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), domain.RoleNone)))
				return
			}

			role, err := resolver.GetRoleWithGracefulDegradation(r.Context(), userID)
			if err != nil {
				logger.Warn("ResolveRole: user_id=%s, falling back to role=%s: %v", userID, domain.RoleNone, err)
				role = domain.RoleNone
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}
