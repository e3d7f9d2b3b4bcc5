package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса авторизации, отдающего роль пользователя
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса авторизации
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRole получает роль пользователя
// Пользователь без записи о роли получает RoleNone без ошибки
func (c *Client) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/role", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.RoleNone, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RoleNone, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return domain.RoleNone, nil
	case http.StatusBadRequest:
		return domain.RoleNone, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return domain.RoleNone, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var role RoleResponse
	if err := json.NewDecoder(resp.Body).Decode(&role); err != nil {
		return domain.RoleNone, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return domain.ParseRole(role.Role), nil
}

// GetRoleWithGracefulDegradation при недоступности сервиса пользователь считается без роли
// Ошибка ErrServiceDegraded возвращается вместе с RoleNone, чтобы вызывающий мог её залогировать
func (c *Client) GetRoleWithGracefulDegradation(ctx context.Context, userID string) (domain.Role, error) {
	role, err := c.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.RoleNone, err
		}

		c.log.Error("AuthService unavailable, treating user_id=%s as role none: %v", userID, err)
		return domain.RoleNone, fmt.Errorf("%w: user_id=%s, error=%v", ErrServiceDegraded, userID, err)
	}

	return role, nil
}
