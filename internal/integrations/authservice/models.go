package authservice

// RoleResponse ответ сервиса авторизации
type RoleResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
