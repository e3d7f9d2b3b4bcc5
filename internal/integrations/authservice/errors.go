package authservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrServiceDegraded возвращается, когда роль не удалось получить и пользователь считается без роли
	ErrServiceDegraded = errors.New("authservice unavailable: graceful degradation applied")
)
