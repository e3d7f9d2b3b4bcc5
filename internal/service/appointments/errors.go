package appointments

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет роли staff или owner
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается, если целевой статус не confirmed и не cancelled
	ErrInvalidStatus = errors.New("invalid target status")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrNotPending возвращается в строгом режиме, если запись уже не pending
	ErrNotPending = errors.New("appointment is not pending")

	// ErrTransition возвращается, когда хранилище не применило смену статуса
	ErrTransition = errors.New("appointments: transition failed")

	// ErrAgendaUnavailable возвращается, когда записи дня не удалось загрузить
	ErrAgendaUnavailable = errors.New("appointments: agenda unavailable")
)
