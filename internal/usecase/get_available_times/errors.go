package get_available_times

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден среди активных
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
