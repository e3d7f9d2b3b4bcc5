package drafts

import (
	"errors"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

var (
	// ErrDraftNotFound возвращается, когда сессия не найдена или истекла
	ErrDraftNotFound = errors.New("draft not found")

	// ErrValidation возвращается, когда предикат текущего шага не выполнен
	ErrValidation = errors.New("draft step validation failed")

	// ErrNotOnSummary возвращается при попытке фиксации не с шага подтверждения
	ErrNotOnSummary = errors.New("draft is not on the summary step")

	// ErrSubmitInProgress возвращается, когда фиксация этой сессии уже выполняется
	ErrSubmitInProgress = errors.New("draft submit already in progress")

	// ErrServiceNotFound возвращается, когда выбранная услуга не активна
	ErrServiceNotFound = errors.New("service not found")

	// ErrProviderNotFound возвращается, когда выбранный барбер не активен
	ErrProviderNotFound = errors.New("barber not found")

	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)

// ValidationError ошибки полей текущего шага, errors.Is(err, ErrValidation) == true
type ValidationError struct {
	Step   domain.Step
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + " at step " + e.Step.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
