package commit_reservation

import (
	"errors"
	"strings"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

var (
	// ErrIncompleteDraft возвращается, если хотя бы один шаг черновика не заполнен
	// Хранилище в этом случае не вызывается
	ErrIncompleteDraft = errors.New("commit_reservation: incomplete draft")

	// ErrStoreRejected возвращается, когда хранилище отклонило вставку
	ErrStoreRejected = errors.New("commit_reservation: store rejected the appointment")
)

// IncompleteDraftError перечень незаполненных полей, errors.Is(err, ErrIncompleteDraft) == true
type IncompleteDraftError struct {
	Fields []domain.FieldError
}

func (e *IncompleteDraftError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return ErrIncompleteDraft.Error() + ": " + strings.Join(names, ", ")
}

func (e *IncompleteDraftError) Unwrap() error {
	return ErrIncompleteDraft
}
