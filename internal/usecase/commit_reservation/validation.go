package commit_reservation

import (
	"strings"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/ptr"
)

// validateDraft все четыре шага должны быть заполнены
func validateDraft(draft *domain.BookingDraft) error {
	if draft == nil {
		return &IncompleteDraftError{Fields: (&domain.BookingDraft{}).Validate()}
	}
	if fields := draft.Validate(); len(fields) > 0 {
		return &IncompleteDraftError{Fields: fields}
	}
	return nil
}

// buildAppointment переносит черновик в запись
// Дата хранится как выбранный календарный день без сдвига по часовому поясу
func buildAppointment(draft *domain.BookingDraft) *domain.Appointment {
	var email *string
	if e := strings.TrimSpace(draft.Customer.Email); e != "" {
		email = ptr.Ptr(e)
	}

	return &domain.Appointment{
		BarberID:      draft.Provider.ID,
		ServiceID:     draft.Service.ID,
		Date:          domain.CalendarDate(*draft.Date),
		Time:          *draft.Time,
		CustomerName:  strings.TrimSpace(draft.Customer.Name),
		CustomerPhone: draft.Customer.Phone,
		CustomerEmail: email,
		Status:        domain.StatusPending,
	}
}
