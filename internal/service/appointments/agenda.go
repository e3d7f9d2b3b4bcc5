package appointments

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// Agenda загруженные записи одного дня, упорядоченные по времени
// Изменяется только через Patch после подтверждения хранилищем
type Agenda struct {
	Date         time.Time
	Appointments []*domain.Appointment
}

// Patch обновляет статус записи в проекции без перезагрузки дня
// false, если записи с таким id в проекции нет
func (a *Agenda) Patch(id string, status domain.AppointmentStatus) bool {
	for _, appt := range a.Appointments {
		if appt.ID == id {
			appt.Status = status
			return true
		}
	}
	return false
}

// Find запись проекции по id
func (a *Agenda) Find(id string) (*domain.Appointment, bool) {
	for _, appt := range a.Appointments {
		if appt.ID == id {
			return appt, true
		}
	}
	return nil, false
}

// Stats счётчики дня, пересчитываются при каждом вызове
func (a *Agenda) Stats() domain.DailyStats {
	return domain.SummarizeDay(a.Appointments)
}
