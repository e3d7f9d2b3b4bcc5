package events

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// Типы событий, они же значения заголовка event_type
const (
	TypeAppointmentCreated   = "appointment.created"
	TypeAppointmentConfirmed = "appointment.confirmed"
	TypeAppointmentCancelled = "appointment.cancelled"
)

// TypeForStatus тип события для смены статуса, пустая строка если событие не предусмотрено
func TypeForStatus(status domain.AppointmentStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return TypeAppointmentConfirmed
	case domain.StatusCancelled:
		return TypeAppointmentCancelled
	default:
		return ""
	}
}

// Envelope тело сообщения
type Envelope struct {
	EventID     string              `json:"event_id"`
	EventType   string              `json:"event_type"`
	OccurredAt  time.Time           `json:"occurred_at"`
	Appointment AppointmentSnapshot `json:"appointment"`
}

// AppointmentSnapshot состояние записи на момент события
type AppointmentSnapshot struct {
	ID            string  `json:"id"`
	BarberID      string  `json:"barber_id"`
	ServiceID     string  `json:"service_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	Status        string  `json:"status"`
}

func snapshot(a *domain.Appointment) AppointmentSnapshot {
	return AppointmentSnapshot{
		ID:            a.ID,
		BarberID:      a.BarberID,
		ServiceID:     a.ServiceID,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: a.CustomerEmail,
		Status:        string(a.Status),
	}
}
