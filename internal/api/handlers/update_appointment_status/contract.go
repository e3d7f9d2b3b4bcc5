package update_appointment_status

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

type AppointmentService interface {
	Transition(ctx context.Context, role domain.Role, id string, target domain.AppointmentStatus) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
