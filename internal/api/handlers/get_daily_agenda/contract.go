package get_daily_agenda

import (
	"context"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/appointments"
)

type AppointmentService interface {
	Agenda(ctx context.Context, role domain.Role, date time.Time) (*appointments.Agenda, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
