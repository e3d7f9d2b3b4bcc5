package appointments

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	UpdateStatusIfPending(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// EventPublisher публикация событий о записях
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, appointment *domain.Appointment) error
}

// Metrics счётчик смен статуса
type Metrics interface {
	IncTransition(status string, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
