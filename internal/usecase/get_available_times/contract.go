package get_available_times

import (
	"context"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByBarberAndDate записи барбера на день без отменённых
	GetActiveByBarberAndDate(ctx context.Context, barberID string, date string) ([]*domain.Appointment, error)
}

// CatalogLoader проверка, что барбер активен
type CatalogLoader interface {
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
