package catalog

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActiveServices(ctx context.Context) ([]domain.Service, error)
	ListActiveBarbers(ctx context.Context) ([]domain.Provider, error)
	GetActiveService(ctx context.Context, id string) (*domain.Service, error)
	GetActiveBarber(ctx context.Context, id string) (*domain.Provider, error)
}

// Metrics счётчик неудачных загрузок каталога
type Metrics interface {
	IncCatalogFailure(catalog string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
