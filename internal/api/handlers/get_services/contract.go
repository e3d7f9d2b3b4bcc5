package get_services

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

type CatalogService interface {
	LoadServices(ctx context.Context) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
