package get_barbers

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

type CatalogService interface {
	LoadProviders(ctx context.Context) ([]domain.Provider, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
