package create_appointment

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
)

type CatalogService interface {
	FindService(ctx context.Context, id string) (*domain.Service, error)
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
}

type CommitReservationUseCase interface {
	Execute(ctx context.Context, draft *domain.BookingDraft) (*commit_reservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
