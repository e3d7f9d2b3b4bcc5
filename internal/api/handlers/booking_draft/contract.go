package booking_draft

import (
	"context"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/drafts"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
)

type DraftService interface {
	Start(ctx context.Context) (*domain.DraftSession, error)
	Get(ctx context.Context, id string) (*domain.DraftSession, error)
	SelectService(ctx context.Context, id string, serviceID string) (*domain.DraftSession, error)
	SelectProvider(ctx context.Context, id string, barberID string) (*domain.DraftSession, error)
	SelectDateTime(ctx context.Context, id string, upd drafts.DateTimeUpdate) (*domain.DraftSession, error)
	UpdateCustomer(ctx context.Context, id string, upd drafts.CustomerUpdate) (*domain.DraftSession, error)
	Next(ctx context.Context, id string) (*domain.DraftSession, error)
	Back(ctx context.Context, id string) (*domain.DraftSession, error)
	Submit(ctx context.Context, id string) (*commit_reservation.Response, error)
	Discard(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
