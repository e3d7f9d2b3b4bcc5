package drafts

import (
	"context"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
)

// DraftStore интерфейс хранилища сессий черновиков
type DraftStore interface {
	Get(ctx context.Context, id string) (*domain.DraftSession, error)
	Save(ctx context.Context, s *domain.DraftSession) error
	Delete(ctx context.Context, id string) error
	AcquireSubmitLatch(ctx context.Context, id string) (bool, error)
	ReleaseSubmitLatch(ctx context.Context, id string) error
}

// CatalogLoader разрешение выбора по активному каталогу
type CatalogLoader interface {
	FindService(ctx context.Context, id string) (*domain.Service, error)
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
}

// ReservationCommitter фиксация заполненного черновика
type ReservationCommitter interface {
	Execute(ctx context.Context, draft *domain.BookingDraft) (*commit_reservation.Response, error)
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
