package commit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/appointment"
)

const (
	resultSuccess    = "success"
	resultIncomplete = "incomplete"
	resultRejected   = "rejected"
)

// UseCase фиксация черновика в запись
// Одна вставка без повторов; проверки занятости времени нет
type UseCase struct {
	appointmentRepo AppointmentRepository
	publisher       EventPublisher
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case фиксации бронирования
func (uc *UseCase) Execute(ctx context.Context, draft *domain.BookingDraft) (*Response, error) {
	// 1. Проверка полноты до обращения к хранилищу
	if err := validateDraft(draft); err != nil {
		uc.metrics.IncCommit(resultIncomplete)
		uc.logger.Warn("CommitReservation: %v", err)
		return nil, err
	}

	uc.logger.Info("CommitReservation: barber=%s, service=%s, date=%s, time=%s",
		draft.Provider.ID, draft.Service.ID, draft.Date.Format(domain.DateFormat), *draft.Time)

	// 2. Единственная вставка со статусом pending
	appointment, err := uc.appointmentRepo.Create(ctx, buildAppointment(draft))
	if err != nil {
		uc.metrics.IncCommit(resultRejected)
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CommitReservation: slot %s %s already taken for barber=%s",
				draft.Date.Format(domain.DateFormat), *draft.Time, draft.Provider.ID)
		} else {
			uc.logger.Error("CommitReservation: failed to create appointment: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreRejected, err)
	}

	uc.metrics.IncCommit(resultSuccess)
	uc.logger.Info("CommitReservation: created appointment id=%s", appointment.ID)

	// 3. Уведомление соседних сервисов, ошибка не отменяет запись
	if err := uc.publisher.Publish(ctx, events.TypeAppointmentCreated, appointment); err != nil {
		uc.logger.Warn("CommitReservation: failed to publish event for appointment id=%s: %v", appointment.ID, err)
	}

	return toResponse(appointment, draft), nil
}
