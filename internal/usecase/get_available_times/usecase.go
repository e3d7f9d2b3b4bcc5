package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
)

// UseCase use case для получения времени, свободного у барбера
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogLoader
	schedule        Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// Некорректное расписание - ошибка конфигурации, проверяется при старте
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogLoader,
	schedule Schedule,
	logger Logger,
) (*UseCase, error) {
	if err := validateSchedule(schedule); err != nil {
		return nil, fmt.Errorf("get_available_times: invalid schedule: %w", err)
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}, nil
}

// Execute выполняет use case получения свободного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: barber=%s, date=%s", req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.CalendarDate(req.Date)

	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableTimes: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Барбер должен быть активен
	if _, err := uc.catalog.FindProvider(ctx, req.BarberID); err != nil {
		if errors.Is(err, catalog.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableTimes: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Генерируем времена начала
	starts, err := generateStartTimes(uc.schedule, date, now)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to generate start times: %v", err)
		return nil, fmt.Errorf("%w: failed to generate start times: %v", ErrInternal, err)
	}

	// 5. Записи барбера на этот день
	appointments, err := uc.appointmentRepo.GetActiveByBarberAndDate(ctx, req.BarberID, date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Отмечаем занятое время
	slots := markAvailability(starts, uc.schedule.SlotStepMinutes, appointments)

	uc.logger.Info("GetAvailableTimes: generated %d slots for barber=%s, date=%s, %d appointments",
		len(slots), req.BarberID, date.Format(domain.DateFormat), len(appointments))

	return &Response{
		Date:     date,
		BarberID: req.BarberID,
		Slots:    slots,
	}, nil
}
