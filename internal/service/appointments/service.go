package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/appointment"
)

const (
	resultSuccess = "success"
	resultFailed  = "failed"
)

// Service менеджер жизненного цикла записей для персонала
// Роль определяется один раз на запрос и передаётся явно
type Service struct {
	repo      AppointmentRepository
	publisher EventPublisher
	metrics   Metrics
	logger    Logger

	// strict включает условное обновление только из pending
	// По умолчанию статус перезаписывается без проверки, побеждает последняя запись
	strict bool
}

// NewService создает новый экземпляр менеджера записей
func NewService(
	repo AppointmentRepository,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
	strict bool,
) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		strict:    strict,
	}
}

// LoadForDate все записи календарного дня по возрастанию времени
func (s *Service) LoadForDate(ctx context.Context, role domain.Role, date time.Time) ([]*domain.Appointment, error) {
	if !role.CanManageAppointments() {
		s.logger.Warn("LoadForDate: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}

	day := domain.CalendarDate(date).Format(domain.DateFormat)

	appointments, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("LoadForDate: repository error for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: LoadForDate - %v", ErrAgendaUnavailable, err)
	}

	s.logger.Info("LoadForDate: loaded %d appointments for date=%s", len(appointments), day)
	return appointments, nil
}

// Agenda проекция дня для дальнейших локальных обновлений
func (s *Service) Agenda(ctx context.Context, role domain.Role, date time.Time) (*Agenda, error) {
	appointments, err := s.LoadForDate(ctx, role, date)
	if err != nil {
		return nil, err
	}

	return &Agenda{
		Date:         domain.CalendarDate(date),
		Appointments: appointments,
	}, nil
}

// Transition переводит запись в confirmed или cancelled
func (s *Service) Transition(ctx context.Context, role domain.Role, id string, target domain.AppointmentStatus) (*domain.Appointment, error) {
	s.logger.Info("Transition: appointment id=%s -> %s, role=%s", id, target, role)

	// 1. Права и допустимость целевого статуса
	if !role.CanManageAppointments() {
		s.logger.Warn("Transition: access denied for role=%s", role)
		return nil, ErrAccessDenied
	}
	if !target.IsTransitionTarget() {
		s.logger.Warn("Transition: invalid target status=%s", target)
		return nil, ErrInvalidStatus
	}

	// 2. Обновление в хранилище
	var (
		updated *domain.Appointment
		err     error
	)
	if s.strict {
		updated, err = s.repo.UpdateStatusIfPending(ctx, id, target)
	} else {
		updated, err = s.repo.UpdateStatus(ctx, id, target)
	}

	if err != nil {
		s.metrics.IncTransition(string(target), resultFailed)
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Transition: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrNotPending):
			s.logger.Warn("Transition: appointment id=%s is no longer pending", id)
			return nil, ErrNotPending
		default:
			s.logger.Error("Transition: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - %v", ErrTransition, err)
		}
	}

	s.metrics.IncTransition(string(target), resultSuccess)

	// 3. Событие для уведомлений, ошибка публикации не откатывает смену статуса
	if eventType := events.TypeForStatus(updated.Status); eventType != "" {
		if err := s.publisher.Publish(ctx, eventType, updated); err != nil {
			s.logger.Warn("Transition: failed to publish %s for appointment id=%s: %v", eventType, id, err)
		}
	}

	s.logger.Info("Transition: appointment id=%s is now %s", id, updated.Status)
	return updated, nil
}

// ApplyTransition меняет статус в хранилище и только после подтверждения обновляет проекцию
// При ошибке проекция остаётся прежней
func (s *Service) ApplyTransition(ctx context.Context, role domain.Role, agenda *Agenda, id string, target domain.AppointmentStatus) (*domain.Appointment, error) {
	updated, err := s.Transition(ctx, role, id, target)
	if err != nil {
		return nil, err
	}

	if !agenda.Patch(id, updated.Status) {
		s.logger.Warn("ApplyTransition: appointment id=%s is not in the agenda for %s", id, agenda.Date.Format(domain.DateFormat))
	}

	return updated, nil
}
