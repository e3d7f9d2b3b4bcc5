package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	draftStore "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
	"github.com/m04kA/BarberShop-BookingService/pkg/phone"
)

// Service сессии мастера бронирования
// Черновик живёт только в хранилище сессий и попадает в базу одной вставкой при фиксации
type Service struct {
	store        DraftStore
	catalog      CatalogLoader
	committer    ReservationCommitter
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	store DraftStore,
	catalog CatalogLoader,
	committer ReservationCommitter,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		committer:    committer,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Start создаёт пустой черновик на шаге выбора услуги
func (s *Service) Start(ctx context.Context) (*domain.DraftSession, error) {
	session := domain.NewDraftSession(s.newID(), s.timeProvider.Now())

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Start: failed to save draft: %v", err)
		return nil, fmt.Errorf("%w: Start - save draft: %v", ErrInternal, err)
	}

	s.logger.Info("Start: created draft id=%s", session.ID)
	return session, nil
}

// Get получает сессию по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			s.logger.Warn("Get: draft id=%s not found", id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("Get: failed to load draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - load draft: %v", ErrInternal, err)
	}
	return session, nil
}

// SelectService выбор услуги из активного каталога
func (s *Service) SelectService(ctx context.Context, id string, serviceID string) (*domain.DraftSession, error) {
	service, err := s.catalog.FindService(ctx, serviceID)
	if err != nil {
		return nil, s.mapCatalogError("SelectService", err)
	}

	return s.update(ctx, "SelectService", id, func(session *domain.DraftSession) {
		session.Draft.Service = service
		session.ClearFieldErrors(domain.FieldService)
	})
}

// SelectProvider выбор барбера из активного каталога
func (s *Service) SelectProvider(ctx context.Context, id string, barberID string) (*domain.DraftSession, error) {
	provider, err := s.catalog.FindProvider(ctx, barberID)
	if err != nil {
		return nil, s.mapCatalogError("SelectProvider", err)
	}

	return s.update(ctx, "SelectProvider", id, func(session *domain.DraftSession) {
		session.Draft.Provider = provider
		session.ClearFieldErrors(domain.FieldBarber)
	})
}

// SelectDateTime выбор даты и/или времени
func (s *Service) SelectDateTime(ctx context.Context, id string, upd DateTimeUpdate) (*domain.DraftSession, error) {
	return s.update(ctx, "SelectDateTime", id, func(session *domain.DraftSession) {
		if upd.Date != nil {
			date := domain.CalendarDate(*upd.Date)
			session.Draft.Date = &date
			session.ClearFieldErrors(domain.FieldDate)
		}
		if upd.Time != nil {
			tm := *upd.Time
			session.Draft.Time = &tm
			session.ClearFieldErrors(domain.FieldTime)
		}
	})
}

// UpdateCustomer изменение данных клиента, телефон форматируется при каждом изменении
func (s *Service) UpdateCustomer(ctx context.Context, id string, upd CustomerUpdate) (*domain.DraftSession, error) {
	return s.update(ctx, "UpdateCustomer", id, func(session *domain.DraftSession) {
		if upd.Name != nil {
			session.Draft.Customer.Name = *upd.Name
			session.ClearFieldErrors(domain.FieldName)
		}
		if upd.Phone != nil {
			session.Draft.Customer.Phone = phone.Format(*upd.Phone)
			session.ClearFieldErrors(domain.FieldPhone)
		}
		if upd.Email != nil {
			session.Draft.Customer.Email = *upd.Email
			session.ClearFieldErrors(domain.FieldEmail)
		}
	})
}

// Next переход на следующий шаг
// При невыполненном предикате сессия сохраняется с ошибками полей и возвращается вместе с ValidationError
func (s *Service) Next(ctx context.Context, id string) (*domain.DraftSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step.IsTerminal() {
		s.logger.Warn("Next: draft id=%s is already on the summary step", id)
		return session, nil
	}

	from := session.Step
	fields, ok := session.Next()
	session.UpdatedAt = s.timeProvider.Now()

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Next: failed to save draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Next - save draft: %v", ErrInternal, err)
	}

	if !ok {
		s.logger.Info("Next: draft id=%s blocked at step %s, %d field errors", id, from, len(fields))
		return session, &ValidationError{Step: from, Fields: fields}
	}

	s.logger.Info("Next: draft id=%s moved %s -> %s", id, from, session.Step)
	return session, nil
}

// Back переход на предыдущий шаг, без проверки и без потери данных
func (s *Service) Back(ctx context.Context, id string) (*domain.DraftSession, error) {
	return s.update(ctx, "Back", id, func(session *domain.DraftSession) {
		session.Back()
	})
}

// Discard отказ от черновика
func (s *Service) Discard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Discard: failed to delete draft id=%s: %v", id, err)
		return fmt.Errorf("%w: Discard - delete draft: %v", ErrInternal, err)
	}

	s.logger.Info("Discard: draft id=%s discarded", id)
	return nil
}

// Submit фиксация черновика с шага подтверждения
// Одновременно для сессии выполняется не более одной фиксации
// При успехе сессия удаляется, при отказе хранилища остаётся для повтора
func (s *Service) Submit(ctx context.Context, id string) (*commit_reservation.Response, error) {
	// 1. Защёлка от повторной отправки, до чтения сессии
	acquired, err := s.store.AcquireSubmitLatch(ctx, id)
	if err != nil {
		s.logger.Error("Submit: failed to acquire latch for draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Submit - acquire latch: %v", ErrInternal, err)
	}
	if !acquired {
		s.logger.Warn("Submit: draft id=%s submit already in progress", id)
		return nil, ErrSubmitInProgress
	}
	defer func() {
		if err := s.store.ReleaseSubmitLatch(context.WithoutCancel(ctx), id); err != nil {
			s.logger.Error("Submit: failed to release latch for draft id=%s: %v", id, err)
		}
	}()

	// 2. Сессия читается под защёлкой: после успешной фиксации её уже нет
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Step.IsTerminal() {
		s.logger.Warn("Submit: draft id=%s is on step %s", id, session.Step)
		return nil, ErrNotOnSummary
	}

	// 3. Фиксация
	resp, err := s.committer.Execute(ctx, &session.Draft)
	if err != nil {
		s.logger.Warn("Submit: commit failed for draft id=%s: %v", id, err)
		return nil, err
	}

	// 4. Запись создана, черновик больше не нужен
	if err := s.store.Delete(context.WithoutCancel(ctx), id); err != nil {
		s.logger.Error("Submit: appointment id=%s created, but draft id=%s not deleted: %v", resp.ID, id, err)
	}

	s.logger.Info("Submit: draft id=%s committed as appointment id=%s", id, resp.ID)
	return resp, nil
}

func (s *Service) update(ctx context.Context, op string, id string, mutate func(session *domain.DraftSession)) (*domain.DraftSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mutate(session)
	session.UpdatedAt = s.timeProvider.Now()

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("%s: failed to save draft id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - save draft: %v", ErrInternal, op, err)
	}

	return session, nil
}

func (s *Service) mapCatalogError(op string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		return ErrServiceNotFound
	case errors.Is(err, catalog.ErrProviderNotFound):
		return ErrProviderNotFound
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		s.logger.Error("%s: catalog unavailable: %v", op, err)
		return fmt.Errorf("%w: %s - %v", ErrCatalogUnavailable, op, err)
	default:
		s.logger.Error("%s: catalog error: %v", op, err)
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
}
