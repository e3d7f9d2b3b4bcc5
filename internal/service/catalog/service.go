package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/catalog"
)

const (
	catalogServices = "services"
	catalogBarbers  = "barbers"
)

// Service загрузчик каталога услуг и барберов
// Фильтрация по активности и сортировка выполняются хранилищем
type Service struct {
	repo    CatalogRepository
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр загрузчика каталога
func NewService(repo CatalogRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// LoadServices активные услуги по возрастанию цены
// Пустой список - валидный результат, ошибка хранилища - ErrCatalogUnavailable
func (s *Service) LoadServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		s.metrics.IncCatalogFailure(catalogServices)
		s.logger.Error("LoadServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: LoadServices - %v", ErrCatalogUnavailable, err)
	}

	s.logger.Info("LoadServices: loaded %d services", len(services))
	return services, nil
}

// LoadProviders активные барберы по имени с подставленными значениями по умолчанию
func (s *Service) LoadProviders(ctx context.Context) ([]domain.Provider, error) {
	barbers, err := s.repo.ListActiveBarbers(ctx)
	if err != nil {
		s.metrics.IncCatalogFailure(catalogBarbers)
		s.logger.Error("LoadProviders: repository error: %v", err)
		return nil, fmt.Errorf("%w: LoadProviders - %v", ErrCatalogUnavailable, err)
	}

	for i := range barbers {
		withDefaults(&barbers[i])
	}

	s.logger.Info("LoadProviders: loaded %d barbers", len(barbers))
	return barbers, nil
}

// FindService разрешает выбор клиента по активному каталогу
func (s *Service) FindService(ctx context.Context, id string) (*domain.Service, error) {
	service, err := s.repo.GetActiveService(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("FindService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.metrics.IncCatalogFailure(catalogServices)
		s.logger.Error("FindService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: FindService - %v", ErrCatalogUnavailable, err)
	}

	return service, nil
}

// FindProvider разрешает выбор барбера по активному каталогу
func (s *Service) FindProvider(ctx context.Context, id string) (*domain.Provider, error) {
	barber, err := s.repo.GetActiveBarber(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("FindProvider: barber id=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.metrics.IncCatalogFailure(catalogBarbers)
		s.logger.Error("FindProvider: repository error for barber id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: FindProvider - %v", ErrCatalogUnavailable, err)
	}

	withDefaults(barber)
	return barber, nil
}

// withDefaults специальность по умолчанию и фиксированный рейтинг для отображения
func withDefaults(p *domain.Provider) {
	if p.Specialty == "" {
		p.Specialty = domain.DefaultSpecialty
	}
	p.Rating = domain.DefaultBarberRating
}
