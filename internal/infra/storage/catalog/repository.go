package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{"id", "name", "price", "duration"}

var barberColumns = []string{"id", "name", "specialty", "avatar_url"}

// Repository репозиторий каталога: услуги и барберы
// Только чтение, каталог ведётся вне сервиса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveServices активные услуги по возрастанию цены
func (r *Repository) ListActiveServices(ctx context.Context) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("price ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Пустой каталог - валидный результат, поэтому не nil
	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListActiveBarbers активные барберы по имени
func (r *Repository) ListActiveBarbers(ctx context.Context) ([]domain.Provider, error) {
	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]domain.Provider, 0)
	for rows.Next() {
		p, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveBarbers - scan barber: %v", ErrScanRow, err)
		}
		barbers = append(barbers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetActiveService получает активную услугу по ID
func (r *Repository) GetActiveService(ctx context.Context, id string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Price, &s.DurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveService - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetActiveBarber получает активного барбера по ID
func (r *Repository) GetActiveBarber(ctx context.Context, id string) (*domain.Provider, error) {
	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarber - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanBarber(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarber - scan barber: %v", ErrScanRow, err)
	}

	return &p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (domain.Provider, error) {
	var p domain.Provider
	var specialty, avatarURL sql.NullString

	if err := row.Scan(&p.ID, &p.Name, &specialty, &avatarURL); err != nil {
		return domain.Provider{}, err
	}

	p.Specialty = specialty.String
	p.AvatarURL = avatarURL.String
	return p, nil
}
