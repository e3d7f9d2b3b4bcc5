package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки postgres для нарушения уникального индекса
const uniqueViolation = "23505"

// appointmentColumns колонки записи без join
var appointmentColumns = []string{
	"id",
	"barber_id",
	"service_id",
	"appointment_date",
	"appointment_time",
	"customer_name",
	"customer_phone",
	"customer_email",
	"status",
	"created_at",
	"updated_at",
}

// agendaColumns колонки записи с данными услуги и барбера для дневного расписания
var agendaColumns = []string{
	"a.id",
	"a.barber_id",
	"a.service_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.customer_name",
	"a.customer_phone",
	"a.customer_email",
	"a.status",
	"a.created_at",
	"a.updated_at",
	"s.name",
	"s.duration",
	"b.name",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись, статус всегда pending
// Дата пишется строкой YYYY-MM-DD, чтобы драйвер не сдвигал день по часовому поясу
// Проверки занятости времени нет, при наличии уникального индекса возвращается ErrSlotTaken
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	a.Status = domain.StatusPending

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"barber_id",
			"service_id",
			"appointment_date",
			"appointment_time",
			"customer_name",
			"customer_phone",
			"customer_email",
			"status",
		).
		Values(
			a.BarberID,
			a.ServiceID,
			a.Date.Format(domain.DateFormat),
			a.Time,
			a.CustomerName,
			a.CustomerPhone,
			a.CustomerEmail,
			a.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: Create - %s", ErrSlotTaken, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByDate получает все записи дня вместе с услугой и барбером, по возрастанию времени
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(agendaColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Join("barbers b ON b.id = a.barber_id").
		Where(squirrel.Eq{"a.appointment_date": date}).
		OrderBy("a.appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// GetActiveByBarberAndDate записи барбера на день, кроме отменённых, с длительностью услуги
func (r *Repository) GetActiveByBarberAndDate(ctx context.Context, barberID string, date string) ([]*domain.Appointment, error) {
	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(agendaColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Join("barbers b ON b.id = a.barber_id").
		Where(squirrel.Eq{
			"a.barber_id":        barberID,
			"a.appointment_date": date,
			"a.status":           activeStatuses,
		}).
		OrderBy("a.appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByBarberAndDate - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBarberAndDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus перезаписывает статус без проверки текущего (last write wins)
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	builder := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.updateReturning(ctx, "UpdateStatus", builder)
}

// UpdateStatusIfPending меняет статус, только если запись всё ещё pending
func (r *Repository) UpdateStatusIfPending(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	builder := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending})

	a, err := r.updateReturning(ctx, "UpdateStatusIfPending", builder)
	if !errors.Is(err, ErrAppointmentNotFound) {
		return a, err
	}

	// Строка не обновилась: либо её нет, либо статус уже не pending
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNotPending
	}
	return nil, ErrAppointmentNotFound
}

// Exists проверяет наличие записи
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func (r *Repository) updateReturning(ctx context.Context, op string, builder squirrel.UpdateBuilder) (*domain.Appointment, error) {
	query, args, err := builder.
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return a, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует строку, withJoins - для запросов с услугой и барбером
func scanAppointment(row rowScanner, withJoins bool) (*domain.Appointment, error) {
	var a domain.Appointment
	var email sql.NullString
	var createdAt, updatedAt sql.NullTime

	dest := []interface{}{
		&a.ID,
		&a.BarberID,
		&a.ServiceID,
		&a.Date,
		&a.Time,
		&a.CustomerName,
		&a.CustomerPhone,
		&email,
		&a.Status,
		&createdAt,
		&updatedAt,
	}
	if withJoins {
		dest = append(dest, &a.ServiceName, &a.ServiceDuration, &a.BarberName)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	a.Date = domain.CalendarDate(a.Date)
	if email.Valid {
		a.CustomerEmail = &email.String
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
