package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestListActiveServices(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, price, duration FROM services WHERE is_active = $1 ORDER BY price ASC",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow("s1", "Corte", 35.0, 30).
			AddRow("s2", "Corte + Barba", 60.0, 50))

	services, err := repo.ListActiveServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{
		{ID: "s1", Name: "Corte", Price: 35, DurationMinutes: 30},
		{ID: "s2", Name: "Corte + Barba", Price: 60, DurationMinutes: 50},
	}, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveServicesEmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM services").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	services, err := repo.ListActiveServices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestListActiveServicesStoreFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM services").
		WillReturnError(errors.New("connection refused"))

	services, err := repo.ListActiveServices(context.Background())
	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestListActiveBarbers(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, specialty, avatar_url FROM barbers WHERE is_active = $1 ORDER BY name ASC",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(barberColumns).
			AddRow("p1", "Carlos", nil, nil).
			AddRow("p2", "João", "Navalha", "https://cdn/joao.png"))

	barbers, err := repo.ListActiveBarbers(context.Background())
	require.NoError(t, err)
	require.Len(t, barbers, 2)
	assert.Equal(t, domain.Provider{ID: "p1", Name: "Carlos"}, barbers[0])
	assert.Equal(t, "Navalha", barbers[1].Specialty)
	assert.Equal(t, "https://cdn/joao.png", barbers[1].AvatarURL)
}

func TestGetActiveServiceNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM services WHERE").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetActiveService(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetActiveBarber(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM barbers WHERE").
		WillReturnRows(sqlmock.NewRows(barberColumns).AddRow("p1", "Carlos", "Barbeiro", nil))

	p, err := repo.GetActiveBarber(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Carlos", p.Name)

	mock.ExpectQuery("SELECT (.+) FROM barbers WHERE").
		WillReturnRows(sqlmock.NewRows(barberColumns))

	_, err = repo.GetActiveBarber(context.Background(), "p9")
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
