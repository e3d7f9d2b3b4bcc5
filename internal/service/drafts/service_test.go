package drafts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	draftStore "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
	"github.com/m04kA/BarberShop-BookingService/pkg/logger"
	"github.com/m04kA/BarberShop-BookingService/pkg/ptr"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FindService(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockCatalog) FindProvider(ctx context.Context, id string) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type mockCommitter struct {
	mock.Mock
}

func (m *mockCommitter) Execute(ctx context.Context, draft *domain.BookingDraft) (*commit_reservation.Response, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commit_reservation.Response), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fixture struct {
	store     *draftStore.MemoryStore
	catalog   *mockCatalog
	committer *mockCommitter
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		store:     draftStore.NewMemoryStore(30*time.Minute, 30*time.Second),
		catalog:   new(mockCatalog),
		committer: new(mockCommitter),
	}
	f.svc = NewService(f.store, f.catalog, f.committer, logger.Nop())
	f.svc.timeProvider = &fixedTime{now: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)}
	f.svc.newID = func() string { return "d1" }

	f.catalog.On("FindService", mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", Name: "Corte", Price: 35, DurationMinutes: 30}, nil).Maybe()
	f.catalog.On("FindProvider", mock.Anything, "p1").
		Return(&domain.Provider{ID: "p1", Name: "Carlos", Specialty: "Barbeiro", Rating: 5}, nil).Maybe()
	return f
}

// fillToSummary проходит все шаги с корректными данными
func (f *fixture) fillToSummary(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.Start(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectService(ctx, "d1", "s1")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "d1")
	require.NoError(t, err)

	_, err = f.svc.SelectProvider(ctx, "d1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "d1")
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, "d1", DateTimeUpdate{
		Date: ptr.Ptr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		Time: ptr.Ptr(types.TimeString("14:30")),
	})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, "d1")
	require.NoError(t, err)

	_, err = f.svc.UpdateCustomer(ctx, "d1", CustomerUpdate{
		Name:  ptr.Ptr("Ana Silva"),
		Phone: ptr.Ptr("11987654321"),
	})
	require.NoError(t, err)
	session, err := f.svc.Next(ctx, "d1")
	require.NoError(t, err)
	require.Equal(t, domain.StepSummary, session.Step)
}

func TestStart(t *testing.T) {
	f := newFixture()

	session, err := f.svc.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "d1", session.ID)
	assert.Equal(t, domain.StepService, session.Step)
	assert.Equal(t, domain.BookingDraft{}, session.Draft)

	stored, err := f.svc.Get(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, session, stored)
}

func TestGetUnknownDraft(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = f.svc.Next(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestNextBlockedKeepsStepAndRecordsFieldErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.Start(ctx)
	require.NoError(t, err)

	session, err := f.svc.Next(ctx, "d1")
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.StepService, verr.Step)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, domain.FieldService, verr.Fields[0].Field)
	assert.Equal(t, domain.StepService, session.Step)

	stored, err := f.svc.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, stored.FieldErrors, 1)

	// Изменение поля снимает его ошибку
	session, err = f.svc.SelectService(ctx, "d1", "s1")
	require.NoError(t, err)
	assert.Empty(t, session.FieldErrors)
}

func TestCustomerStepValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	_, err := f.svc.Back(ctx, "d1")
	require.NoError(t, err)

	session, err := f.svc.UpdateCustomer(ctx, "d1", CustomerUpdate{
		Name:  ptr.Ptr("Al"),
		Phone: ptr.Ptr("119876"),
		Email: ptr.Ptr("ana@"),
	})
	require.NoError(t, err)
	assert.Equal(t, "(11) 9876", session.Draft.Customer.Phone)

	session, err = f.svc.Next(ctx, "d1")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, domain.StepCustomer, session.Step)
	assert.Len(t, session.FieldErrors, 3)

	session, err = f.svc.UpdateCustomer(ctx, "d1", CustomerUpdate{Phone: ptr.Ptr("(11) 98765-43210")})
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321", session.Draft.Customer.Phone)
	require.Len(t, session.FieldErrors, 2)
	assert.Equal(t, domain.FieldName, session.FieldErrors[0].Field)
	assert.Equal(t, domain.FieldEmail, session.FieldErrors[1].Field)
}

func TestBackNeverLosesData(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	before, err := f.svc.Get(ctx, "d1")
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		_, err := f.svc.Back(ctx, "d1")
		require.NoError(t, err)
	}

	after, err := f.svc.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepService, after.Step)
	assert.Equal(t, before.Draft, after.Draft)
}

func TestNextOnSummaryIsNoop(t *testing.T) {
	f := newFixture()
	f.fillToSummary(t)

	session, err := f.svc.Next(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSummary, session.Step)
}

func TestSelectUnknownCatalogEntries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.Start(ctx)
	require.NoError(t, err)

	f.catalog.On("FindService", mock.Anything, "gone").Return(nil, catalog.ErrServiceNotFound)
	f.catalog.On("FindProvider", mock.Anything, "gone").Return(nil, catalog.ErrProviderNotFound)
	f.catalog.On("FindService", mock.Anything, "down").
		Return(nil, fmt.Errorf("%w: FindService - timeout", catalog.ErrCatalogUnavailable))

	_, err = f.svc.SelectService(ctx, "d1", "gone")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = f.svc.SelectProvider(ctx, "d1", "gone")
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = f.svc.SelectService(ctx, "d1", "down")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	stored, err := f.svc.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Nil(t, stored.Draft.Service)
}

func TestSubmitRequiresSummaryStep(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Start(context.Background())
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), "d1")
	assert.ErrorIs(t, err, ErrNotOnSummary)
	f.committer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSubmitSuccessDiscardsDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	f.committer.On("Execute", mock.Anything, mock.MatchedBy(func(d *domain.BookingDraft) bool {
		return d.Service.ID == "s1" &&
			d.Provider.ID == "p1" &&
			d.Customer.Phone == "(11) 98765-4321" &&
			*d.Time == types.TimeString("14:30")
	})).Return(&commit_reservation.Response{ID: "appt-1", Status: "pending"}, nil).Once()

	resp, err := f.svc.Submit(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)

	_, err = f.svc.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	f.committer.AssertExpectations(t)
}

func TestSubmitRejectedKeepsDraftForRetry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	f.committer.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: insert failed", commit_reservation.ErrStoreRejected)).Once()
	f.committer.On("Execute", mock.Anything, mock.Anything).
		Return(&commit_reservation.Response{ID: "appt-2"}, nil).Once()

	_, err := f.svc.Submit(ctx, "d1")
	require.ErrorIs(t, err, commit_reservation.ErrStoreRejected)

	stored, err := f.svc.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSummary, stored.Step)
	assert.Equal(t, "Ana Silva", stored.Draft.Customer.Name)

	// Защёлка снята, повтор возможен
	resp, err := f.svc.Submit(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "appt-2", resp.ID)
	f.committer.AssertNumberOfCalls(t, "Execute", 2)
}

func TestSubmitWhileInFlight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	acquired, err := f.store.AcquireSubmitLatch(ctx, "d1")
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = f.svc.Submit(ctx, "d1")
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	f.committer.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	_, err = f.svc.Get(ctx, "d1")
	assert.NoError(t, err)
}

// gatedStore задерживает первый вызов AcquireSubmitLatch до сигнала release
type gatedStore struct {
	DraftStore

	mu      sync.Mutex
	gated   bool
	entered chan struct{}
	release chan struct{}
}

func newGatedStore(inner DraftStore) *gatedStore {
	return &gatedStore{
		DraftStore: inner,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (g *gatedStore) AcquireSubmitLatch(ctx context.Context, id string) (bool, error) {
	g.mu.Lock()
	first := !g.gated
	g.gated = true
	g.mu.Unlock()

	if first {
		close(g.entered)
		<-g.release
	}
	return g.DraftStore.AcquireSubmitLatch(ctx, id)
}

func TestSubmitConcurrentCommitsDraftOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillToSummary(t)

	gated := newGatedStore(f.store)
	f.svc.store = gated

	f.committer.On("Execute", mock.Anything, mock.Anything).
		Return(&commit_reservation.Response{ID: "appt-1", Status: "pending"}, nil).Once()

	// Вторая отправка застревает на защёлке, первая проходит целиком
	lateErr := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, "d1")
		lateErr <- err
	}()
	<-gated.entered

	resp, err := f.svc.Submit(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)

	close(gated.release)
	assert.ErrorIs(t, <-lateErr, ErrDraftNotFound)

	f.committer.AssertNumberOfCalls(t, "Execute", 1)
}

func TestDiscard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, "d1"))

	_, err = f.svc.Get(ctx, "d1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
