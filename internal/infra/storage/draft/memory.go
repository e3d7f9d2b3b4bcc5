package draft

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса, для запуска без redis
// Сессии хранятся сериализованными, чтобы вызывающий не мог изменить сохранённое состояние
type MemoryStore struct {
	mu       sync.Mutex
	drafts   map[string]memoryEntry
	latches  map[string]time.Time
	ttl      time.Duration
	latchTTL time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl, latchTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		drafts:   make(map[string]memoryEntry),
		latches:  make(map[string]time.Time),
		ttl:      ttl,
		latchTTL: latchTTL,
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*domain.DraftSession, error) {
	m.mu.Lock()
	entry, ok := m.drafts[id]
	if ok && !m.now().Before(entry.expiresAt) {
		delete(m.drafts, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrDraftNotFound
	}
	return decode(entry.data)
}

func (m *MemoryStore) Save(ctx context.Context, s *domain.DraftSession) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[s.ID] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	delete(m.latches, id)
	return nil
}

func (m *MemoryStore) AcquireSubmitLatch(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if expiresAt, held := m.latches[id]; held && now.Before(expiresAt) {
		return false, nil
	}
	m.latches[id] = now.Add(m.latchTTL)
	return true, nil
}

func (m *MemoryStore) ReleaseSubmitLatch(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.latches, id)
	return nil
}
