package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

const (
	draftKeyPrefix = "booking_draft:"
	latchKeyPrefix = "booking_draft_submit:"
)

// RedisStore хранилище сессий черновиков в redis с TTL
type RedisStore struct {
	client   *redis.Client
	ttl      time.Duration
	latchTTL time.Duration
}

// NewRedisStore ttl продлевается при каждом сохранении
// latchTTL ограничивает время жизни защёлки отправки, если процесс упал во время фиксации
func NewRedisStore(client *redis.Client, ttl, latchTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:   client,
		ttl:      ttl,
		latchTTL: latchTTL,
	}
}

// Get получает сессию по ID
func (r *RedisStore) Get(ctx context.Context, id string) (*domain.DraftSession, error) {
	val, err := r.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrStore, err)
	}

	return decode(val)
}

// Save сохраняет сессию целиком
func (r *RedisStore) Save(ctx context.Context, s *domain.DraftSession) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, draftKeyPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет сессию и её защёлку, отсутствие сессии не ошибка
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, draftKeyPrefix+id, latchKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStore, err)
	}
	return nil
}

// AcquireSubmitLatch false, если фиксация этой сессии уже выполняется
func (r *RedisStore) AcquireSubmitLatch(ctx context.Context, id string) (bool, error) {
	ok, err := r.client.SetNX(ctx, latchKeyPrefix+id, 1, r.latchTTL).Result()
	if err != nil {
		return false, fmt.Errorf("%w: AcquireSubmitLatch - %v", ErrStore, err)
	}
	return ok, nil
}

// ReleaseSubmitLatch снимает защёлку
func (r *RedisStore) ReleaseSubmitLatch(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, latchKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseSubmitLatch - %v", ErrStore, err)
	}
	return nil
}
