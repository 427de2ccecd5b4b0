package cleaner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string][]byte{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (m *memoryRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.data[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewBoolResult(false, m.err)
	}
	if _, ok := m.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = value.([]byte)
	return redis.NewBoolResult(true, nil)
}

func (m *memoryRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type countingRepo struct {
	cleaners map[string]*domain.Cleaner
	gets     int
	// afterRead вызывается после копирования, до возврата из GetByID
	afterRead func()
}

func (r *countingRepo) GetByID(_ context.Context, id string) (*domain.Cleaner, error) {
	r.gets++
	c, ok := r.cleaners[id]
	if !ok {
		return nil, cleanerRepo.ErrCleanerNotFound
	}
	out := *c
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return &out, nil
}

func (r *countingRepo) List(context.Context) ([]*domain.Cleaner, error) {
	return nil, nil
}

func (r *countingRepo) Create(_ context.Context, c *domain.Cleaner) (*domain.Cleaner, error) {
	r.cleaners[c.ID] = c
	return c, nil
}

func (r *countingRepo) Update(_ context.Context, c *domain.Cleaner) error {
	r.cleaners[c.ID] = c
	return nil
}

func newRepo() *countingRepo {
	c := domain.NewCleaner("c1", "Ana", "ana@example.com", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	return &countingRepo{cleaners: map[string]*domain.Cleaner{"c1": c}}
}

func TestCache_ReadThrough(t *testing.T) {
	repo := newRepo()
	cache := New(repo, newMemoryRedis(), time.Minute, logger.NewNop())
	ctx := context.Background()

	first, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)
	second, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Pricing, second.Pricing)
	assert.Equal(t, first.FrequencyDiscounts, second.FrequencyDiscounts)
}

func TestCache_UpdateRefreshes(t *testing.T) {
	repo := newRepo()
	cache := New(repo, newMemoryRedis(), time.Minute, logger.NewNop())
	ctx := context.Background()

	c, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)

	c.Phone = "+1 555 0100"
	require.NoError(t, cache.Update(ctx, c))

	got, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0100", got.Phone)
	assert.Equal(t, 1, repo.gets)
}

func TestCache_SlowReadDoesNotOverwriteUpdate(t *testing.T) {
	repo := newRepo()
	cache := New(repo, newMemoryRedis(), time.Minute, logger.NewNop())
	ctx := context.Background()

	blocked := []domain.CalendarDate{domain.MustParseDate("2030-01-08")}
	repo.afterRead = func() {
		updated := *repo.cleaners["c1"]
		updated.BlockedDates = blocked
		require.NoError(t, cache.Update(ctx, &updated))
	}

	stale, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, stale.BlockedDates)

	got, err := cache.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, blocked, got.BlockedDates)
	assert.Equal(t, 1, repo.gets)
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	repo := newRepo()
	cache := New(repo, newMemoryRedis(), time.Minute, logger.NewNop())

	_, err := cache.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, cleanerRepo.ErrCleanerNotFound)
	_, err = cache.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, cleanerRepo.ErrCleanerNotFound)
	assert.Equal(t, 2, repo.gets)
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	repo := newRepo()
	client := newMemoryRedis()
	client.err = errors.New("connection refused")
	cache := New(repo, client, time.Minute, logger.NewNop())

	c, err := cache.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	require.NoError(t, cache.Update(context.Background(), c))
}
