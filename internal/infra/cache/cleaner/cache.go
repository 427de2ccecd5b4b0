// Package cleaner read-through кеш в Redis поверх репозитория клинеров.
// Ошибки Redis не ломают запрос: чтение уходит в хранилище.
// Запись кладет свежий профиль в кеш, а чтение заполняет только пустой
// ключ, поэтому чтение, загрузившее профиль до записи, не может его перезаписать.
// Две параллельные записи одного профиля могут оставить в кеше старую до
// истечения TTL.
package cleaner

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

const keyPrefix = "cleaner:"

// Client подмножество redis.Cmdable, используемое кешем
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Repository кешируемое хранилище клинеров
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Cleaner, error)
	List(ctx context.Context) ([]*domain.Cleaner, error)
	Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error)
	Update(ctx context.Context, cleaner *domain.Cleaner) error
}

// Logger printf-логгер
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кеширует GetByID; запись обновляет значение в кеше
type Cache struct {
	repo   Repository
	client Client
	ttl    time.Duration
	logger Logger
}

func New(repo Repository, client Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cache) GetByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	data, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	switch {
	case err == nil:
		var cached domain.Cleaner
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.Normalize()
			return &cached, nil
		}
		c.logger.Warn("cleaner cache: dropping undecodable entry id=%s", id)
		c.invalidate(ctx, id)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("cleaner cache: get id=%s failed: %v", id, err)
	}

	cleaner, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, cleaner)
	return cleaner, nil
}

func (c *Cache) List(ctx context.Context) ([]*domain.Cleaner, error) {
	return c.repo.List(ctx)
}

func (c *Cache) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	created, err := c.repo.Create(ctx, cleaner)
	if err != nil {
		return nil, err
	}
	c.refresh(ctx, created)
	return created, nil
}

func (c *Cache) Update(ctx context.Context, cleaner *domain.Cleaner) error {
	if err := c.repo.Update(ctx, cleaner); err != nil {
		return err
	}
	c.refresh(ctx, cleaner)
	return nil
}

// fill кеширует профиль из хранилища, если запись не успела раньше
func (c *Cache) fill(ctx context.Context, cleaner *domain.Cleaner) {
	data, err := json.Marshal(cleaner)
	if err != nil {
		c.logger.Warn("cleaner cache: encode id=%s failed: %v", cleaner.ID, err)
		return
	}
	if err := c.client.SetNX(ctx, keyPrefix+cleaner.ID, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cleaner cache: setnx id=%s failed: %v", cleaner.ID, err)
	}
}

// refresh перезаписывает запись только что сохраненным профилем; при ошибке
// запись удаляется
func (c *Cache) refresh(ctx context.Context, cleaner *domain.Cleaner) {
	data, err := json.Marshal(cleaner)
	if err == nil {
		err = c.client.Set(ctx, keyPrefix+cleaner.ID, data, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("cleaner cache: refresh id=%s failed: %v", cleaner.ID, err)
		c.invalidate(ctx, cleaner.ID)
	}
}

func (c *Cache) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		c.logger.Warn("cleaner cache: del id=%s failed: %v", id, err)
	}
}
