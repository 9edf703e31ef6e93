package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// RedisCache кэш расписаний полей и банковских счетов владельцев
type RedisCache struct {
	client         redis.Cmdable
	scheduleTTL    time.Duration
	bankAccountTTL time.Duration
}

// NewRedisCache создает кэш поверх redis клиента
func NewRedisCache(client redis.Cmdable, scheduleTTL, bankAccountTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:         client,
		scheduleTTL:    scheduleTTL,
		bankAccountTTL: bankAccountTTL,
	}
}

// GetSchedules возвращает расписание поля из кэша; ok = false при промахе
func (c *RedisCache) GetSchedules(ctx context.Context, fieldID string) ([]domain.Schedule, bool, error) {
	var schedules []domain.Schedule
	ok, err := c.getJSON(ctx, schedulesKey(fieldID), &schedules)
	if err != nil || !ok {
		return nil, false, err
	}
	return schedules, true, nil
}

// SetSchedules сохраняет расписание поля
func (c *RedisCache) SetSchedules(ctx context.Context, fieldID string, schedules []domain.Schedule) error {
	return c.setJSON(ctx, schedulesKey(fieldID), schedules, c.scheduleTTL)
}

// GetBankAccount возвращает банковский счет из кэша; ok = false при промахе
func (c *RedisCache) GetBankAccount(ctx context.Context, key string) (*domain.BankAccount, bool, error) {
	var account domain.BankAccount
	ok, err := c.getJSON(ctx, bankAccountKey(key), &account)
	if err != nil || !ok {
		return nil, false, err
	}
	return &account, true, nil
}

// SetBankAccount сохраняет банковский счет
func (c *RedisCache) SetBankAccount(ctx context.Context, key string, account *domain.BankAccount) error {
	return c.setJSON(ctx, bankAccountKey(key), account, c.bankAccountTTL)
}

func (c *RedisCache) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrCache, key, err)
	}
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, key, err)
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}
	return nil
}

func schedulesKey(fieldID string) string {
	return fmt.Sprintf("cache:field:%s:schedules", fieldID)
}

// bankAccountKey ключ вида "id:<accountId>" или "owner:<ownerId>"
func bankAccountKey(key string) string {
	return fmt.Sprintf("cache:bank-account:%s", key)
}
