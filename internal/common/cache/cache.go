package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/platform/redis"
)

type CacheService struct {
	redisClient redis.RedisClient
}

func NewCacheService(redisClient redis.RedisClient) *CacheService {
	return &CacheService{
		redisClient: redisClient,
	}
}

// Get получает значение из кэша. A miss is reported with redis.IsMiss, any
// other failure as a CACHE_ERROR.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if redis.IsMiss(err) {
			return err
		}
		return errors.NewCacheError("get", err)
	}

	return json.Unmarshal([]byte(data), dest)
}

// Set сохраняет значение в кэш
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := c.redisClient.Set(ctx, key, string(data), ttl).Err(); err != nil {
		return errors.NewCacheError("set", err)
	}
	return nil
}

// Delete удаляет значение из кэша
func (c *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return errors.NewCacheError("delete", err)
	}
	return nil
}

// DeletePattern removes every key matching pattern. SCAN is used instead of
// KEYS so large keyspaces do not block the server.
func (c *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.redisClient.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return errors.NewCacheError("scan", err)
		}
		if err := c.Delete(ctx, keys...); err != nil {
			return err
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Exists проверяет существование ключа
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := c.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.NewCacheError("exists", err)
	}
	return result > 0, nil
}

func UserKey(id int64) string { return fmt.Sprintf("user:%d", id) }

func UserWalletKey(address string) string { return "user_wallet:" + address }

// InvalidateUser drops every cached view of a user.
func (c *CacheService) InvalidateUser(ctx context.Context, id int64, wallets ...string) error {
	keys := []string{UserKey(id)}
	for _, w := range wallets {
		if w != "" {
			keys = append(keys, UserWalletKey(w))
		}
	}
	return c.Delete(ctx, keys...)
}
