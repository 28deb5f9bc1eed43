package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xinyujieHong/CSEN174-Project/internal/config"
)

// counterTTL keeps hot counters alive for an hour; every read or write
// refreshes it, so actively viewed counters never expire.
const counterTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes a Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

func (c *RedisCache) Decr(ctx context.Context, key string) (int64, error) {
	return c.Client.Decr(ctx, key).Result()
}

// KeyForResponseCount generates the Redis key for a carpool request's
// response count.
func (c *RedisCache) KeyForResponseCount(requestID string) string {
	return fmt.Sprintf("carpool:responses:%s", requestID)
}

// KeyForUnread generates the Redis key for a user's unread message
// count within one conversation.
func (c *RedisCache) KeyForUnread(userID, conversationID string) string {
	return fmt.Sprintf("messages:unread:%s:%s", userID, conversationID)
}

func (c *RedisCache) UpdateResponseCount(ctx context.Context, requestID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForResponseCount(requestID), count, counterTTL).Err()
}

// IncrResponseCount bumps the cached response count and refreshes its
// TTL, so an increment never leaves a counter without an expiry.
func (c *RedisCache) IncrResponseCount(ctx context.Context, requestID string) (int64, error) {
	key := c.KeyForResponseCount(requestID)
	n, err := c.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	_ = c.Client.Expire(ctx, key, counterTTL).Err()
	return n, nil
}

// GetResponseCount returns the cached response count for a request.
// A cache miss is reported as found=false, never as an error.
func (c *RedisCache) GetResponseCount(ctx context.Context, requestID string) (int64, bool, error) {
	key := c.KeyForResponseCount(requestID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, counterTTL).Err()
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (c *RedisCache) GetUnreadCount(ctx context.Context, userID, conversationID string) (int64, error) {
	val, err := c.Client.Get(ctx, c.KeyForUnread(userID, conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *RedisCache) ClearUnreadCount(ctx context.Context, userID, conversationID string) error {
	return c.Client.Del(ctx, c.KeyForUnread(userID, conversationID)).Err()
}
