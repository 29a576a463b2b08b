package cache

import (
	"context"
	"fmt"
	"time"

	appsync "github.com/erp/partysync/internal/application/sync"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisKeyLock implements CreationLock using Redis.
// This is suitable for distributed deployments where multiple instances
// must not create the same party concurrently.
type RedisKeyLock struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	retry     time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisKeyLock creates a new Redis-based key lock
func NewRedisKeyLock(cfg RedisConfig) (*RedisKeyLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisKeyLockWithClient(client, ""), nil
}

// NewRedisKeyLockWithClient creates a key lock with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisKeyLockWithClient(client *redis.Client, keyPrefix string) *RedisKeyLock {
	if keyPrefix == "" {
		keyPrefix = "sync:lock:"
	}
	return &RedisKeyLock{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       30 * time.Second,
		retry:     50 * time.Millisecond,
	}
}

// Acquire takes the lock with SETNX and polls until it succeeds or the
// context is done. The TTL bounds how long a crashed holder can block
// other instances. Release deletes the key only when the stored token
// still matches, so an expired lock is never released on behalf of a
// later holder.
func (l *RedisKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.keyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		l.client.Eval(releaseCtx, releaseScript, []string{redisKey}, token)
	}
	return release, nil
}

// releaseScript deletes the lock key only if it still holds our token.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`

// Close closes the Redis client
func (l *RedisKeyLock) Close() error {
	return l.client.Close()
}

// Ensure RedisKeyLock implements CreationLock
var _ appsync.CreationLock = (*RedisKeyLock)(nil)
