package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/moodrecipes/backend/internal/logging"
)

// LocalLocker serializes callers within one process, one mutex per key
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

// NewLocalLocker creates a new in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free. ctx is not consulted once waiting starts.
func (l *LocalLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.Lock()
	return func() {
		kl.Unlock()
		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}, nil
}

// releaseScript deletes the lock only if we still own it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockConfig tunes a RedisLocker
type RedisLockConfig struct {
	// KeyPrefix is prepended to every lock key
	KeyPrefix string
	// TTL bounds how long a crashed holder can block others
	TTL time.Duration
	// RetryInterval is the wait between acquisition attempts
	RetryInterval time.Duration
}

// RedisLocker shares locks between replicas through Redis
type RedisLocker struct {
	redis  *redis.Client
	config RedisLockConfig
}

// NewRedisLocker creates a new Redis backed locker
func NewRedisLocker(client *redis.Client, config RedisLockConfig) *RedisLocker {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "moodrecipes:lock"
	}
	if config.TTL <= 0 {
		config.TTL = 10 * time.Second
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = 50 * time.Millisecond
	}
	return &RedisLocker{redis: client, config: config}
}

// Lock polls SET NX until it owns key or ctx is done
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := fmt.Sprintf("%s:%s", l.config.KeyPrefix, key)
	token := uuid.NewString()

	ticker := time.NewTicker(l.config.RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.redis.SetNX(ctx, fullKey, token, l.config.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { l.release(fullKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(fullKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := releaseScript.Run(ctx, l.redis, []string{fullKey}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		logging.Warn().Err(err).Str("key", fullKey).Msg("failed to release lock")
	}
}
