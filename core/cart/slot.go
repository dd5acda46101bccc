package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoCart reports that the slot holds nothing under the given key.
var ErrNoCart = errors.New("no cart stored")

// Slot is the durable key-value interface the ledger persists through.
// Any storage honoring this contract will do.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// RedisSlot keeps cart blobs in Redis under a common prefix, expiring
// them after ttl. A zero ttl keeps them forever.
type RedisSlot struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisSlot(client *redis.Client, prefix string, ttl time.Duration) *RedisSlot {
	return &RedisSlot{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoCart
	}
	return blob, err
}

func (s *RedisSlot) Save(ctx context.Context, key string, blob []byte) error {
	return s.client.Set(ctx, s.prefix+key, blob, s.ttl).Err()
}

// MemorySlot is a process-local slot, used in tests and as the
// fallback when Redis is unreachable at startup.
type MemorySlot struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{blobs: make(map[string][]byte)}
}

func (s *MemorySlot) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrNoCart
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *MemorySlot) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return nil
}
