package handoff

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store is the persistence behind the mailbox.  Set overwrites the slot;
// GetDel reads and deletes it in one step, reporting found=false when the
// slot is empty.  The read-and-delete must be atomic so that no partially
// consumed state is ever observable.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	GetDel(ctx context.Context, key string) (value []byte, found bool, err error)
}

// RedisStore keeps pending records in Redis, which survives process
// restarts the way localStorage survived page navigations.  Records carry
// no TTL: a pending selection never expires, it is consumed or overwritten
// on the next visit.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps the provided client.  The client must be non-nil;
// callers with no Redis connection should fall back to NewMemoryStore.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	if rdb == nil {
		panic("nil redis client passed to NewRedisStore")
	}
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) GetDel(ctx context.Context, key string) ([]byte, bool, error) {
	bs, err := s.rdb.GetDel(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return bs, true, nil
}

// MemoryStore is the in-process fallback used when Redis is unavailable and
// by tests.  Pending records then only live as long as the server does.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.slots[key] = v
	return nil
}

func (s *MemoryStore) GetDel(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	delete(s.slots, key)
	return v, true, nil
}
