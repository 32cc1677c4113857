package auth

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// StateTTL bounds how long a login may take between redirect and callback.
const StateTTL = 10 * time.Minute

var ErrUnknownState = errors.New("unknown or expired login state")

// StateStore keeps PKCE verifiers keyed by OAuth state. Take removes the
// entry so a state can only be redeemed once.
type StateStore interface {
	Put(ctx context.Context, state, verifier string) error
	Take(ctx context.Context, state string) (string, error)
}

type RedisStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client, prefix: "auth:pkce:", ttl: StateTTL}
}

func (s *RedisStateStore) Put(ctx context.Context, state, verifier string) error {
	if err := s.client.Set(ctx, s.prefix+state, verifier, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set pkce state")
	}
	return nil
}

func (s *RedisStateStore) Take(ctx context.Context, state string) (string, error) {
	v, err := s.client.GetDel(ctx, s.prefix+state).Result()
	if err == redis.Nil {
		return "", ErrUnknownState
	}
	if err != nil {
		return "", errors.Wrap(err, "redis getdel pkce state")
	}
	return v, nil
}

type memoryEntry struct {
	verifier string
	expires  time.Time
}

// MemoryStateStore is used when no Redis is configured. It only works with a
// single server instance.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{entries: map[string]memoryEntry{}, ttl: StateTTL, now: time.Now}
}

func (s *MemoryStateStore) Put(ctx context.Context, state, verifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[state] = memoryEntry{verifier: verifier, expires: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStateStore) Take(ctx context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[state]
	delete(s.entries, state)
	if !ok || s.now().After(e.expires) {
		return "", ErrUnknownState
	}
	return e.verifier, nil
}
