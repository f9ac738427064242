package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"inventario/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrCartNotFound is returned when a cart id is unknown or its session expired.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartBusy is returned when another request holds the cart lock for too long.
	ErrCartBusy = errors.New("cart is busy")
)

// CartStore holds pending carts between requests of one sale-entry session.
// Carts are never written to the relational store; an entry that outlives
// its TTL is dropped, which abandons the cart.
type CartStore interface {
	Save(ctx context.Context, c *model.PendingSale) error
	Get(ctx context.Context, id uuid.UUID) (*model.PendingSale, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Lock serializes load, change and save of one cart across requests.
	// The returned func releases the lock.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}

// ── In-memory store ──────────────────────────────────────────────────────────

type memoryCartEntry struct {
	cart      *model.PendingSale
	expiresAt time.Time
}

type cartLock struct {
	mu   sync.Mutex
	refs int
}

type memoryCartStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts map[uuid.UUID]memoryCartEntry
	now   func() time.Time

	locksMu sync.Mutex
	locks   map[uuid.UUID]*cartLock
}

// NewMemoryCartStore keeps carts in process memory.
func NewMemoryCartStore(ttl time.Duration) CartStore {
	return &memoryCartStore{
		ttl:   ttl,
		carts: make(map[uuid.UUID]memoryCartEntry),
		now:   time.Now,
		locks: make(map[uuid.UUID]*cartLock),
	}
}

func (s *memoryCartStore) Save(_ context.Context, c *model.PendingSale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.carts[c.ID] = memoryCartEntry{cart: c.Clone(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryCartStore) Get(_ context.Context, id uuid.UUID) (*model.PendingSale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.carts[id]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.carts, id)
		return nil, ErrCartNotFound
	}
	return e.cart.Clone(), nil
}

func (s *memoryCartStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

func (s *memoryCartStore) Lock(_ context.Context, id uuid.UUID) (func(), error) {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &cartLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}, nil
}

// sweep drops expired entries. Caller holds mu.
func (s *memoryCartStore) sweep() {
	now := s.now()
	for id, e := range s.carts {
		if now.After(e.expiresAt) {
			delete(s.carts, id)
		}
	}
}

// ── Redis store ──────────────────────────────────────────────────────────────

const (
	cartKeyPrefix = "cart:"
	cartLockTTL   = 30 * time.Second
	cartLockWait  = 5 * time.Second
	cartLockRetry = 10 * time.Millisecond
)

// unlockScript deletes the lock only while it still carries our token, so an
// expired lock taken over by another process is left alone.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type redisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCartStore keeps carts as JSON values with a TTL so that several
// server processes can share sale-entry sessions.
func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(id uuid.UUID) string { return cartKeyPrefix + id.String() }

func cartLockKey(id uuid.UUID) string { return cartKeyPrefix + id.String() + ":lock" }

func (s *redisCartStore) Save(ctx context.Context, c *model.PendingSale) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.rdb.Set(ctx, cartKey(c.ID), b, s.ttl).Err()
}

func (s *redisCartStore) Get(ctx context.Context, id uuid.UUID) (*model.PendingSale, error) {
	b, err := s.rdb.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	var c model.PendingSale
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if c.Lines == nil {
		c.Lines = []model.PendingLine{}
	}
	return &c, nil
}

func (s *redisCartStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rdb.Del(ctx, cartKey(id)).Err()
}

func (s *redisCartStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	key := cartLockKey(id)
	token := uuid.NewString()
	deadline := time.NewTimer(cartLockWait)
	defer deadline.Stop()

	for {
		ok, err := s.rdb.SetNX(ctx, key, token, cartLockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// Released with a fresh context: the request may already be cancelled.
				_ = unlockScript.Run(context.Background(), s.rdb, []string{key}, token).Err()
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrCartBusy
		case <-time.After(cartLockRetry):
		}
	}
}
