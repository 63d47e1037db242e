package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type cartKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(userID string) string
}

// Store persists cart state per user in Redis. Carts expire after the
// configured TTL of inactivity; an expired cart reads back as empty.
type Store struct {
	kv    cartKV
	keyer cartKeyer
	ttl   time.Duration
}

// NewStore builds a cart store. The client doubles as key builder.
func NewStore(kv cartKV, keyer cartKeyer, ttl time.Duration) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if keyer == nil {
		return nil, fmt.Errorf("key builder is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{kv: kv, keyer: keyer, ttl: ttl}, nil
}

// Load returns the user's cart, or an empty cart when none is stored.
func (s *Store) Load(ctx context.Context, userID string) (State, error) {
	raw, err := s.kv.Get(ctx, s.keyer.CartKey(userID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return Empty(), nil
		}
		return State{}, fmt.Errorf("load cart: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, fmt.Errorf("decode cart: %w", err)
	}
	if state.Items == nil {
		state.Items = []Line{}
	}
	return state, nil
}

// Save writes the cart back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, userID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.keyer.CartKey(userID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Drop deletes the stored cart outright.
func (s *Store) Drop(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, s.keyer.CartKey(userID)); err != nil {
		return fmt.Errorf("drop cart: %w", err)
	}
	return nil
}
