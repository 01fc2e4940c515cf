// Package summary keeps the most recent computed order per user so the
// summary page can be rendered again after the order POST. Redis backs it
// when configured; otherwise a process-local map does.
package summary

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"sync"
	"time" // Time durations

	"github.com/daryan97/bobatea/internal/domain"

	"github.com/redis/go-redis/v9" // Redis client
)

// Store is the last-order store. Load returns ok=false when the user has
// not ordered yet; that is not an error.
type Store interface {
	Save(ctx context.Context, username string, order domain.Order) error
	Load(ctx context.Context, username string) (domain.Order, bool, error)
}

// Redis stores summaries as JSON values with a TTL
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Redis-backed store. Entries expire after 24 hours.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, ttl: 24 * time.Hour}
}

func (r *Redis) key(username string) string {
	return "summary:" + username
}

// Save marshals the order and sets it with the store TTL
func (r *Redis) Save(ctx context.Context, username string, order domain.Order) error {
	b, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(username), b, r.ttl).Err()
}

// Load fetches and unmarshals the order; a missing key is a clean miss
func (r *Redis) Load(ctx context.Context, username string) (domain.Order, bool, error) {
	val, err := r.client.Get(ctx, r.key(username)).Result()
	if err == redis.Nil {
		return domain.Order{}, false, nil // Key does not exist
	}
	if err != nil {
		return domain.Order{}, false, err
	}
	var order domain.Order
	if err := json.Unmarshal([]byte(val), &order); err != nil {
		return domain.Order{}, false, err
	}
	return order, true, nil
}

// Memory is the in-process fallback used without Redis and in tests
type Memory struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

// NewMemory returns an empty in-process store
func NewMemory() *Memory {
	return &Memory{orders: make(map[string]domain.Order)}
}

func (m *Memory) Save(_ context.Context, username string, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[username] = order
	return nil
}

func (m *Memory) Load(_ context.Context, username string) (domain.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[username]
	return order, ok, nil
}
