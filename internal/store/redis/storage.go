package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
)

// Key prefix for all round data
const keyPrefix = "wordle"

// roundKey returns the Redis key for a round snapshot
func roundKey(id string) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// Storage is a Redis-backed implementation of store.Store
type Storage struct {
	client *redis.Client
	cfg    Config
}

// Ensure Storage implements the interface
var _ store.Store = (*Storage)(nil)

// New creates a new Redis storage instance and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Save writes the snapshot as JSON, refreshing its TTL.
func (s *Storage) Save(ctx context.Context, snap game.Snapshot) error {
	if snap.Outcome.Terminal() {
		return store.ErrTerminal
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roundKey(snap.ID), data, s.cfg.RoundTTL).Err()
}

// Get reads a snapshot; expired and unknown rounds are store.ErrNotFound.
func (s *Storage) Get(ctx context.Context, id string) (game.Snapshot, error) {
	data, err := s.client.Get(ctx, roundKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return game.Snapshot{}, store.ErrNotFound
		}
		return game.Snapshot{}, err
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, err
	}
	return snap, nil
}

// Delete removes a snapshot.
func (s *Storage) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, roundKey(id)).Err()
}
