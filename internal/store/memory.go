// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds snapshots of in-progress rounds for transports that serve many
// independent rounds (one per player).
//
// Characteristics:
//   - Stores game.Snapshot values keyed by round ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Terminal snapshots are refused; finished rounds are deleted, not kept.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

var (
	ErrNotFound = errors.New("round not found")
	ErrTerminal = errors.New("terminal rounds are not stored")
)

// Store defines the persistence interface for in-progress rounds.
// Implementations may be backed by memory (this package) or Redis.
type Store interface {
	// Save persists or updates a round snapshot.
	Save(ctx context.Context, s game.Snapshot) error

	// Get retrieves a snapshot by round ID.
	// Returns ErrNotFound if the round is unknown or expired.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Delete discards a round. Deleting an unknown round is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]game.Snapshot
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Snapshot)}
}

// Save adds or updates the snapshot in the map.
func (m *memory) Save(ctx context.Context, s game.Snapshot) error {
	if s.Outcome.Terminal() {
		return ErrTerminal
	}
	s.Guesses = append([]string(nil), s.Guesses...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[s.ID] = s
	return nil
}

// Get looks up a snapshot by round ID.
func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rounds[id]; ok {
		s.Guesses = append([]string(nil), s.Guesses...)
		return s, nil
	}
	return game.Snapshot{}, ErrNotFound
}

// Delete removes a snapshot.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}
