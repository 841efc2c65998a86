package model

import (
	"context"
	"sync"
	"time"
)

// MemoryStatsStore keeps player statistics in memory
type MemoryStatsStore struct {
	mu    sync.RWMutex
	stats map[string]PlayerStats
	now   func() time.Time
}

// NewMemoryStatsStore returns an empty in-memory store
func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{
		stats: make(map[string]PlayerStats),
		now:   time.Now,
	}
}

// RecordRound records the results
// Either every result is recorded or none are.
func (m *MemoryStatsStore) RecordRound(ctx context.Context, results []RoundResult) error {
	names := make([]string, len(results))
	for i, result := range results {
		name, err := normalizeName(result.Name)
		if err != nil {
			return err
		}

		names[i] = name
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for i, result := range results {
		s := m.stats[names[i]]
		s.Name = names[i]
		s.HandsPlayed++
		if result.Won {
			s.Wins++
		}
		if result.UpdateChips {
			s.Chips = result.Chips
		}
		s.Updated = now

		m.stats[names[i]] = s
	}

	return nil
}

// GetPlayerStats returns a copy of the player's stats
func (m *MemoryStatsStore) GetPlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stats[name]
	if !ok {
		return nil, ErrStatsNotFound
	}

	return &s, nil
}
