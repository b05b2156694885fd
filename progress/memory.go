// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps progress in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int]Record
	closed  bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[int]Record)}
}

// MarkCompleted implements Store.
func (m *MemoryStore) MarkCompleted(ctx context.Context, levelID int, cost int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := check(levelID, cost); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	r, ok := m.records[levelID]
	if !ok || cost < r.BestCost {
		r.BestCost = cost
	}
	r.LevelID = levelID
	r.Wins++
	r.CompletedAt = nowFn()
	m.records[levelID] = r

	return nil
}

// Completed implements Store.
func (m *MemoryStore) Completed(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LevelID < out[j].LevelID })

	return out, nil
}

// Reset implements Store.
func (m *MemoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.records = make(map[int]Record)

	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true

	return nil
}
