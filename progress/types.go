// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrClosed is returned by any operation on a closed store.
	ErrClosed = errors.New("progress: store closed")

	// ErrBadLevel indicates a non-positive level ID.
	ErrBadLevel = errors.New("progress: level ID must be positive")

	// ErrNegativeCost indicates a negative winning cost.
	ErrNegativeCost = errors.New("progress: cost must be non-negative")
)

// Record is the stored progress for one level.
type Record struct {
	LevelID     int       `json:"levelId"`
	BestCost    int64     `json:"bestCost"`
	Wins        int       `json:"wins"`
	CompletedAt time.Time `json:"completedAt"`
}

// Store persists completed levels. Implementations are safe for concurrent use.
type Store interface {
	// MarkCompleted records a win on levelID with the given energy cost.
	// BestCost only ever decreases; Wins counts every call.
	MarkCompleted(ctx context.Context, levelID int, cost int64) error

	// Completed lists records ordered by level ID.
	Completed(ctx context.Context) ([]Record, error)

	// Reset forgets all progress.
	Reset(ctx context.Context) error

	// Close releases resources. Further calls return ErrClosed.
	Close() error
}

func check(levelID int, cost int64) error {
	if levelID <= 0 {
		return ErrBadLevel
	}
	if cost < 0 {
		return ErrNegativeCost
	}

	return nil
}

// nowFn is swapped in tests.
var nowFn = func() time.Time { return time.Now().UTC() }
