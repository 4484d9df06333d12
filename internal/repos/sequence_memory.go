package repos

import (
	"context"
	"fmt"
	"sync"

	"github.com/Bloodcipher/Amara/internal/types"
)

// memorySequenceRepo is an in-process allocator satisfying the same contract
// as the Postgres one: a mutex-guarded counter map. Used for local runs and
// tests that exercise allocation without a database.
type memorySequenceRepo struct {
	mu   sync.Mutex
	last map[string]int64
	used map[string]bool
}

func NewMemorySequenceRepo() SequenceRepo {
	return &memorySequenceRepo{
		last: make(map[string]int64),
		used: make(map[string]bool),
	}
}

func (r *memorySequenceRepo) Next(_ context.Context, prefix string) (int64, error) {
	if len(prefix) != 7 {
		return 0, fmt.Errorf("prefix must be 7 characters, got %d", len(prefix))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var value int64
	if r.used[prefix] {
		value = r.last[prefix] + 1
	}
	r.last[prefix] = value
	r.used[prefix] = true
	if value > types.MaxSequence {
		return 0, types.SequenceExhaustedError(prefix)
	}
	return value, nil
}

func (r *memorySequenceRepo) Peek(_ context.Context, prefix string) (int64, error) {
	if len(prefix) != 7 {
		return 0, fmt.Errorf("prefix must be 7 characters, got %d", len(prefix))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var next int64
	if r.used[prefix] {
		next = r.last[prefix] + 1
	}
	if next > types.MaxSequence {
		return 0, types.SequenceExhaustedError(prefix)
	}
	return next, nil
}
