package evaluations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores evaluations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Evaluation
	all  []Evaluation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Evaluation)}
}

// Create stores the evaluation.
func (r *MemoryRepo) Create(ctx context.Context, evaluation Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[evaluation.ID] = evaluation
	r.all = append(r.all, evaluation)
	return nil
}

// GetByID returns an evaluation by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	evaluation, ok := r.byID[id]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	return evaluation, nil
}

// List returns evaluations newest first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = ClampPage(limit, offset)

	r.mu.RLock()
	items := make([]Evaluation, len(r.all))
	copy(items, r.all)
	r.mu.RUnlock()

	// Insertion order breaks CreatedAt ties, newest insert first.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if offset >= len(items) {
		return []Evaluation{}, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}
