package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used when no database is
// configured, and by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // id -> resume
	seq  map[string]int    // id -> insertion order, stabilizes equal timestamps
	next int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
		seq:  make(map[string]int),
	}
}

// Create stores a resume record.
func (r *MemoryRepo) Create(ctx context.Context, rec Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.ID] = rec
	r.seq[rec.ID] = r.next
	r.next++
	return nil
}

// GetByID returns a resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return rec, nil
}

// ListByUser returns a user's resumes oldest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Resume
	for _, rec := range r.data {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] < r.seq[out[j].ID]
	})
	return out, nil
}

// Delete removes a resume by ID.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	delete(r.seq, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
