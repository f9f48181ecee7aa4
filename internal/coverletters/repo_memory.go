package coverletters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used when no database is
// configured, and by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]CoverLetter // id -> cover letter
	seq  map[string]int         // id -> insertion order, stabilizes equal timestamps
	next int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]CoverLetter),
		seq:  make(map[string]int),
	}
}

// Create stores a cover letter record.
func (r *MemoryRepo) Create(ctx context.Context, rec CoverLetter) error {
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

// GetByID returns a cover letter by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return CoverLetter{}, ErrNotFound
	}
	return rec, nil
}

// ListByUser returns a user's cover letters newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []CoverLetter
	for _, rec := range r.data {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

// Delete removes a cover letter by ID.
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
