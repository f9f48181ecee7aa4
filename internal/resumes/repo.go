package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, rec Resume) error
	// GetByID fetches a resume regardless of owner; callers enforce
	// ownership.
	GetByID(ctx context.Context, id string) (Resume, error)
	// ListByUser returns a user's resumes ordered oldest-first by creation
	// time.
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Delete(ctx context.Context, id string) error
}
