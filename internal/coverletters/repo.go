package coverletters

import "context"

// Repo defines persistence operations for cover letters.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	// GetByID fetches a cover letter regardless of owner; callers enforce
	// ownership.
	GetByID(ctx context.Context, id string) (CoverLetter, error)
	// ListByUser returns a user's cover letters newest-first.
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	Delete(ctx context.Context, id string) error
}
