package coverletters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles cover letter CRUD on behalf of an owner.
type Service struct {
	Repo Repo
}

// CreateInput carries one create request.
type CreateInput struct {
	UserID         string
	CompanyName    string
	JobTitle       string
	JobDescription string
	Tone           string
	Letter         Letter
}

// Create validates and persists a new cover letter.
func (s *Service) Create(ctx context.Context, in CreateInput) (CoverLetter, error) {
	companyName := strings.TrimSpace(in.CompanyName)
	jobTitle := strings.TrimSpace(in.JobTitle)
	if companyName == "" {
		return CoverLetter{}, fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	if jobTitle == "" {
		return CoverLetter{}, fmt.Errorf("%w: jobTitle is required", ErrInvalidInput)
	}

	tone, ok := NormalizeTone(strings.TrimSpace(in.Tone))
	if !ok {
		return CoverLetter{}, fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, in.Tone)
	}

	if err := validateLetter(in.Letter); err != nil {
		return CoverLetter{}, err
	}

	rec := CoverLetter{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		CompanyName:    companyName,
		JobTitle:       jobTitle,
		JobDescription: strings.TrimSpace(in.JobDescription),
		Tone:           tone,
		Letter:         in.Letter,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return CoverLetter{}, fmt.Errorf("persist cover letter: %w", err)
	}
	return rec, nil
}

func validateLetter(l Letter) error {
	if strings.TrimSpace(l.Greeting) == "" {
		return fmt.Errorf("%w: coverLetter.greeting is required", ErrInvalidInput)
	}
	if len(l.Body) == 0 {
		return fmt.Errorf("%w: coverLetter.body must have at least one paragraph", ErrInvalidInput)
	}
	for _, p := range l.Body {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: coverLetter.body paragraphs must be non-empty", ErrInvalidInput)
		}
	}
	if strings.TrimSpace(l.Closing) == "" {
		return fmt.Errorf("%w: coverLetter.closing is required", ErrInvalidInput)
	}
	if strings.TrimSpace(l.SignOff) == "" {
		return fmt.Errorf("%w: coverLetter.signOff is required", ErrInvalidInput)
	}
	return nil
}

// List returns a user's cover letters newest-first.
func (s *Service) List(ctx context.Context, userID string) ([]CoverLetter, error) {
	if userID == "" {
		return nil, ErrForbidden
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a cover letter if it belongs to the user.
func (s *Service) Get(ctx context.Context, userID, id string) (CoverLetter, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return CoverLetter{}, err
	}
	if rec.UserID != userID {
		return CoverLetter{}, ErrForbidden
	}
	return rec, nil
}

// Delete removes a cover letter after an ownership check.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, id)
}
