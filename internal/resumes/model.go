package resumes

import (
	"time"

	"careercraft-backend/internal/analysis"
)

// Resume represents an uploaded resume owned by a user. Records are created
// once by a successful upload pipeline run and never mutated.
type Resume struct {
	ID         string
	UserID     string
	Filename   string
	ResumeName string
	URL        string
	// StorageKey is the object-store deletion handle. It never leaves the
	// backend.
	StorageKey string
	SizeBytes  int64
	MimeType   string
	ResumeText string
	// Analysis is nil when the record carries no score.
	Analysis   *analysis.Result
	UploadedAt time.Time
	CreatedAt  time.Time
}
