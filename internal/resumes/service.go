package resumes

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"careercraft-backend/internal/analysis"
	"careercraft-backend/internal/shared/metrics"
	"careercraft-backend/internal/shared/storage/object"
	"careercraft-backend/internal/shared/telemetry"
)

// MaxUploadSize caps resume payloads at 5 MiB.
const MaxUploadSize = 5 << 20

var allowedMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Service coordinates the upload pipeline and resume persistence.
type Service struct {
	Store    object.ObjectStore
	Analyzer analysis.Client
	Repo     Repo
}

// UploadInput carries one upload request through the pipeline.
type UploadInput struct {
	UserID     string
	Filename   string
	ResumeName string
	MimeType   string
	Data       []byte
}

// Upload runs the full pipeline: validate, store the binary, extract and
// analyze its text, then persist the record. A record is only ever created
// after both the store call and the analysis call succeed. If analysis fails,
// the just-stored binary is deleted best-effort and the whole operation fails
// with ErrAnalysis; a cleanup failure is logged, never surfaced.
func (s *Service) Upload(ctx context.Context, in UploadInput) (Resume, error) {
	metrics.IncUploadStarted()
	start := time.Now()

	rec, err := s.upload(ctx, in)
	metrics.ObserveUploadDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncUploadFailed()
		return Resume{}, err
	}
	metrics.IncUploadCompleted()
	return rec, nil
}

func (s *Service) upload(ctx context.Context, in UploadInput) (Resume, error) {
	if len(in.Data) == 0 {
		return Resume{}, ErrEmptyFile
	}

	mimeType := normalizeMimeType(in.MimeType)
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return Resume{}, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mimeType)
	}

	if len(in.Data) > MaxUploadSize {
		return Resume{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(in.Data))
	}

	stored, err := s.Store.Store(ctx, in.UserID, in.Filename, mimeType, bytes.NewReader(in.Data))
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Empty extracted text is not fatal; only a failed call is.
	text, err := s.Analyzer.ExtractText(ctx, in.Data, in.Filename, mimeType)
	if err != nil {
		s.cleanupStored(ctx, in.UserID, stored.Key, err)
		return Resume{}, fmt.Errorf("%w: extract: %v", ErrAnalysis, err)
	}

	result, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		s.cleanupStored(ctx, in.UserID, stored.Key, err)
		return Resume{}, fmt.Errorf("%w: analyze: %v", ErrAnalysis, err)
	}

	resumeName := strings.TrimSpace(in.ResumeName)
	if resumeName == "" {
		resumeName = in.Filename
	}

	now := time.Now().UTC()
	rec := Resume{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		Filename:   in.Filename,
		ResumeName: resumeName,
		URL:        stored.URL,
		StorageKey: stored.Key,
		SizeBytes:  stored.SizeBytes,
		MimeType:   mimeType,
		ResumeText: text,
		Analysis:   &result,
		UploadedAt: now,
		CreatedAt:  now,
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		// Known gap: the stored binary and analysis are orphaned here.
		return Resume{}, fmt.Errorf("persist resume: %w", err)
	}

	return rec, nil
}

// cleanupStored compensates a failed analysis by deleting the stored binary.
// Failures are tolerated: the caller's original error always wins.
func (s *Service) cleanupStored(ctx context.Context, userID, storageKey string, cause error) {
	metrics.IncAnalysisFailed()
	if err := s.Store.Delete(ctx, storageKey); err != nil {
		metrics.IncCleanupFailed()
		telemetry.Error("resume.cleanup_failed", map[string]any{
			"user_id":     userID,
			"storage_key": storageKey,
			"cause":       cause.Error(),
			"error":       err.Error(),
		})
	}
}

// List returns a user's resumes oldest-first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	if userID == "" {
		return nil, ErrForbidden
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a resume if it belongs to the user.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if rec.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return rec, nil
}

// Delete removes a resume and its stored binary. The database record is
// authoritative: an object-store delete failure is logged and does not block
// removal.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return ErrForbidden
	}

	if rec.StorageKey != "" {
		if err := s.Store.Delete(ctx, rec.StorageKey); err != nil {
			telemetry.Warn("resume.object_delete_failed", map[string]any{
				"resume_id":   rec.ID,
				"storage_key": rec.StorageKey,
				"error":       err.Error(),
			})
		}
	}

	return s.Repo.Delete(ctx, id)
}

func normalizeMimeType(raw string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(raw, ";")[0]))
}
