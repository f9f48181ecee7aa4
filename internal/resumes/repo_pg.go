package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"careercraft-backend/internal/analysis"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    filename,
    resume_name,
    url,
    storage_key,
    size_bytes,
    mime_type,
    resume_text,
    analysis,
    uploaded_at,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	resumeName := rec.ResumeName
	if resumeName == "" {
		resumeName = rec.Filename
	}

	var analysisJSON any
	if rec.Analysis != nil {
		payload, err := json.Marshal(rec.Analysis)
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		analysisJSON = payload
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.Filename,
		resumeName,
		rec.URL,
		rec.StorageKey,
		rec.SizeBytes,
		rec.MimeType,
		rec.ResumeText,
		analysisJSON,
		rec.UploadedAt,
		rec.CreatedAt,
	)
	return err
}

const resumeColumns = `id, user_id, filename, resume_name, url, storage_key, size_bytes, mime_type, resume_text, analysis, uploaded_at, created_at`

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 LIMIT 1`
	rec, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return rec, nil
}

// ListByUser lists a user's resumes oldest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a resume record.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var rec Resume
	var mimeType sql.NullString
	var resumeText sql.NullString
	var analysisRaw []byte
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Filename,
		&rec.ResumeName,
		&rec.URL,
		&rec.StorageKey,
		&rec.SizeBytes,
		&mimeType,
		&resumeText,
		&analysisRaw,
		&rec.UploadedAt,
		&rec.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if mimeType.Valid {
		rec.MimeType = mimeType.String
	}
	if resumeText.Valid {
		rec.ResumeText = resumeText.String
	}
	if len(analysisRaw) > 0 {
		var result analysis.Result
		if err := json.Unmarshal(analysisRaw, &result); err != nil {
			return Resume{}, fmt.Errorf("unmarshal analysis: %w", err)
		}
		rec.Analysis = &result
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
