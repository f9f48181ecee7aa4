package coverletters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new cover letter record.
func (r *PGRepo) Create(ctx context.Context, rec CoverLetter) error {
	const query = `
INSERT INTO cover_letters (
    id,
    user_id,
    company_name,
    job_title,
    job_description,
    tone,
    letter,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	letterJSON, err := json.Marshal(rec.Letter)
	if err != nil {
		return fmt.Errorf("marshal letter: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.CompanyName,
		rec.JobTitle,
		rec.JobDescription,
		string(rec.Tone),
		letterJSON,
		rec.CreatedAt,
	)
	return err
}

const coverLetterColumns = `id, user_id, company_name, job_title, job_description, tone, letter, created_at`

// GetByID fetches a cover letter by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (CoverLetter, error) {
	query := `SELECT ` + coverLetterColumns + ` FROM cover_letters WHERE id = $1 LIMIT 1`
	rec, err := scanCoverLetter(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	return rec, nil
}

// ListByUser lists a user's cover letters newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	query := `SELECT ` + coverLetterColumns + ` FROM cover_letters WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetter
	for rows.Next() {
		rec, err := scanCoverLetter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a cover letter record.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM cover_letters WHERE id = $1`, id)
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

func scanCoverLetter(row rowScanner) (CoverLetter, error) {
	var rec CoverLetter
	var tone string
	var jobDescription sql.NullString
	var letterRaw []byte
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.CompanyName,
		&rec.JobTitle,
		&jobDescription,
		&tone,
		&letterRaw,
		&rec.CreatedAt,
	); err != nil {
		return CoverLetter{}, err
	}
	rec.Tone = Tone(tone)
	if jobDescription.Valid {
		rec.JobDescription = jobDescription.String
	}
	if len(letterRaw) > 0 {
		if err := json.Unmarshal(letterRaw, &rec.Letter); err != nil {
			return CoverLetter{}, fmt.Errorf("unmarshal letter: %w", err)
		}
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
