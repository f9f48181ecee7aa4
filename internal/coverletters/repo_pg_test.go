package coverletters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	rec := CoverLetter{
		ID:             "cl-1",
		UserID:         "user-1",
		CompanyName:    "Acme",
		JobTitle:       "Backend Engineer",
		JobDescription: "Build services.",
		Tone:           ToneFormal,
		Letter: Letter{
			Greeting: "Dear Hiring Manager,",
			Body:     []string{"Paragraph."},
			Closing:  "Thank you.",
			SignOff:  "Sincerely,",
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO cover_letters").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.CompanyName,
			rec.JobTitle,
			rec.JobDescription,
			string(rec.Tone),
			sqlmock.AnyArg(), // letter json
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsLetter(t *testing.T) {
	repo, mock := newMockRepo(t)

	letter := Letter{
		Greeting: "Dear Team,",
		Body:     []string{"One.", "Two."},
		Closing:  "Thanks.",
		SignOff:  "Best,",
	}
	letterJSON, err := json.Marshal(letter)
	if err != nil {
		t.Fatalf("marshal letter: %v", err)
	}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "company_name", "job_title", "job_description", "tone", "letter", "created_at",
	}).AddRow("cl-1", "user-1", "Acme", "Engineer", "jd", "friendly", letterJSON, now)

	mock.ExpectQuery("SELECT .+ FROM cover_letters WHERE id =").
		WithArgs("cl-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "cl-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Tone != ToneFriendly {
		t.Fatalf("expected friendly tone, got %q", got.Tone)
	}
	if len(got.Letter.Body) != 2 || got.Letter.Greeting != "Dear Team," {
		t.Fatalf("unexpected letter %+v", got.Letter)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM cover_letters WHERE id =").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
