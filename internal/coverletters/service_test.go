package coverletters

import (
	"context"
	"errors"
	"testing"
	"time"
)

func validInput() CreateInput {
	return CreateInput{
		UserID:         "user-1",
		CompanyName:    "Acme",
		JobTitle:       "Backend Engineer",
		JobDescription: "Build services in Go.",
		Tone:           "confident",
		Letter: Letter{
			Greeting:      "Dear Hiring Manager,",
			Body:          []string{"I am excited to apply.", "My experience fits the role."},
			Closing:       "Thank you for your consideration.",
			SignOff:       "Sincerely,",
			CandidateName: "Jane Doe",
		},
	}
}

func TestCreateCoverLetter(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	rec, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rec.Tone != ToneConfident {
		t.Fatalf("expected confident tone, got %q", rec.Tone)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := svc.Get(context.Background(), "user-1", rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompanyName != "Acme" || len(got.Letter.Body) != 2 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestCreateDefaultsToneToFormal(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	in := validInput()
	in.Tone = ""
	rec, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Tone != ToneFormal {
		t.Fatalf("expected formal tone, got %q", rec.Tone)
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{name: "missing company", mutate: func(in *CreateInput) { in.CompanyName = "  " }},
		{name: "missing job title", mutate: func(in *CreateInput) { in.JobTitle = "" }},
		{name: "unknown tone", mutate: func(in *CreateInput) { in.Tone = "sarcastic" }},
		{name: "missing greeting", mutate: func(in *CreateInput) { in.Letter.Greeting = "" }},
		{name: "empty body", mutate: func(in *CreateInput) { in.Letter.Body = nil }},
		{name: "blank paragraph", mutate: func(in *CreateInput) { in.Letter.Body = []string{"ok", "   "} }},
		{name: "missing closing", mutate: func(in *CreateInput) { in.Letter.Closing = "" }},
		{name: "missing sign-off", mutate: func(in *CreateInput) { in.Letter.SignOff = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &Service{Repo: NewMemoryRepo()}
			in := validInput()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []CoverLetter{
		{ID: "old", UserID: "user-1", CompanyName: "A", CreatedAt: base},
		{ID: "new", UserID: "user-1", CompanyName: "B", CreatedAt: base.Add(time.Hour)},
		{ID: "other", UserID: "user-2", CompanyName: "C", CreatedAt: base},
	}
	for _, rec := range seed {
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	recs, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "new" || recs[1].ID != "old" {
		t.Fatalf("expected newest first, got %s then %s", recs[0].ID, recs[1].ID)
	}
}

func TestGetAndDeleteEnforceOwnership(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	rec := CoverLetter{ID: "cl1", UserID: "owner", CompanyName: "Acme", CreatedAt: time.Now().UTC()}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Get(context.Background(), "intruder", "cl1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "owner", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "intruder", "cl1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", "cl1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "cl1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected record removed, got %v", err)
	}
}
