package coverletters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careercraft-backend/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	r := gin.New()
	r.Use(middleware.Auth())
	api := r.Group("/api/v1")
	NewHandler(&Service{Repo: repo}).RegisterRoutes(api)
	return r, repo
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "guest-123")
}

func TestCreateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := map[string]any{
		"companyName": "Acme",
		"jobTitle":    "Backend Engineer",
		"tone":        "friendly",
		"coverLetter": map[string]any{
			"greeting": "Dear Hiring Manager,",
			"body":     []string{"I would love to join."},
			"closing":  "Thank you.",
			"signOff":  "Best,",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cover-letters", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Success     bool `json:"success"`
		CoverLetter struct {
			ID          string `json:"id"`
			CompanyName string `json:"companyName"`
			Tone        string `json:"tone"`
			CoverLetter Letter `json:"coverLetter"`
		} `json:"coverLetter"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || out.CoverLetter.ID == "" {
		t.Fatalf("unexpected response %+v", out)
	}
	if out.CoverLetter.Tone != "friendly" {
		t.Fatalf("expected friendly tone, got %q", out.CoverLetter.Tone)
	}
	if out.CoverLetter.CoverLetter.Greeting != "Dear Hiring Manager," {
		t.Fatalf("unexpected letter %+v", out.CoverLetter.CoverLetter)
	}
}

func TestCreateEndpointRejectsInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: "{"},
		{name: "missing fields", body: `{"companyName":"Acme"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cover-letters", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			addGuestHeader(req)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
		})
	}
}

func TestListEndpointNewestFirst(t *testing.T) {
	router, repo := newTestRouter(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []CoverLetter{
		{ID: "old", UserID: "guest:guest-123", CompanyName: "A", CreatedAt: base},
		{ID: "new", UserID: "guest:guest-123", CompanyName: "B", CreatedAt: base.Add(time.Hour)},
	}
	for _, rec := range seed {
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out struct {
		Success      bool `json:"success"`
		CoverLetters []struct {
			ID string `json:"id"`
		} `json:"coverLetters"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.CoverLetters) != 2 || out.CoverLetters[0].ID != "new" {
		t.Fatalf("expected newest first, got %+v", out.CoverLetters)
	}
}

func TestGetAndDeleteEndpointStatuses(t *testing.T) {
	router, repo := newTestRouter(t)

	seed := []CoverLetter{
		{ID: "owned", UserID: "guest:guest-123", CompanyName: "Acme", CreatedAt: time.Now().UTC()},
		{ID: "foreign", UserID: "someone-else", CompanyName: "Other", CreatedAt: time.Now().UTC()},
	}
	for _, rec := range seed {
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	cases := []struct {
		name     string
		method   string
		id       string
		wantCode int
	}{
		{name: "get owned", method: http.MethodGet, id: "owned", wantCode: http.StatusOK},
		{name: "get foreign", method: http.MethodGet, id: "foreign", wantCode: http.StatusForbidden},
		{name: "get missing", method: http.MethodGet, id: "missing", wantCode: http.StatusNotFound},
		{name: "delete foreign", method: http.MethodDelete, id: "foreign", wantCode: http.StatusForbidden},
		{name: "delete owned", method: http.MethodDelete, id: "owned", wantCode: http.StatusOK},
		{name: "delete again", method: http.MethodDelete, id: "owned", wantCode: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/v1/cover-letters/"+tc.id, nil)
			addGuestHeader(req)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d: %s", tc.wantCode, resp.Code, resp.Body.String())
			}
		})
	}
}
