package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"careercraft-backend/internal/analysis"
)

// Client implements analysis.Client against the external ML service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a remote analysis client for the given base URL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("ML_SERVICE_URL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type extractResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ExtractText sends the raw file to the extraction endpoint and returns the
// plain text. Empty text is a valid result.
func (c *Client) ExtractText(ctx context.Context, data []byte, fileName string, mimeType string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("build extract request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("build extract request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resume/extract-text", body)
	if err != nil {
		return "", fmt.Errorf("build extract request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var parsed extractResponse
	if err := c.do(req, &parsed); err != nil {
		return "", err
	}
	return strings.TrimSpace(parsed.Text), nil
}

type analyzeRequest struct {
	Content string `json:"content"`
}

// Analyze sends extracted text to the scoring endpoint.
func (c *Client) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	payload, err := json.Marshal(analyzeRequest{Content: text})
	if err != nil {
		return analysis.Result{}, fmt.Errorf("build analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resume/analyze", bytes.NewReader(payload))
	if err != nil {
		return analysis.Result{}, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result analysis.Result
	if err := c.do(req, &result); err != nil {
		return analysis.Result{}, err
	}
	return result, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", analysis.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", analysis.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", analysis.ErrUnavailable, req.URL.Path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", analysis.ErrUnavailable, err)
	}
	return nil
}

var _ analysis.Client = (*Client)(nil)
