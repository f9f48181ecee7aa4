package analysis

import (
	"context"
	"errors"
)

// ErrUnavailable marks a transport or service-level failure of the analysis
// backend. Callers treat it as terminal for the current request.
var ErrUnavailable = errors.New("analysis service unavailable")

// Client converts a document binary to text and scores that text.
type Client interface {
	// ExtractText pulls plain text from the raw file bytes. An empty result
	// with a nil error is valid; only transport or service failures error.
	ExtractText(ctx context.Context, data []byte, fileName string, mimeType string) (string, error)
	// Analyze scores extracted text against resume heuristics.
	Analyze(ctx context.Context, text string) (Result, error)
}
