package object

import (
	"context"
	"io"
)

// StoredObject describes a successfully stored binary.
type StoredObject struct {
	// URL is the publicly resolvable location of the stored binary.
	URL string
	// Key is the opaque handle used to delete or re-open the binary.
	Key       string
	SizeBytes int64
	MimeType  string
}

// ObjectStore defines the contract for saving, deleting and retrieving binary objects.
type ObjectStore interface {
	Store(ctx context.Context, ownerID string, fileName string, mimeType string, r io.Reader) (StoredObject, error)
	Delete(ctx context.Context, storageKey string) error
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
