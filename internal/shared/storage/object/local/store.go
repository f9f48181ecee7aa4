package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"careercraft-backend/internal/shared/storage/object"
	"careercraft-backend/internal/shared/util"
)

// Store implements ObjectStore using the local filesystem. Stored objects are
// resolvable through the file-serving route under baseURL.
type Store struct {
	baseDir string
	baseURL string
}

// New creates a new local object store rooted at baseDir. baseURL is the
// public prefix under which stored keys are served.
func New(baseDir, baseURL string) *Store {
	return &Store{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Store writes the reader to disk under the owner's namespace with a random prefix.
func (s *Store) Store(ctx context.Context, ownerID string, fileName string, mimeType string, r io.Reader) (object.StoredObject, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return object.StoredObject{}, fmt.Errorf("sanitize file name: %w", err)
	}

	ownerKey := util.HashOwnerKey(ownerID)

	if err := ctx.Err(); err != nil {
		return object.StoredObject{}, err
	}

	finalName := fmt.Sprintf("%s_%s", randomID(), sanitizedName)

	dirPath := filepath.Join(s.baseDir, ownerKey)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return object.StoredObject{}, fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return object.StoredObject{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return object.StoredObject{}, fmt.Errorf("read sniff: %w", readErr)
	}

	detected := http.DetectContentType(sniff[:n])
	if mimeType == "" {
		mimeType = detected
	}

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return object.StoredObject{}, fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return object.StoredObject{}, fmt.Errorf("write body: %w", err)
	}
	size += written

	key := ownerKey + "/" + finalName
	return object.StoredObject{
		URL:       s.baseURL + "/" + key,
		Key:       key,
		SizeBytes: size,
		MimeType:  mimeType,
	}, nil
}

// Delete removes a stored object. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, storageKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := s.resolve(storageKey)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

func (s *Store) resolve(storageKey string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(storageKey))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return filepath.Join(s.baseDir, clean), nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ object.ObjectStore = (*Store)(nil)
