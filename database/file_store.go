package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/utils"
)

// FileStore keeps the document in a single JSON file
type FileStore struct {
	path           string
	resetOnCorrupt bool
}

// NewFileStore creates a store backed by path. When resetOnCorrupt is set an
// undecodable file is treated as an empty database instead of an error.
func NewFileStore(path string, resetOnCorrupt bool) *FileStore {
	return &FileStore{path: path, resetOnCorrupt: resetOnCorrupt}
}

// Path returns the data file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the data file. A missing or empty file is an empty document.
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.resetOnCorrupt {
			utils.Logger.WithError(err).WithField("path", s.path).
				Warn("⚠️ Data file is corrupt, starting from an empty database")
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}

	doc.Normalize()
	return &doc, nil
}

// Save writes the document to a temporary file in the same directory and renames it into place
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
