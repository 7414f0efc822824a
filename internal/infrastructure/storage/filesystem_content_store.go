package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"contract_monthly_claim/internal/usecase/interfaces"
)

var ErrInvalidBlobName = errors.New("invalid blob name")

// FilesystemContentStore keeps blobs as files in one directory. It is the
// local/dev counterpart of S3ContentStore.
type FilesystemContentStore struct {
	dir string
}

var _ interfaces.IContentStore = (*FilesystemContentStore)(nil)

func NewFilesystemContentStore(dir string) *FilesystemContentStore {
	return &FilesystemContentStore{dir: dir}
}

// Put creates the directory if needed and writes the blob exactly once; an
// existing name is an error, never an overwrite.
func (s *FilesystemContentStore) Put(_ context.Context, name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return fmt.Errorf("create blob %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close blob %s: %w", name, err)
	}
	log.Printf("[storage][store] fs put name=%s size=%d", name, len(data))
	return nil
}

func (s *FilesystemContentStore) Get(_ context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, interfaces.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return b, nil
}

// Delete is a no-op for names that do not exist.
func (s *FilesystemContentStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete blob %s: %w", name, err)
	}
	return nil
}

// path keeps every name inside dir: no separators, no dot segments.
func (s *FilesystemContentStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrInvalidBlobName
	}
	return filepath.Join(s.dir, name), nil
}
