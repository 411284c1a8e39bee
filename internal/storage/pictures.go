// Package storage persists uploaded profile pictures.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PictureStore keeps one picture per user under root/<user id>/.
type PictureStore struct {
	root string
}

func NewPictureStore(root string) *PictureStore {
	return &PictureStore{root: root}
}

// Replace removes any previously stored picture for the user and writes
// the new one under a fresh random name, returning the stored file name.
// Only the extension of the uploaded name survives.
func (s *PictureStore) Replace(userID uint, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, fmt.Sprintf("%d", userID))

	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("failed to clean picture dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create picture dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(filepath.Base(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create picture file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write picture: %w", err)
	}
	return name, nil
}

// Path returns the on-disk location of a stored picture.
func (s *PictureStore) Path(userID uint, name string) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", userID), filepath.Base(name))
}
