// Package storage provides the image object store the feature core
// treats as an external collaborator. The disk implementation stands in
// for a CDN bucket: objects live under a per-user prefix and are served
// from a public base URL.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type ObjectStore interface {
	Put(userID string, ext string, data []byte) (key string, url string, err error)
	Delete(key string) error
}

type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes the object under a fresh uuid name inside the user's prefix
// and returns its key and public URL.
func (s *DiskStore) Put(userID string, ext string, data []byte) (string, string, error) {
	ext = strings.TrimPrefix(ext, ".")
	key := path.Join(userID, uuid.NewString()+"."+ext)

	full := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", "", fmt.Errorf("create object prefix: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write object: %w", err)
	}
	return key, s.baseURL + "/" + key, nil
}

// Delete removes the object. A missing object is not an error; the
// metadata record is the source of truth.
func (s *DiskStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
