// Package cas implements the content-addressed store for compiled template artifacts.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactStore using a file-per-key strategy.
type Store struct {
	dir string
}

// NewStore creates an ArtifactStore rooted at dir. The directory is created on first Put.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Get retrieves the artifact stored under key.
func (s *Store) Get(key string) (*domain.StoredArtifact, error) {
	filename, ok := s.filename(key)
	if !ok {
		return nil, nil
	}
	//nolint:gosec // Path is built from the store directory and a validated hex key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}

	var artifact domain.StoredArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", key)
	}
	if artifact.Key != key {
		return nil, nil
	}
	return &artifact, nil
}

// Put stores the artifact under its key.
func (s *Store) Put(artifact domain.StoredArtifact) error {
	filename, ok := s.filename(artifact.Key)
	if !ok {
		return zerr.With(domain.ErrStoreWriteFailed, "key", artifact.Key)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write to a sibling file first so concurrent readers never see a partial artifact.
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".artifact-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// filename shards keys by their first two characters. Keys must be lowercase hex.
func (s *Store) filename(key string) (string, bool) {
	if len(key) < 3 {
		return "", false
	}
	for _, r := range key {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", false
		}
	}
	return filepath.Join(s.dir, key[:2], key+".json"), true
}
