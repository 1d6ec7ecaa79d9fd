package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of template files and generated sources.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "path", path)
	}
	return hasher.Sum64(), nil
}

// ComputeHash returns the XXHash of s as a 16-digit hex string.
func (h *Hasher) ComputeHash(s string) string {
	return FormatHash(xxhash.Sum64String(s))
}

// FormatHash renders a digest as a 16-digit hex string.
func FormatHash(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
