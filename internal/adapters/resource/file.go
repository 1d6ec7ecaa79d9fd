// Package resource implements template resources backed by files and inline text.
package resource

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	qfs "go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Resource = (*File)(nil)

// File is a template file below the template root.
// Change detection compares modification time and size first and falls back to
// a content digest, so touching a file without editing it is not a change.
type File struct {
	path   string
	key    string
	name   string
	tag    string
	hasher *qfs.Hasher

	mu      sync.Mutex
	checked bool
	dirty   bool
	exists  bool
	modTime time.Time
	size    int64
	digest  uint64
}

// HasChanged reports whether the content changed since the previous call.
// The first call returns true.
func (f *File) HasChanged() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := os.Stat(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return true
		}
		changed := !f.checked || f.exists
		f.checked, f.exists, f.dirty = true, false, false
		return changed
	}

	if f.checked && f.exists && !f.dirty && info.ModTime().Equal(f.modTime) && info.Size() == f.size {
		return false
	}

	digest, err := f.hasher.ComputeFileHash(f.path)
	if err != nil {
		return true
	}
	changed := !f.checked || !f.exists || digest != f.digest
	f.checked, f.exists, f.dirty = true, true, false
	f.modTime, f.size, f.digest = info.ModTime(), info.Size(), digest
	return changed
}

// Content returns the current file content.
func (f *File) Content() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "path", f.key)
	}
	return string(data), nil
}

// SuggestedUnitName returns the dotted unit name of the file.
func (f *File) SuggestedUnitName() string { return f.name }

// StableKey returns the slash path relative to the template root.
func (f *File) StableKey() string { return f.key }

// TagName returns the tag name of files under the tag directory.
func (f *File) TagName() string { return f.tag }

// Path returns the absolute file path.
func (f *File) Path() string { return f.path }

func (f *File) markDirty() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = true
}
