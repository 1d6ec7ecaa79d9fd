// Package fs provides file system adapters for walking and hashing template files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TemplateWalker = (*Walker)(nil)

// skipDirs are directories that never hold templates.
var skipDirs = map[string]bool{
	".git":              true,
	".jj":               true,
	domain.QuillDirName: true,
	"node_modules":      true,
}

// Walker enumerates template files below a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields the slash paths, relative to root, of files whose extension is in exts.
// Hidden and tool directories are skipped. A walk error is yielded once and ends the walk.
func (w *Walker) Walk(root string, exts []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(filepath.ToSlash(rel), nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root))
		}
	}
}
