package resource

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	qfs "go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceLocator = (*Locator)(nil)

// Locator resolves template identifiers below a template root. Resources are
// created once per key so that their change detection state is shared.
type Locator struct {
	home   string
	tagDir string
	exts   []string
	hasher *qfs.Hasher

	mu     sync.Mutex
	files  map[string]*File
	inline map[string]*Inline
}

// NewLocator creates a Locator for the template root and tag directory of cfg.
func NewLocator(cfg *domain.Config, hasher *qfs.Hasher) *Locator {
	tagDir := cfg.TagDir
	if tagDir == "" {
		tagDir = domain.DefaultTagDir
	}
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = domain.DefaultExtensions()
	}
	return &Locator{
		home:   filepath.Clean(cfg.Home),
		tagDir: path.Clean(filepath.ToSlash(tagDir)),
		exts:   exts,
		hasher: hasher,
		files:  make(map[string]*File),
		inline: make(map[string]*Inline),
	}
}

// Open returns the template file at the slash path relative to the template root.
func (l *Locator) Open(p string) (ports.Resource, error) {
	key, ok := cleanKey(p)
	if !ok {
		return nil, zerr.With(domain.ErrResourceNotFound, "path", p)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.files[key]; ok {
		return f, nil
	}

	abs := filepath.Join(l.home, filepath.FromSlash(key))
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil, zerr.With(domain.ErrResourceNotFound, "path", key)
	}

	f := &File{
		path:   abs,
		key:    key,
		name:   domain.SuggestName(key),
		tag:    l.tagName(key),
		hasher: l.hasher,
	}
	l.files[key] = f
	return f, nil
}

// Get returns the template file named by identifier, or an inline resource holding
// identifier as template text when no such file exists.
func (l *Locator) Get(identifier string) (ports.Resource, error) {
	if !strings.ContainsAny(identifier, "\n@") {
		p := identifier
		if filepath.IsAbs(p) {
			if key, ok := l.KeyFor(p); ok {
				p = key
			}
		}
		if f, err := l.Open(p); err == nil {
			return f, nil
		}
	}

	digest := l.hasher.ComputeHash(identifier)
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.inline[digest]; ok {
		return r, nil
	}
	r := NewInline(identifier, digest)
	l.inline[digest] = r
	return r, nil
}

// FindTag looks up name with every configured extension in the tag directory.
func (l *Locator) FindTag(name string) (ports.Resource, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, false
	}
	for _, ext := range l.exts {
		if f, err := l.Open(path.Join(l.tagDir, name+ext)); err == nil {
			return f, true
		}
	}
	return nil, false
}

// KeyFor maps an absolute path below the template root with a template extension to its key.
func (l *Locator) KeyFor(abs string) (string, bool) {
	rel, err := filepath.Rel(l.home, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	key, ok := cleanKey(filepath.ToSlash(rel))
	if !ok || !slices.Contains(l.exts, strings.ToLower(path.Ext(key))) {
		return "", false
	}
	return key, true
}

// MarkDirty forces the next HasChanged of the resource with key to re-read its content.
func (l *Locator) MarkDirty(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.files[key]; ok {
		f.markDirty()
		return
	}
	if r, ok := l.inline[strings.TrimPrefix(key, InlinePrefix)]; ok {
		r.markDirty()
	}
}

// tagName returns the base name without extension for keys inside the tag directory.
func (l *Locator) tagName(key string) string {
	dir := path.Dir(key)
	if dir != l.tagDir {
		return ""
	}
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}

// cleanKey normalises a relative slash path and rejects paths escaping the root.
func cleanKey(p string) (string, bool) {
	p = path.Clean(filepath.ToSlash(p))
	if p == "." || p == ".." || strings.HasPrefix(p, "../") || path.IsAbs(p) {
		return "", false
	}
	return p, true
}
