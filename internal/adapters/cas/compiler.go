package cas

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	qfs "go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

// namePlaceholder stands in for the versioned name inside stored artifacts, so the same
// template compiled under another version still hits.
const namePlaceholder = "__quill_unit__"

var _ ports.SourceCompiler = (*CachingCompiler)(nil)

// CachingCompiler replays stored artifacts into the sink and compiles only the misses.
type CachingCompiler struct {
	next   ports.SourceCompiler
	store  ports.ArtifactStore
	hasher *qfs.Hasher
	logger ports.Logger
}

// NewCachingCompiler wraps next with the artifact store.
func NewCachingCompiler(next ports.SourceCompiler, store ports.ArtifactStore, hasher *qfs.Hasher, logger ports.Logger) *CachingCompiler {
	return &CachingCompiler{next: next, store: store, hasher: hasher, logger: logger}
}

// Key returns the store key of the generated code of name.
func (c *CachingCompiler) Key(name, code string) string {
	return c.hasher.ComputeHash(strings.ReplaceAll(code, name, namePlaceholder))
}

// CompileByName implements ports.SourceCompiler.
func (c *CachingCompiler) CompileByName(ctx context.Context, names []string, sink ports.ArtifactSink) error {
	var misses []string
	keys := make(map[string]string, len(names))
	for _, name := range names {
		code, ok := sink.GeneratedCode(name)
		if !ok {
			misses = append(misses, name)
			continue
		}
		key := c.Key(name, code)
		keys[name] = key

		stored, err := c.store.Get(key)
		if err != nil {
			c.logger.Warn("ignoring unreadable artifact of " + name + ": " + err.Error())
		}
		if stored == nil {
			misses = append(misses, name)
			continue
		}
		sink.SetCompiled(name, expand(stored.Main, name))
		for _, inner := range stored.Inners {
			sink.AddInner(name, inner.Local, expand(inner.Artifact, name))
		}
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Cached()
		}
	}
	if len(misses) == 0 {
		return nil
	}

	rec := &recordingSink{ArtifactSink: sink, artifacts: make(map[string]*domain.StoredArtifact)}
	err := c.next.CompileByName(ctx, misses, rec)

	for _, name := range rec.names() {
		key, ok := keys[name]
		if !ok {
			continue
		}
		artifact := rec.take(name)
		artifact.Key = key
		artifact.Timestamp = time.Now().UTC()
		if perr := c.store.Put(*artifact); perr != nil {
			c.logger.Warn("failed to store artifact of " + name + ": " + perr.Error())
		}
	}
	return err
}

func collapse(artifact []byte, name string) []byte {
	return bytes.ReplaceAll(artifact, []byte(name), []byte(namePlaceholder))
}

func expand(artifact []byte, name string) []byte {
	return bytes.ReplaceAll(artifact, []byte(namePlaceholder), []byte(name))
}

// recordingSink forwards to the owning sink and keeps a copy of every artifact.
type recordingSink struct {
	ports.ArtifactSink

	mu        sync.Mutex
	artifacts map[string]*domain.StoredArtifact
}

func (r *recordingSink) SetCompiled(name string, artifact []byte) {
	r.ArtifactSink.SetCompiled(name, artifact)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entry(name).Main = collapse(artifact, name)
}

func (r *recordingSink) AddInner(rootName, local string, artifact []byte) {
	r.ArtifactSink.AddInner(rootName, local, artifact)
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entry(rootName)
	e.Inners = append(e.Inners, domain.InnerArtifact{Local: local, Artifact: collapse(artifact, rootName)})
}

func (r *recordingSink) entry(name string) *domain.StoredArtifact {
	e, ok := r.artifacts[name]
	if !ok {
		e = &domain.StoredArtifact{}
		r.artifacts[name] = e
	}
	return e
}

// names returns the units that produced an outer artifact, sorted.
func (r *recordingSink) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.artifacts))
	for name, e := range r.artifacts {
		if e.Main != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (r *recordingSink) take(name string) *domain.StoredArtifact {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.artifacts[name]
}
