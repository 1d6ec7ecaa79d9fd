// Package lifecycle manages template units from resource to loaded instance and keeps
// them in a versioned cache for hot reload.
package lifecycle

import (
	"context"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/codegen"
	"go.trai.ch/zerr"
)

// Deps are the collaborators of a Manager. Telemetry and Sanitizer are optional.
type Deps struct {
	Locator   ports.ResourceLocator
	Parser    ports.Parser
	Compiler  ports.SourceCompiler
	Enhancers []ports.Enhancer
	Loader    ports.Loader
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Sanitizer ports.Sanitizer
	Defaults  []domain.DefaultArg
}

// Manager owns the unit cache and drives units through their lifecycle.
type Manager struct {
	cache     *Cache
	locator   ports.ResourceLocator
	generator *codegen.Generator
	compiler  ports.SourceCompiler
	enhancers []ports.Enhancer
	loader    ports.Loader
	logger    ports.Logger
	telemetry ports.Telemetry
	sanitizer ports.Sanitizer
	defaults  []domain.DefaultArg
}

// NewManager creates a Manager with an empty cache.
func NewManager(deps Deps) *Manager {
	m := &Manager{
		cache:     NewCache(),
		locator:   deps.Locator,
		compiler:  deps.Compiler,
		enhancers: deps.Enhancers,
		loader:    deps.Loader,
		logger:    deps.Logger,
		telemetry: deps.Telemetry,
		sanitizer: deps.Sanitizer,
		defaults:  deps.Defaults,
	}
	if m.telemetry == nil {
		m.telemetry = nopTelemetry{}
	}
	m.generator = codegen.New(deps.Parser, m)
	return m
}

// Cache returns the unit cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Resolve returns the refreshed unit for a template path or inline template text.
func (m *Manager) Resolve(ctx context.Context, identifier string) (*Unit, error) {
	res, err := m.locator.Get(identifier)
	if err != nil {
		return nil, err
	}
	return m.refreshed(ctx, res)
}

// Refresh re-checks the unit stored under key. A key without a unit is ignored.
func (m *Manager) Refresh(ctx context.Context, key string) (bool, error) {
	u, ok := m.cache.ByKey(key)
	if !ok {
		return false, nil
	}
	m.locator.MarkDirty(key)
	return u.Refresh(ctx)
}

// Units returns snapshots of all live units ordered by versioned name.
func (m *Manager) Units() []domain.UnitInfo {
	units := m.cache.Units()
	out := make([]domain.UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, u.Info())
	}
	return out
}

// ResolveExtends finds the parent unit named by an extends declaration: by stable key,
// then by the identity derived from the reference, then by opening it as a template file.
func (m *Manager) ResolveExtends(ctx context.Context, parent string) (codegen.UnitRef, error) {
	if u, ok := m.cache.ByKey(parent); ok {
		m.cache.register(u)
		return u, nil
	}
	if u, ok := m.cache.ByIdentity(parent + domain.UnitSuffix); ok {
		return u, nil
	}
	if u, ok := m.cache.ByIdentity(domain.Identity(domain.SuggestName(parent))); ok {
		return u, nil
	}

	res, err := m.locator.Open(parent)
	if err != nil {
		return nil, err
	}
	u, err := m.refreshed(ctx, res)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (m *Manager) refreshed(ctx context.Context, res ports.Resource) (*Unit, error) {
	u := m.cache.getOrCreate(res.StableKey(), func() *Unit { return newUnit(m, res) })
	if _, err := u.Refresh(ctx); err != nil {
		return nil, zerr.With(err, "unit", u.StableKey())
	}
	if u.Code() == "" && ctx.Value(refreshingKey{u}) == nil {
		// Another goroutine held the unit before its first generation.
		u.settle()
		if _, err := u.Refresh(ctx); err != nil {
			return nil, zerr.With(err, "unit", u.StableKey())
		}
	}
	// A refresh skipped by a concurrent one still leaves the unit registered.
	m.cache.register(u)
	return u, nil
}

// GeneratedCode implements ports.ArtifactSink.
func (m *Manager) GeneratedCode(name string) (string, bool) {
	u, ok := m.cache.ByName(name)
	if !ok {
		return "", false
	}
	code := u.Code()
	return code, code != ""
}

// SetCompiled implements ports.ArtifactSink. Artifacts for superseded names are dropped.
func (m *Manager) SetCompiled(name string, artifact []byte) {
	u, ok := m.cache.ByName(name)
	if !ok || !u.setCompiled(name, artifact) {
		m.logger.Warn("dropping artifact of superseded unit " + name)
	}
}

// AddInner implements ports.ArtifactSink.
func (m *Manager) AddInner(rootName, local string, artifact []byte) {
	u, ok := m.cache.ByName(rootName)
	if !ok || u.VersionedName() != rootName {
		m.logger.Warn("dropping inner unit " + local + " of superseded unit " + rootName)
		return
	}
	u.addInner(local, artifact)
}
