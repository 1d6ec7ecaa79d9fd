package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/codegen"
	"go.trai.ch/zerr"
)

// Unit is one template's rendering unit: its generated code, artifacts and loaded instance.
//
// Each phase has its own lock. refreshMu and compileMu are taken with TryLock by Refresh,
// so a refresh never waits on a compile and never re-enters itself. mu guards the state fields.
type Unit struct {
	m        *Manager
	resource ports.Resource
	root     *Unit
	inner    bool

	refreshMu sync.Mutex
	compileMu sync.Mutex
	enhanceMu sync.Mutex
	loadMu    sync.Mutex

	mu         sync.RWMutex
	identity   string
	version    int64
	extends    *Unit
	parentName string
	tagName    string
	base       string
	code       string
	compiled   []byte
	enhanced   []byte
	handle     ports.Handle
	master     ports.Instance
	stale      bool
	inners     map[string]*Unit
}

func newUnit(m *Manager, res ports.Resource) *Unit {
	u := &Unit{m: m, resource: res}
	u.root = u
	return u
}

// Identity returns the version-independent unit name, or empty before the first refresh.
func (u *Unit) Identity() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.identity
}

// Version returns the current version.
func (u *Unit) Version() int64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.version
}

// VersionedName returns the name the current version is compiled and loaded under.
func (u *Unit) VersionedName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.versionedName()
}

func (u *Unit) versionedName() string {
	if u.identity == "" {
		return ""
	}
	if u.inner {
		return u.identity
	}
	return domain.VersionedName(u.identity, u.version)
}

// StableKey returns the resource key, or the versioned name for units without a resource.
func (u *Unit) StableKey() string {
	if u.resource != nil {
		return u.resource.StableKey()
	}
	return u.VersionedName()
}

// Extends returns the parent unit, or nil.
func (u *Unit) Extends() *Unit {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.extends
}

// TagName returns the tag name, or empty for pages.
func (u *Unit) TagName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.tagName
}

// Root returns the top-level unit owning u.
func (u *Unit) Root() *Unit {
	return u.root
}

// Code returns the generated code of the current version.
func (u *Unit) Code() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.code
}

// Inner returns the inner unit with the given local name.
func (u *Unit) Inner(local string) (*Unit, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	inner, ok := u.inners[local]
	return inner, ok
}

// Info returns a snapshot of the unit's state.
func (u *Unit) Info() domain.UnitInfo {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return domain.UnitInfo{
		Key:           u.stableKeyLocked(),
		Identity:      u.identity,
		VersionedName: u.versionedName(),
		Version:       u.version,
		Base:          u.base,
		TagName:       u.tagName,
		Inner:         u.inner,
		Stage:         u.stage(),
	}
}

func (u *Unit) stableKeyLocked() string {
	if u.resource != nil {
		return u.resource.StableKey()
	}
	return u.versionedName()
}

func (u *Unit) stage() domain.UnitStage {
	switch {
	case u.identity == "":
		return domain.StageUninitialized
	case u.master != nil:
		return domain.StageInstantiable
	case u.enhanced != nil:
		return domain.StageEnhanced
	case u.compiled != nil:
		return domain.StageCompiled
	case u.code != "":
		return domain.StageGenerated
	}
	return domain.StageRegistered
}

// Refresh regenerates the unit when its resource, its parent, or its stale flag asks for it.
// It reports whether a regeneration happened. A refresh already in progress, or a compile
// holding the unit, makes it a no-op. Inner units never refresh.
func (u *Unit) Refresh(ctx context.Context) (bool, error) {
	if !u.refreshMu.TryLock() {
		return false, nil
	}
	defer u.refreshMu.Unlock()
	if !u.compileMu.TryLock() {
		return false, nil
	}
	defer u.compileMu.Unlock()

	if u.resource == nil {
		return false, nil
	}
	u.m.cache.register(u)
	ctx = context.WithValue(ctx, refreshingKey{u}, true)

	parentChanged := false
	if parent := u.Extends(); parent != nil {
		changed, err := parent.Refresh(ctx)
		if err != nil {
			return false, err
		}
		u.mu.RLock()
		generatedAgainst := u.parentName
		u.mu.RUnlock()
		parentChanged = changed || parent.VersionedName() != generatedAgainst
	}

	changed := u.resource.HasChanged()
	u.mu.RLock()
	stale := u.stale
	u.mu.RUnlock()

	if !parentChanged && !changed && !stale {
		return false, nil
	}
	return true, u.regenerate(ctx)
}

type refreshingKey struct{ u *Unit }

// settle waits for a refresh or compile in progress to finish.
func (u *Unit) settle() {
	u.refreshMu.Lock()
	u.compileMu.Lock()
	u.compileMu.Unlock()
	u.refreshMu.Unlock()
}

func (u *Unit) regenerate(ctx context.Context) error {
	name := u.m.cache.rekey(u, u.m.cache.NextVersion())
	key := u.resource.StableKey()

	content, err := u.resource.Content()
	if err != nil {
		u.discard()
		return zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "unit", key)
	}

	res, err := u.m.generator.Generate(ctx, codegen.Input{
		VersionedName: name,
		Content:       content,
		TagName:       u.resource.TagName(),
		Defaults:      u.m.defaults,
	})
	if err != nil {
		u.discard()
		return err
	}

	var parent *Unit
	if res.Extends != nil {
		parent, _ = res.Extends.(*Unit)
	}

	u.mu.Lock()
	oldTag := u.tagName
	oldInners := u.inners
	u.extends = parent
	u.parentName = ""
	if parent != nil {
		u.parentName = res.Extends.VersionedName()
	}
	u.tagName = res.TagName
	u.base = res.Base
	u.code = res.Code
	u.compiled = nil
	u.enhanced = nil
	u.handle = nil
	u.master = nil
	u.inners = nil
	u.stale = false
	u.mu.Unlock()

	u.m.cache.retag(u, oldTag, res.TagName)
	u.m.cache.dropInners(oldInners)
	u.m.logger.Info(fmt.Sprintf("generated %s as %s", key, name))
	return nil
}

// discard drops everything derived from the current version after a failed generation
// and forces the next refresh to regenerate.
func (u *Unit) discard() {
	u.mu.Lock()
	oldInners := u.inners
	u.code = ""
	u.compiled = nil
	u.enhanced = nil
	u.handle = nil
	u.master = nil
	u.inners = nil
	u.stale = true
	u.mu.Unlock()
	u.m.cache.dropInners(oldInners)
}

// Compile returns the compiled artifact of the current version, compiling it once.
func (u *Unit) Compile(ctx context.Context) ([]byte, error) {
	u.compileMu.Lock()
	defer u.compileMu.Unlock()

	u.mu.RLock()
	compiled, code, name, key := u.compiled, u.code, u.versionedName(), u.stableKeyLocked()
	u.mu.RUnlock()
	if compiled != nil {
		return compiled, nil
	}
	if code == "" {
		return nil, zerr.With(domain.ErrNotGenerated, "unit", key)
	}

	vctx, vertex := u.m.telemetry.Record(ctx, "compile "+key)
	err := u.m.compiler.CompileByName(vctx, []string{name}, u.m)
	if err == nil {
		u.mu.RLock()
		compiled = u.compiled
		u.mu.RUnlock()
		if compiled == nil {
			err = zerr.With(domain.ErrNoArtifact, "name", name)
		}
	}
	if err != nil {
		cerr := &domain.CompileError{Key: key, Name: name, Source: code, Err: err}
		u.m.logger.Error(cerr)
		vertex.Complete(cerr)
		return nil, cerr
	}
	vertex.Complete(nil)
	return compiled, nil
}

// setCompiled stores artifact when name still is the current versioned name.
func (u *Unit) setCompiled(name string, artifact []byte) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.versionedName() != name {
		return false
	}
	u.compiled = artifact
	u.enhanced = nil
	return true
}

type enhancingKey struct{ u *Unit }

// Enhance returns the compiled artifact after the enhancer chain ran over it.
// A failing enhancer is logged and skipped. Re-entering Enhance of the same unit from
// inside the chain fails with ErrReentrantEnhance.
func (u *Unit) Enhance(ctx context.Context) ([]byte, error) {
	if !u.enhanceMu.TryLock() {
		if ctx.Value(enhancingKey{u}) != nil {
			return nil, errors.Join(
				domain.ErrReentrantEnhance,
				zerr.With(zerr.New("enhance re-entered from its own enhancer chain"), "unit", u.StableKey()),
			)
		}
		u.enhanceMu.Lock()
	}
	defer u.enhanceMu.Unlock()
	ctx = context.WithValue(ctx, enhancingKey{u}, true)

	u.mu.RLock()
	enhanced := u.enhanced
	u.mu.RUnlock()
	if enhanced != nil {
		return enhanced, nil
	}

	compiled, err := u.Compile(ctx)
	if err != nil {
		return nil, err
	}
	name := u.VersionedName()
	identity := u.Identity()
	key := u.StableKey()

	artifact := compiled
	for _, enhancer := range u.m.enhancers {
		out, err := transform(ctx, enhancer, identity, bytes.Clone(artifact))
		if err != nil {
			u.m.logger.Warn(fmt.Sprintf("enhancer %s failed on %s: %v", enhancer.Name(), key, err))
			continue
		}
		artifact = out
	}

	u.mu.Lock()
	if u.versionedName() == name && u.compiled != nil {
		u.enhanced = artifact
	}
	u.mu.Unlock()
	return artifact, nil
}

func transform(ctx context.Context, e ports.Enhancer, identity string, artifact []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrEnhancerFailed, "panic", fmt.Sprint(r))
		}
	}()
	return e.Transform(ctx, identity, artifact)
}

// Instantiate returns a fresh instance of the current version bound to out.
// The master instance is loaded and constructed once per version.
func (u *Unit) Instantiate(ctx context.Context, out io.Writer) (ports.Instance, error) {
	if out == nil {
		out = io.Discard
	}

	u.loadMu.Lock()
	master, err := u.loadMaster(ctx)
	u.loadMu.Unlock()
	if err != nil {
		return nil, err
	}

	inst, err := master.Clone(out)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConstructFailed.Error()), "unit", u.StableKey())
	}
	return inst, nil
}

func (u *Unit) loadMaster(ctx context.Context) (ports.Instance, error) {
	u.mu.RLock()
	handle, master := u.handle, u.master
	u.mu.RUnlock()
	if master != nil {
		return master, nil
	}

	key := u.StableKey()
	if handle == nil {
		artifact, err := u.Enhance(ctx)
		if err != nil {
			return nil, err
		}
		name := u.VersionedName()

		vctx, vertex := u.m.telemetry.Record(ctx, "load "+key)
		handle, err = u.m.loader.Load(vctx, name, artifact)
		vertex.Complete(err)
		if err != nil {
			return nil, zerr.With(err, "unit", key)
		}

		u.mu.Lock()
		if u.versionedName() == name {
			u.handle = handle
		}
		u.mu.Unlock()
	}

	master, err := handle.Construct()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConstructFailed.Error()), "unit", key)
	}
	u.checkBase(master)

	u.mu.Lock()
	if u.versionedName() == handle.Name() {
		u.master = master
	}
	u.mu.Unlock()
	return master, nil
}

// checkBase compares the base the master was generated against with the current parent.
// On a mismatch the parent is re-resolved by identity and the unit is marked stale.
func (u *Unit) checkBase(master ports.Instance) {
	u.mu.RLock()
	parent, tag := u.extends, u.tagName
	u.mu.RUnlock()

	expected := domain.TemplateBase
	switch {
	case tag != "":
		expected = domain.TagBase
	case parent != nil:
		expected = parent.VersionedName()
	}
	if master.BaseName() == expected {
		return
	}

	u.m.logger.Warn(fmt.Sprintf("%s was generated against %s but its base is now %s; regenerating on next refresh",
		u.StableKey(), master.BaseName(), expected))

	var live *Unit
	if parent != nil {
		live, _ = u.m.cache.ByIdentity(parent.Identity())
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if live != nil {
		u.extends = live
	}
	u.stale = true
}

// MarkUnloaded drops the loaded handle and master instance. Compiled and enhanced
// artifacts are kept, so the next Instantiate only reloads. The master goes too because
// it was constructed by the dropped handle; keeping it would make the reload a no-op.
func (u *Unit) MarkUnloaded() {
	u.loadMu.Lock()
	defer u.loadMu.Unlock()
	u.mu.Lock()
	defer u.mu.Unlock()
	u.handle = nil
	u.master = nil
}

// addInner replaces the inner unit named local with one holding artifact.
func (u *Unit) addInner(local string, artifact []byte) *Unit {
	u.mu.RLock()
	name := domain.InnerName(u.versionedName(), local)
	version := u.version
	u.mu.RUnlock()

	inner := &Unit{
		m:        u.m,
		root:     u.root,
		inner:    true,
		identity: name,
		version:  version,
		base:     domain.TemplateBase,
		code:     string(artifact),
		compiled: artifact,
	}
	u.m.cache.addInner(inner)

	u.mu.Lock()
	old := u.inners[local]
	if u.inners == nil {
		u.inners = make(map[string]*Unit)
	}
	u.inners[local] = inner
	u.mu.Unlock()

	if old != nil && old != inner {
		u.m.cache.dropInners(map[string]*Unit{local: old})
	}
	return inner
}
