package lifecycle_test

import (
	"context"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.trai.ch/quill/internal/adapters/markup"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

type fakeResource struct {
	mu      sync.Mutex
	key     string
	tag     string
	content string
	dirty   bool

	// entered and gate, when set, let a test hold Content mid-refresh.
	entered chan struct{}
	gate    chan struct{}
}

func newResource(key, content string) *fakeResource {
	return &fakeResource{key: key, content: content, dirty: true}
}

func (r *fakeResource) HasChanged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.dirty
	r.dirty = false
	return d
}

func (r *fakeResource) Content() (string, error) {
	if r.entered != nil {
		r.entered <- struct{}{}
	}
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.content, nil
}

func (r *fakeResource) SuggestedUnitName() string { return domain.SuggestName(r.key) }
func (r *fakeResource) StableKey() string         { return r.key }
func (r *fakeResource) TagName() string           { return r.tag }

func (r *fakeResource) set(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
	r.dirty = true
}

type fakeLocator struct {
	mu    sync.Mutex
	files map[string]*fakeResource
}

func newLocator(files ...*fakeResource) *fakeLocator {
	l := &fakeLocator{files: make(map[string]*fakeResource)}
	for _, f := range files {
		l.files[f.key] = f
	}
	return l
}

func (l *fakeLocator) Open(path string) (ports.Resource, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.files[path]; ok {
		return r, nil
	}
	return nil, zerr.With(domain.ErrResourceNotFound, "path", path)
}

func (l *fakeLocator) Get(identifier string) (ports.Resource, error) {
	if r, err := l.Open(identifier); err == nil {
		return r, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	key := "inline:" + strconv.Itoa(len(identifier))
	if r, ok := l.files[key]; ok && r.content == identifier {
		return r, nil
	}
	r := newResource(key, identifier)
	l.files[key] = r
	return r, nil
}

func (l *fakeLocator) FindTag(name string) (ports.Resource, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.files {
		if r.tag == name {
			return r, true
		}
	}
	return nil, false
}

func (l *fakeLocator) KeyFor(string) (string, bool) { return "", false }

func (l *fakeLocator) MarkDirty(key string) {
	l.mu.Lock()
	r, ok := l.files[key]
	l.mu.Unlock()
	if ok {
		r.mu.Lock()
		r.dirty = true
		r.mu.Unlock()
	}
}

// echoCompiler uses the generated code as the compiled artifact.
type echoCompiler struct {
	calls atomic.Int32
}

func (c *echoCompiler) CompileByName(_ context.Context, names []string, sink ports.ArtifactSink) error {
	c.calls.Add(1)
	for _, name := range names {
		code, ok := sink.GeneratedCode(name)
		if !ok {
			return zerr.With(domain.ErrNotGenerated, "name", name)
		}
		parts := strings.Split(code, "\n"+domain.InnerMarker)
		sink.SetCompiled(name, []byte(parts[0]))
		for _, part := range parts[1:] {
			local, src, _ := strings.Cut(part, "\n")
			sink.AddInner(name, local, []byte(src))
		}
	}
	return nil
}

var (
	unitNameRe = regexp.MustCompile(`const UnitName = (".*")`)
	baseNameRe = regexp.MustCompile(`const BaseName = (".*")`)
	argNamesRe = regexp.MustCompile(`return \[\]string\{(.*)\}`)
	callRe     = regexp.MustCompile(`call\(("[^"]*")`)
)

// fakeLoader reads the unit constants out of the artifact and renders a readable trace.
type fakeLoader struct {
	loads atomic.Int32
}

func (l *fakeLoader) Load(_ context.Context, name string, artifact []byte) (ports.Handle, error) {
	l.loads.Add(1)
	src := string(artifact)
	h := &fakeHandle{name: name, base: constant(baseNameRe, src)}
	if m := argNamesRe.FindStringSubmatch(src); m != nil && m[1] != "" {
		for _, q := range strings.Split(m[1], ", ") {
			s, _ := strconv.Unquote(q)
			h.args = append(h.args, s)
		}
	}
	for _, m := range callRe.FindAllStringSubmatch(src, -1) {
		name, _ := strconv.Unquote(m[1])
		h.calls = append(h.calls, name)
	}
	unit := constant(unitNameRe, src)
	if _, local, ok := strings.Cut(unit, domain.InnerSeparator); ok {
		h.label = local
	} else {
		h.label, _, _ = strings.Cut(unit, domain.UnitSuffix)
	}
	return h, nil
}

func constant(re *regexp.Regexp, src string) string {
	m := re.FindStringSubmatch(src)
	if m == nil {
		return ""
	}
	s, _ := strconv.Unquote(m[1])
	return s
}

type fakeHandle struct {
	name  string
	label string
	base  string
	args  []string
	calls []string
}

func (h *fakeHandle) Name() string { return h.name }

func (h *fakeHandle) Construct() (ports.Instance, error) {
	return &fakeInstance{h: h, values: map[string]any{}, out: io.Discard}, nil
}

type fakeInstance struct {
	h      *fakeHandle
	values map[string]any
	out    io.Writer
}

func (i *fakeInstance) BaseName() string   { return i.h.base }
func (i *fakeInstance) TagName() string    { return "" }
func (i *fakeInstance) ArgNames() []string { return i.h.args }

func (i *fakeInstance) SetRenderArgs(args map[string]any) error {
	for _, name := range i.h.args {
		if v, ok := args[name]; ok {
			i.values[name] = v
		}
	}
	return nil
}

func (i *fakeInstance) SetRenderArgsAt(args ...any) error {
	for pos, v := range args {
		_ = i.SetRenderArgAt(pos, v)
	}
	return nil
}

func (i *fakeInstance) SetRenderArg(name string, arg any) error {
	return i.SetRenderArgs(map[string]any{name: arg})
}

func (i *fakeInstance) SetRenderArgAt(pos int, arg any) error {
	if pos < len(i.h.args) {
		i.values[i.h.args[pos]] = arg
	}
	return nil
}

func (i *fakeInstance) Clone(out io.Writer) (ports.Instance, error) {
	return &fakeInstance{h: i.h, values: maps.Clone(i.values), out: out}, nil
}

// Build writes label(name=value,...){body} followed by [output] of every call.
func (i *fakeInstance) Build(body string, call ports.CallFunc) error {
	pairs := make([]string, 0, len(i.values))
	for _, k := range slices.Sorted(maps.Keys(i.values)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, i.values[k]))
	}
	if _, err := fmt.Fprintf(i.out, "%s(%s){%s}", i.h.label, strings.Join(pairs, ","), body); err != nil {
		return err
	}
	for _, name := range i.h.calls {
		s, err := call(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(i.out, "[%s]", s); err != nil {
			return err
		}
	}
	return nil
}

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []error
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func (l *recordingLogger) SetOutput(io.Writer) {}
func (l *recordingLogger) SetJSON(bool)        {}
func (l *recordingLogger) SetLevel(string)     {}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.warns)
}

type fixture struct {
	locator  *fakeLocator
	compiler *echoCompiler
	loader   *fakeLoader
	logger   *recordingLogger
	deps     lifecycle.Deps
}

func newFixture(files ...*fakeResource) *fixture {
	f := &fixture{
		locator:  newLocator(files...),
		compiler: &echoCompiler{},
		loader:   &fakeLoader{},
		logger:   &recordingLogger{},
	}
	f.deps = lifecycle.Deps{
		Locator:  f.locator,
		Parser:   markup.New(),
		Compiler: f.compiler,
		Loader:   f.loader,
		Logger:   f.logger,
	}
	return f
}

func (f *fixture) manager() *lifecycle.Manager {
	return lifecycle.NewManager(f.deps)
}

func resolve(t *testing.T, m *lifecycle.Manager, identifier string) *lifecycle.Unit {
	t.Helper()
	u, err := m.Resolve(context.Background(), identifier)
	if err != nil {
		t.Fatalf("resolve %s: %v", identifier, err)
	}
	return u
}
