// Package loader evaluates enhanced template artifacts with the yaegi Go interpreter.
package loader

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Loader = (*Loader)(nil)

// Loader implements ports.Loader. Every artifact is evaluated in its own interpreter,
// so versions of a unit never share state.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load evaluates artifact and resolves the unit API it declares.
func (l *Loader) Load(ctx context.Context, versionedName string, artifact []byte) (ports.Handle, error) {
	file, err := parser.ParseFile(token.NewFileSet(), versionedName+".go", artifact, parser.PackageClauseOnly)
	if err != nil {
		return nil, loadFailed(err, versionedName)
	}
	prefix := ""
	if pkg := file.Name.Name; pkg != domain.DefaultPackage {
		prefix = pkg + "."
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, loadFailed(err, versionedName)
	}
	if _, err := evalSource(ctx, i, string(artifact)); err != nil {
		return nil, loadFailed(err, versionedName)
	}

	s := symbols{i: i, prefix: prefix}
	h := &Handle{name: versionedName}
	unitName := s.constant("UnitName")
	if unitName != versionedName {
		return nil, loadFailed(zerr.With(zerr.New("artifact declares another unit"), "declared", unitName), versionedName)
	}
	h.base = s.constant("BaseName")
	h.tag = s.constant("TagName")

	s.fn("New", &h.newFn)
	s.fn("Clone", &h.cloneFn)
	s.fn("ArgNames", &h.argNamesFn)
	s.fn("SetRenderArgs", &h.setArgsFn)
	s.fn("SetRenderArgsAt", &h.setArgsAtFn)
	s.fn("SetRenderArg", &h.setArgFn)
	s.fn("SetRenderArgAt", &h.setArgAtFn)
	s.fn("Build", &h.buildFn)
	if s.err != nil {
		return nil, loadFailed(s.err, versionedName)
	}

	if err := guard(func() { h.argNames = h.argNamesFn() }); err != nil {
		return nil, loadFailed(err, versionedName)
	}
	return h, nil
}

func loadFailed(err error, name string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "unit", name)
}

func evalSource(ctx context.Context, i *interp.Interpreter, src string) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
		}
	}()
	return i.EvalWithContext(ctx, src)
}

// symbols resolves package-level declarations of an evaluated artifact.
// The first failure is kept in err and later lookups become no-ops.
type symbols struct {
	i      *interp.Interpreter
	prefix string
	err    error
}

func (s *symbols) lookup(name string) (reflect.Value, bool) {
	v, err := evalSource(context.Background(), s.i, s.prefix+name)
	if err != nil || !v.IsValid() {
		return reflect.Value{}, false
	}
	return v, true
}

// constant returns a string constant, or empty when it is not declared.
func (s *symbols) constant(name string) string {
	v, ok := s.lookup(name)
	if !ok || v.Kind() != reflect.String {
		return ""
	}
	return v.String()
}

// fn stores the function declared as name into target, which must point to a func variable.
func (s *symbols) fn(name string, target any) {
	if s.err != nil {
		return
	}
	v, ok := s.lookup(name)
	if !ok {
		s.err = zerr.With(zerr.New("artifact does not declare a required function"), "func", name)
		return
	}
	dst := reflect.ValueOf(target).Elem()
	var rv reflect.Value
	if err := guard(func() { rv = reflect.ValueOf(v.Interface()) }); err != nil {
		s.err = zerr.With(err, "func", name)
		return
	}
	if !rv.IsValid() || !rv.Type().AssignableTo(dst.Type()) {
		s.err = zerr.With(zerr.With(zerr.New("function has an unexpected signature"), "func", name), "type", v.Type().String())
		return
	}
	dst.Set(rv)
}

// guard runs f and turns a panic in interpreted code into an error.
func guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in template unit: %v", r)
		}
	}()
	f()
	return nil
}

var _ ports.Handle = (*Handle)(nil)

// Handle is a loaded unit.
type Handle struct {
	name     string
	base     string
	tag      string
	argNames []string

	newFn       func() any
	cloneFn     func(any) any
	argNamesFn  func() []string
	setArgsFn   func(any, map[string]any) error
	setArgsAtFn func(any, ...any) error
	setArgFn    func(any, string, any) error
	setArgAtFn  func(any, int, any) error
	buildFn     func(any, io.Writer, string, func(string, ...any) (string, error)) error
}

// Name returns the versioned name the handle was loaded for.
func (h *Handle) Name() string {
	return h.name
}

// Construct creates a new master instance with default arguments.
func (h *Handle) Construct() (ports.Instance, error) {
	var v any
	if err := guard(func() { v = h.newFn() }); err != nil {
		return nil, err
	}
	return &Instance{h: h, v: v, out: io.Discard}, nil
}

func unknownCall(name string) error {
	return zerr.With(domain.ErrTagNotFound, "tag", name)
}
