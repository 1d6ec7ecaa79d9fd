package loader

import (
	"io"
	"slices"

	"go.trai.ch/quill/internal/core/ports"
)

var _ ports.Instance = (*Instance)(nil)

// Instance is an interpreted unit value bound to an output writer.
type Instance struct {
	h   *Handle
	v   any
	out io.Writer
}

// BaseName returns the base the unit was generated against.
func (i *Instance) BaseName() string { return i.h.base }

// TagName returns the tag name, or empty for pages.
func (i *Instance) TagName() string { return i.h.tag }

// ArgNames returns the declared arguments in table order.
func (i *Instance) ArgNames() []string { return slices.Clone(i.h.argNames) }

// SetRenderArgs binds arguments by name. Unknown names are ignored.
func (i *Instance) SetRenderArgs(args map[string]any) (err error) {
	if g := guard(func() { err = i.h.setArgsFn(i.v, args) }); g != nil {
		return g
	}
	return err
}

// SetRenderArgsAt binds arguments by position.
func (i *Instance) SetRenderArgsAt(args ...any) (err error) {
	if g := guard(func() { err = i.h.setArgsAtFn(i.v, args...) }); g != nil {
		return g
	}
	return err
}

// SetRenderArg binds one argument by name.
func (i *Instance) SetRenderArg(name string, arg any) (err error) {
	if g := guard(func() { err = i.h.setArgFn(i.v, name, arg) }); g != nil {
		return g
	}
	return err
}

// SetRenderArgAt binds one argument by position.
func (i *Instance) SetRenderArgAt(pos int, arg any) (err error) {
	if g := guard(func() { err = i.h.setArgAtFn(i.v, pos, arg) }); g != nil {
		return g
	}
	return err
}

// Clone returns a copy of the instance bound to out.
func (i *Instance) Clone(out io.Writer) (ports.Instance, error) {
	if out == nil {
		out = io.Discard
	}
	var v any
	if err := guard(func() { v = i.h.cloneFn(i.v) }); err != nil {
		return nil, err
	}
	return &Instance{h: i.h, v: v, out: out}, nil
}

// Build writes the rendered unit to the bound writer.
func (i *Instance) Build(body string, call ports.CallFunc) (err error) {
	if call == nil {
		call = noCalls
	}
	if g := guard(func() { err = i.h.buildFn(i.v, i.out, body, call) }); g != nil {
		return g
	}
	return err
}

func noCalls(name string, _ ...any) (string, error) {
	return "", unknownCall(name)
}
