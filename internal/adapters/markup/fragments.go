package markup

import (
	"go.trai.ch/quill/internal/core/ports"
)

// textFragment is literal template text.
type textFragment struct {
	text string
}

func (f textFragment) Invoke(ports.Builder) error { return nil }

func (f textFragment) Emit(e ports.Emitter) error {
	e.Text(f.text)
	return nil
}

// argsFragment is an argument declaration directive. Its declarations are
// applied when directives are invoked, not while parsing.
type argsFragment struct {
	params []ports.Param
}

func (f argsFragment) Invoke(b ports.Builder) error {
	for _, p := range f.params {
		if err := b.AddArgumentDeclaration(p.Type, p.Name); err != nil {
			return err
		}
	}
	return nil
}

func (f argsFragment) Emit(ports.Emitter) error { return nil }

// exprFragment prints a Go expression.
type exprFragment struct {
	expr string
}

func (f exprFragment) Invoke(ports.Builder) error { return nil }

func (f exprFragment) Emit(e ports.Emitter) error {
	e.Expr(f.expr)
	return nil
}

// slotFragment prints the child body of a layout.
type slotFragment struct{}

func (slotFragment) Invoke(ports.Builder) error { return nil }

func (slotFragment) Emit(e ports.Emitter) error {
	e.Slot()
	return nil
}

// callFragment invokes a tag or nested unit.
type callFragment struct {
	name string
	args string
}

func (f callFragment) Invoke(ports.Builder) error { return nil }

func (f callFragment) Emit(e ports.Emitter) error {
	e.Call(f.name, f.args)
	return nil
}

// nestedFragment defines a nested unit.
type nestedFragment struct {
	name    string
	params  []ports.Param
	content string
}

func (f nestedFragment) Invoke(ports.Builder) error { return nil }

func (f nestedFragment) Emit(e ports.Emitter) error {
	return e.Inner(f.name, f.params, f.content)
}
