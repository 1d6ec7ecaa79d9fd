package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

type innerSource struct {
	local string
	code  string
}

// unitSource accumulates the generated code of one unit and its inner units.
type unitSource struct {
	main   strings.Builder
	inners []innerSource
}

// String joins the unit and its inner units, each inner unit after its marker line.
func (s *unitSource) String() string {
	var b strings.Builder
	b.WriteString(s.main.String())
	for _, inner := range s.inners {
		b.WriteString("\n")
		b.WriteString(domain.InnerMarker)
		b.WriteString(inner.local)
		b.WriteString("\n")
		b.WriteString(inner.code)
	}
	return b.String()
}

var _ ports.Emitter = (*emitter)(nil)

// emitter writes the Go source of a unit. It also receives fragment contributions
// while the body-construction routine is written.
type emitter struct {
	g    *Generator
	d    *draft
	out  *unitSource
	w    *strings.Builder
	args []domain.ArgumentDeclaration
	err  error
}

func newEmitter(g *Generator, d *draft, out *unitSource) *emitter {
	return &emitter{g: g, d: d, out: out, w: &out.main, args: d.args.All()}
}

func (e *emitter) line(format string, args ...any) {
	fmt.Fprintf(e.w, format, args...)
	e.w.WriteByte('\n')
}

func (e *emitter) emitUnit() error {
	e.emitHeader()
	e.emitFields()
	e.emitConstructors()
	e.emitBinders()
	e.emitTagAccessor()
	return e.emitBuild()
}

func (e *emitter) emitHeader() {
	e.line("// Code generated by quill. DO NOT EDIT.")
	e.line("")
	e.line("package %s", domain.PackageName(e.d.namespace))
	e.line("")
	e.line("import (")
	e.line("\t%q", "fmt")
	e.line("\t%q", "io")
	for _, path := range sortedImports(e.d.imports) {
		if path == "fmt" || path == "io" {
			continue
		}
		e.line("\t%q", path)
	}
	e.line(")")
	e.line("")
	e.line("var (")
	e.line("\t_ = fmt.Sprint")
	e.line("\t_ = io.WriteString")
	e.line(")")
	e.line("")
	e.line("// UnitName is the versioned name of the unit.")
	e.line("const UnitName = %q", e.d.name)
	e.line("")
	e.line("// BaseName is the resolved base of the unit.")
	e.line("const BaseName = %q", e.d.base())
	e.line("")
}

func (e *emitter) emitFields() {
	if len(e.args) == 0 {
		e.line("type unit struct{}")
		e.line("")
		return
	}
	e.line("type unit struct {")
	for _, a := range e.args {
		e.line("\t%s %s", a.Name, a.Type.GoType)
	}
	e.line("}")
	e.line("")
}

func (e *emitter) emitConstructors() {
	e.line("func New() any {")
	e.line("\tt := &unit{}")
	for _, a := range e.args {
		if lit := a.Type.DefaultLiteral(); lit != "" {
			e.line("\tt.%s = %s", a.Name, lit)
		}
	}
	e.line("\treturn t")
	e.line("}")
	e.line("")
	e.line("func Clone(v any) any {")
	e.line("\tc := *v.(*unit)")
	e.line("\treturn &c")
	e.line("}")
	e.line("")
	names := make([]string, 0, len(e.args))
	for _, a := range e.args {
		names = append(names, strconv.Quote(a.Name))
	}
	e.line("func ArgNames() []string {")
	e.line("\treturn []string{%s}", strings.Join(names, ", "))
	e.line("}")
	e.line("")
	e.line("func toS(a any) string {")
	e.line("\tif a == nil {")
	e.line("\t\treturn \"\"")
	e.line("\t}")
	e.line("\tif s, ok := a.(string); ok {")
	e.line("\t\treturn s")
	e.line("\t}")
	e.line("\treturn fmt.Sprint(a)")
	e.line("}")
	e.line("")
}

func (e *emitter) emitBinders() {
	for _, a := range e.args {
		// Direct cast: no coercion, nil binds the zero value.
		e.line("func bind_%s(t *unit, a any) error {", a.Name)
		e.line("\tif a == nil {")
		e.line("\t\tvar zero %s", a.Type.GoType)
		e.line("\t\tt.%s = zero", a.Name)
		e.line("\t\treturn nil")
		e.line("\t}")
		e.line("\tc, ok := a.(%s)", a.Type.GoType)
		e.line("\tif !ok {")
		e.line("\t\treturn fmt.Errorf(%q, a)", "argument "+a.Name+": cannot use %T as "+a.Type.GoType)
		e.line("\t}")
		e.line("\tt.%s = c", a.Name)
		e.line("\treturn nil")
		e.line("}")
		e.line("")
		if a.Type.IsStringLike() {
			e.line("func bindText_%s(t *unit, a any) error {", a.Name)
			e.line("\tt.%s = toS(a)", a.Name)
			e.line("\treturn nil")
			e.line("}")
			e.line("")
		}
	}

	e.line("func SetRenderArgs(v any, args map[string]any) error {")
	e.line("\tt := v.(*unit)")
	e.line("\t_ = t")
	for _, a := range e.args {
		e.line("\tif a, ok := args[%q]; ok {", a.Name)
		e.line("\t\tif err := bind_%s(t, a); err != nil {", a.Name)
		e.line("\t\t\treturn err")
		e.line("\t\t}")
		e.line("\t}")
	}
	e.line("\treturn nil")
	e.line("}")
	e.line("")

	e.line("func SetRenderArgsAt(v any, args ...any) error {")
	e.line("\tfor i, a := range args {")
	e.line("\t\tif err := SetRenderArgAt(v, i, a); err != nil {")
	e.line("\t\t\treturn err")
	e.line("\t\t}")
	e.line("\t}")
	e.line("\treturn nil")
	e.line("}")
	e.line("")

	e.line("func SetRenderArg(v any, name string, a any) error {")
	e.line("\tt := v.(*unit)")
	e.line("\t_ = t")
	e.line("\tswitch name {")
	for _, a := range e.args {
		e.line("\tcase %q:", a.Name)
		e.line("\t\treturn bind_%s(t, a)", a.Name)
	}
	e.line("\t}")
	e.line("\treturn nil")
	e.line("}")
	e.line("")

	e.line("func SetRenderArgAt(v any, pos int, a any) error {")
	e.line("\tt := v.(*unit)")
	e.line("\t_ = t")
	e.line("\tswitch pos {")
	for i, a := range e.args {
		e.line("\tcase %d:", i)
		if a.Type.IsStringLike() {
			e.line("\t\treturn bindText_%s(t, a)", a.Name)
		} else {
			e.line("\t\treturn bind_%s(t, a)", a.Name)
		}
	}
	e.line("\t}")
	e.line("\treturn nil")
	e.line("}")
	e.line("")
}

func (e *emitter) emitTagAccessor() {
	if e.d.tagName == "" {
		return
	}
	e.line("// TagName is the name the unit is called by.")
	e.line("const TagName = %q", e.d.tagName)
	e.line("")
}

func (e *emitter) emitBuild() error {
	e.line("func Build(v any, w io.Writer, body string, call func(string, ...any) (string, error)) error {")
	e.line("\tt := v.(*unit)")
	e.line("\t_ = t")
	for _, a := range e.args {
		e.line("\t%s := t.%s", a.Name, a.Name)
		e.line("\t_ = %s", a.Name)
	}
	e.line("\t_, _ = body, call")
	for _, f := range e.d.fragments {
		if err := f.Emit(e); err != nil {
			return err
		}
		if e.err != nil {
			return e.err
		}
	}
	e.line("\treturn nil")
	e.line("}")
	return nil
}

func (e *emitter) write(expr string) {
	e.line("\tif _, err := %s; err != nil {", expr)
	e.line("\t\treturn err")
	e.line("\t}")
}

// Text writes literal output.
func (e *emitter) Text(s string) {
	if s == "" {
		return
	}
	e.write("io.WriteString(w, " + strconv.Quote(s) + ")")
}

// Expr prints the value of a Go expression.
func (e *emitter) Expr(expr string) {
	e.write("fmt.Fprint(w, " + strings.TrimSpace(expr) + ")")
}

// Slot prints the body handed down by a child unit.
func (e *emitter) Slot() {
	e.write("io.WriteString(w, body)")
}

// Call prints the output of a tag or inner unit.
func (e *emitter) Call(name, args string) {
	callArgs := strconv.Quote(name)
	if args = strings.TrimSpace(args); args != "" {
		callArgs += ", " + args
	}
	e.line("\t{")
	e.line("\t\ts, err := call(%s)", callArgs)
	e.line("\t\tif err != nil {")
	e.line("\t\t\treturn err")
	e.line("\t\t}")
	e.line("\t\tif _, err := io.WriteString(w, s); err != nil {")
	e.line("\t\t\treturn err")
	e.line("\t\t}")
	e.line("\t}")
}

// Inner generates a nested unit. Nested units contribute no output of their own.
func (e *emitter) Inner(name string, params []ports.Param, content string) error {
	if e.err != nil {
		return e.err
	}
	if err := e.g.buildInner(e.d, name, params, content, e.out); err != nil {
		e.err = err
		return err
	}
	return nil
}
