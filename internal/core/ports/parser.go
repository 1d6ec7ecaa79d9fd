package ports

import "context"

//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks

// Parser turns template text into builder callbacks and fragments.
type Parser interface {
	// Parse feeds content to b. Parse errors are returned as-is.
	Parse(ctx context.Context, content string, b Builder) error
}

// Builder receives the structural facts of a template during generation.
type Builder interface {
	AddImport(path string)
	DefineTag(name string)
	SetExtends(parent string) error
	AddArgumentDeclaration(typ, name string) error
	AddFragment(f Fragment)
}

// Fragment is one piece of a template body.
type Fragment interface {
	// Invoke runs the fragment's directive hook before any body is built.
	Invoke(b Builder) error
	// Emit contributes the fragment to the body-construction routine.
	Emit(e Emitter) error
}

// Param is a typed parameter of a nested unit.
type Param struct {
	Type string
	Name string
}

// Emitter receives fragment contributions while the body is built.
type Emitter interface {
	// Text writes literal output.
	Text(s string)
	// Expr prints the value of a Go expression.
	Expr(expr string)
	// Slot prints the body handed down by a child unit.
	Slot()
	// Call prints the output of a tag or inner unit; args is a Go expression list.
	Call(name, args string)
	// Inner defines a nested unit from content.
	Inner(name string, params []Param, content string) error
}
