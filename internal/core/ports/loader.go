package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// CallFunc renders a tag or inner unit with positional arguments.
type CallFunc func(name string, args ...any) (string, error)

// Loader turns an enhanced artifact into an invocable handle.
type Loader interface {
	Load(ctx context.Context, versionedName string, artifact []byte) (Handle, error)
}

// Handle is a loaded unit.
type Handle interface {
	// Name returns the versioned name the handle was loaded for.
	Name() string
	// Construct creates a new master instance.
	Construct() (Instance, error)
}

// Instance is a bindable, renderable instance of a unit.
type Instance interface {
	// BaseName returns the resolved base the unit was generated against.
	BaseName() string
	// TagName returns the tag name, or empty for pages.
	TagName() string
	// ArgNames returns the declared arguments in table order.
	ArgNames() []string
	SetRenderArgs(args map[string]any) error
	SetRenderArgsAt(args ...any) error
	SetRenderArg(name string, arg any) error
	SetRenderArgAt(pos int, arg any) error
	// Clone returns an independent copy bound to out.
	Clone(out io.Writer) (Instance, error)
	// Build writes the rendered body to the bound writer.
	Build(body string, call CallFunc) error
}
