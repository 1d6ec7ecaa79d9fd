package ports

import "context"

//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks

// SourceCompiler turns generated code into compiled artifacts.
type SourceCompiler interface {
	// CompileByName compiles the units with the given versioned names.
	// Results are delivered through sink.
	CompileByName(ctx context.Context, names []string, sink ArtifactSink) error
}

// ArtifactSink is the owning side of a compilation.
type ArtifactSink interface {
	// GeneratedCode returns the generated code of a versioned name.
	GeneratedCode(name string) (string, bool)
	// SetCompiled stores the compiled artifact of a versioned name.
	SetCompiled(name string, artifact []byte)
	// AddInner registers an inner unit produced while compiling rootName.
	AddInner(rootName, local string, artifact []byte)
}
