package domain

import "fmt"

// CompileError reports generated code rejected by the source compiler.
// It unwraps to both ErrCompileFailed and the compiler diagnostics.
type CompileError struct {
	// Key is the stable key of the failing unit.
	Key string
	// Name is the versioned name the compiler was asked to build.
	Name string
	// Source is the generated code that failed to compile.
	Source string
	// Err holds the compiler diagnostics.
	Err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrCompileFailed.Error(), e.Key, e.Err)
}

// Unwrap exposes the sentinel and the cause to errors.Is and errors.As.
func (e *CompileError) Unwrap() []error {
	return []error{ErrCompileFailed, e.Err}
}
