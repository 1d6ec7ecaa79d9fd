package ports

import "context"

// Enhancer rewrites a compiled artifact before it is loaded.
//
//go:generate mockgen -source=enhancer.go -destination=mocks/mock_enhancer.go -package=mocks
type Enhancer interface {
	// Name identifies the enhancer in configuration.
	Name() string
	// Transform returns the rewritten artifact of the unit with identity.
	Transform(ctx context.Context, identity string, artifact []byte) ([]byte, error)
}
