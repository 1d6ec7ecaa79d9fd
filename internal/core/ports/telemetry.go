package ports

import (
	"context"
	"io"

	"go.trai.ch/quill/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records pipeline stages as vertices.
type Telemetry interface {
	// Record starts a vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded stage.
type Vertex interface {
	// Stdout returns a writer for the vertex's output.
	Stdout() io.Writer
	// Log records a message against the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete finishes the vertex, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as a cache hit.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex stores v in ctx.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the current vertex, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
