package lifecycle

import (
	"context"
	"io"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

type nopTelemetry struct{}

func (nopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

func (nopTelemetry) Close() error { return nil }

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer           { return io.Discard }
func (nopVertex) Log(domain.LogLevel, string) {}
func (nopVertex) Complete(error)              {}
func (nopVertex) Cached()                     {}
