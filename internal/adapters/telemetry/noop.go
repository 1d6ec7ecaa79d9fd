// Package telemetry provides the telemetry backends of the unit pipeline.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

var _ ports.Telemetry = NoOp{}

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns ctx unchanged with a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

// NoOpVertex is a ports.Vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Log does nothing.
func (NoOpVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoOpVertex) Complete(error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}
