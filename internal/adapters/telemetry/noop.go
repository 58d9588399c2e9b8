package telemetry

import (
	"context"

	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// NoopTracer is a ports.Tracer that records nothing. It is used when tracing
// is disabled and in tests.
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that discards everything.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}

var _ ports.Tracer = (*NoopTracer)(nil)
