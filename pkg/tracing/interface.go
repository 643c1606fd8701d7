package tracing

import (
	"context"

	"go.opencensus.io/trace"
)

//go:generate mockgen -destination=../mocks/mock_tracer.go -package=pkgmocks github.com/workplacehq/workplace/pkg/tracing Tracer

// Tracer is the span surface the services depend on. It stays an
// interface so tests can swap out the OpenCensus-backed implementation.
// codecov:ignore:start
type Tracer interface {
	// StartServiceSpan opens a span named "Service.Method" and returns
	// the context carrying it
	StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span)

	// EndSpan closes the span, recording err as the span status when set
	EndSpan(span *trace.Span, err error)

	// AddAttribute attaches a key/value pair to the span in ctx, if any
	AddAttribute(ctx context.Context, key string, value interface{})

	// MarkSpanError flags the span in ctx as failed without ending it
	MarkSpanError(ctx context.Context, err error)
}

// DefaultTracer forwards to the package-level OpenCensus helpers.
type DefaultTracer struct{}

// NewTracer creates a new DefaultTracer
func NewTracer() Tracer {
	return &DefaultTracer{}
}

func (t *DefaultTracer) StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return StartServiceSpan(ctx, serviceName, methodName)
}

func (t *DefaultTracer) EndSpan(span *trace.Span, err error) {
	EndSpan(span, err)
}

func (t *DefaultTracer) AddAttribute(ctx context.Context, key string, value interface{}) {
	AddAttribute(ctx, key, value)
}

func (t *DefaultTracer) MarkSpanError(ctx context.Context, err error) {
	MarkSpanError(ctx, err)
}

var globalTracer Tracer = NewTracer()

// GetTracer returns the process-wide tracer
func GetTracer() Tracer {
	return globalTracer
}

// SetTracer replaces the process-wide tracer
func SetTracer(tracer Tracer) {
	globalTracer = tracer
}

// codecov:ignore:end
