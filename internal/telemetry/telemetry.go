// Package telemetry wraps go.opentelemetry.io/otel behind a single
// process-wide tracer, generalized from the teacher's
// internal/executor/tracing.go (which leaned on an external
// vinayprograms/agentkit/telemetry.GetTracer() helper — reimplemented
// here directly against the otel SDK's global tracer provider so the
// dependency keeps its home without the donor module).
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/maos-project/maos"

// Tracer is a thin wrapper giving call sites StartSpan without repeating
// the instrumentation name at every call site; callers end the returned
// span themselves.
type Tracer struct {
	tr    trace.Tracer
	debug bool
}

var (
	once    sync.Once
	tracer  *Tracer
	mu      sync.RWMutex
)

// GetTracer returns the process-wide Tracer, initializing it against
// whatever TracerProvider is registered globally (a no-op provider until
// an exporter is configured — spans are always safe to create).
func GetTracer() *Tracer {
	once.Do(func() {
		tracer = &Tracer{tr: otel.Tracer(instrumentationName)}
	})
	return tracer
}

// SetDebug sets the process-wide tracer's debug flag, as reported by Debug
// (mirrors the teacher's tracer.Debug() gate). Nothing in this package
// changes span contents based on it.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	GetTracer().debug = enabled
}

// Debug reports the current verbosity setting.
func (t *Tracer) Debug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return t.debug
}

// StartSpan starts a span named name as a child of ctx.
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tr.Start(ctx, name)
}
