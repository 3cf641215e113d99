// Package dispatch implements the handler registry and dispatcher
// (§4.3): a concurrent, build-once-per-process map from event name to
// handler, and the single entry point that validates, executes, times,
// and otherwise orchestrates one handler invocation per process. Grounded
// on the reference implementation's maos/src/cli/registry.rs
// (HandlerRegistry::build/get_handler) and maos/src/cli/context.rs
// (CliContext's lazy dispatcher, folded here into Registry+Dispatcher
// since this binary has no async runtime to lazily enter).
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/handlers"
	"github.com/maos-project/maos/internal/metrics"
	"github.com/maos-project/maos/internal/security"
	"github.com/maos-project/maos/internal/telemetry"
)

// Registry is a concurrent, read-mostly handler lookup table built once
// from the fixed eight-handler set (§4.3: "readers must never block each
// other, and a concurrent writer must not invalidate an outstanding
// reader's borrow"). sync.Map gives that for free; a plain map guarded by
// a RWMutex would work too, but every write here happens during
// construction and never again, which is exactly sync.Map's intended
// shape.
type Registry struct {
	handlers sync.Map // string -> handlers.Handler
}

// NewRegistry builds a Registry holding exactly the eight hook handlers,
// wired against deps.
func NewRegistry(deps handlers.Deps) *Registry {
	r := &Registry{}
	for _, h := range []handlers.Handler{
		handlers.NewPreToolUseHandler(deps),
		handlers.NewPostToolUseHandler(deps),
		handlers.NewNotificationHandler(deps),
		handlers.NewUserPromptSubmitHandler(deps),
		handlers.NewPreCompactHandler(deps),
		handlers.NewSessionStartHandler(deps),
		handlers.NewStopHandler(deps),
		handlers.NewSubagentStopHandler(deps),
	} {
		r.handlers.Store(h.Name(), h)
	}
	return r
}

// Get returns the handler registered under name, or InvalidInput if none
// is registered (mirrors HandlerRegistry::get_handler's error shape).
func (r *Registry) Get(name string) (handlers.Handler, *errs.Error) {
	v, ok := r.handlers.Load(name)
	if !ok {
		return nil, errs.InvalidInput(fmt.Sprintf("no handler found for command: %s", name))
	}
	return v.(handlers.Handler), nil
}

// Len reports how many handlers are registered (test/diagnostic use).
func (r *Registry) Len() int {
	n := 0
	r.handlers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Dispatcher is the single entry point from a decoded event to a
// CommandResult: resolve the handler, validate, execute, record metrics,
// trace the call (§4.3, §5).
type Dispatcher struct {
	registry *Registry
	metrics  *metrics.Collector
	tracer   *telemetry.Tracer
}

// NewDispatcher builds a Dispatcher over registry and metricsCollector.
func NewDispatcher(registry *Registry, metricsCollector *metrics.Collector) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		metrics:  metricsCollector,
		tracer:   telemetry.GetTracer(),
	}
}

// Dispatch resolves ev's handler by event name, validates, executes, and
// returns its result or the error that should map to the process's exit
// code (§4.6). It does not itself write to stdout or call os.Exit — that
// is cmd/maos's job, keeping this package free of process-global effects
// and therefore testable in isolation.
func (d *Dispatcher) Dispatch(ctx context.Context, ev *event.Event, opts handlers.Options) (*handlers.Result, *errs.Error) {
	ctx, span := d.tracer.StartSpan(ctx, "dispatch."+ev.HookEventName)
	defer span.End()

	h, err := d.registry.Get(ev.HookEventName)
	if err != nil {
		d.metrics.IncrementError(ev.HookEventName)
		return nil, err
	}

	if err := validateBasePaths(ev); err != nil {
		d.metrics.IncrementError(ev.HookEventName)
		return nil, err
	}

	if err := h.ValidateInput(ev); err != nil {
		d.metrics.IncrementError(ev.HookEventName)
		return nil, err
	}

	start := time.Now()
	result, err := h.Execute(ctx, ev, opts)
	d.metrics.RecordExecution(ev.HookEventName, float64(time.Since(start).Milliseconds()))
	if err != nil {
		d.metrics.IncrementError(ev.HookEventName)
		return nil, err
	}

	return result, nil
}

// validateBasePaths runs the pre-canonicalization path-safety check
// (traversal/drive/UNC, §4.2) against every event's base fields —
// transcript_path and cwd — regardless of which handler ends up running.
// These fields are present on every event variant (§4.7), so a
// traversal-shaped base path must be rejected up front rather than left
// to each handler to remember; mirrors §8 Scenario 3's requirement that a
// traversal-shaped transcript_path maps to a security exit even when the
// variant-specific fields (tool_name, tool_input, ...) are otherwise
// valid.
func validateBasePaths(ev *event.Event) *errs.Error {
	if err := security.ValidatePathSafety(ev.TranscriptPath); err != nil {
		return err
	}
	return security.ValidatePathSafety(ev.Cwd)
}
