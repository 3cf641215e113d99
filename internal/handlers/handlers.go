// Package handlers implements the eight per-event hook handlers (§4.3,
// §6). Each handler is a small, stateless-beyond-its-deps value satisfying
// Handler, grounded on the reference implementation's
// maos/src/cli/handlers/*.rs shape: a name() tag, a validate_input that
// confirms hook_event_name matches the handler's own tag, and an execute
// that runs the handler's actual work and returns a CommandResult.
package handlers

import (
	"context"

	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/metrics"
	"github.com/maos-project/maos/internal/pathguard"
)

// Result mirrors the reference implementation's CommandResult: an exit
// code plus an optional textual payload destined for stdout.
type Result struct {
	ExitCode errs.ExitCode
	Output   string
}

// Options carries the per-invocation subcommand flags (§6: `--chat` on
// stop, `--validate` on user-prompt-submit). A handler that doesn't
// recognize a flag simply ignores it; this keeps Execute's signature
// uniform across all eight handlers rather than growing a method per
// flag combination.
type Options struct {
	Chat     bool
	Validate bool
}

// Handler is the polymorphic shape every hook handler satisfies (§4.3):
// execute, validate_input, name.
type Handler interface {
	Name() string
	ValidateInput(ev *event.Event) *errs.Error
	Execute(ctx context.Context, ev *event.Event, opts Options) (*Result, *errs.Error)
}

// Deps bundles the shared, already-constructed subsystems each handler
// may draw on — a per-agent path guard and the metrics collector, mirrors
// the reference CliContext wiring its MaosConfig/PerformanceMetrics into
// each handler via the dispatcher rather than having handlers reach for
// globals.
type Deps struct {
	Guard   *pathguard.Guard
	Metrics *metrics.Collector
}

// requireEventName returns an InvalidInput error unless ev.HookEventName
// matches want, mirroring every *.rs handler's validate_input body.
func requireEventName(ev *event.Event, want string) *errs.Error {
	if ev.HookEventName != want {
		return errs.InvalidInput("expected " + want + " hook, got " + ev.HookEventName)
	}
	return nil
}
