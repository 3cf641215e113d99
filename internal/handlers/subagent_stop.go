package handlers

import (
	"context"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
)

// SubagentStopHandler processes the event marking a Task-tool subagent's
// run as finished. There is no required field beyond the base envelope
// (§3, §4.7); the handler only acknowledges.
type SubagentStopHandler struct{ deps Deps }

func NewSubagentStopHandler(deps Deps) *SubagentStopHandler {
	return &SubagentStopHandler{deps: deps}
}

func (h *SubagentStopHandler) Name() string { return constants.EventSubagentStop }

func (h *SubagentStopHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventSubagentStop); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *SubagentStopHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}
	return &Result{ExitCode: errs.ExitSuccess, Output: "subagent_stop acknowledged"}, nil
}
