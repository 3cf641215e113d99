package handlers

import (
	"context"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
)

// PreCompactHandler processes events fired before the host compacts its
// conversation transcript. trigger/custom_instructions presence and
// trigger's enum membership are already enforced by event.Validate; this
// handler has nothing further to decide.
type PreCompactHandler struct{ deps Deps }

func NewPreCompactHandler(deps Deps) *PreCompactHandler {
	return &PreCompactHandler{deps: deps}
}

func (h *PreCompactHandler) Name() string { return constants.EventPreCompact }

func (h *PreCompactHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventPreCompact); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *PreCompactHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	trigger := ""
	if ev.Trigger != nil {
		trigger = *ev.Trigger
	}
	return &Result{ExitCode: errs.ExitSuccess, Output: fmt.Sprintf("pre_compact acknowledged (trigger=%s)", trigger)}, nil
}
