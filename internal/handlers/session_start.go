package handlers

import (
	"context"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/domain"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/ids"
)

// SessionStartHandler processes the event marking a new or resumed host
// session. It builds a passive domain.Session for the event and starts
// it (§1: "exist in the source but are passive records; they are not part
// of the core"); the value is neither persisted nor returned — only the
// acknowledgement reaches the output.
type SessionStartHandler struct{ deps Deps }

func NewSessionStartHandler(deps Deps) *SessionStartHandler {
	return &SessionStartHandler{deps: deps}
}

func (h *SessionStartHandler) Name() string { return constants.EventSessionStart }

func (h *SessionStartHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventSessionStart); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *SessionStartHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	source := ""
	if ev.Source != nil {
		source = *ev.Source
	}

	sess := domain.NewSession(ids.SessionID(ev.SessionID), fmt.Sprintf("session started via %s", source))
	sess.Start()

	return &Result{
		ExitCode: errs.ExitSuccess,
		Output:   fmt.Sprintf("session_start acknowledged (source=%s)", source),
	}, nil
}
