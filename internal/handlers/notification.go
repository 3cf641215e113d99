package handlers

import (
	"context"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
)

// NotificationHandler processes host-originated notification messages —
// it has no decision to make, only to acknowledge receipt.
type NotificationHandler struct{ deps Deps }

func NewNotificationHandler(deps Deps) *NotificationHandler {
	return &NotificationHandler{deps: deps}
}

func (h *NotificationHandler) Name() string { return constants.EventNotification }

func (h *NotificationHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventNotification); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *NotificationHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	message := ""
	if ev.Message != nil {
		message = *ev.Message
	}

	return &Result{ExitCode: errs.ExitSuccess, Output: message}, nil
}
