package handlers

import (
	"context"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
)

// PostToolUseHandler processes events after Claude Code has run a tool.
// By the time this runs the tool has already executed, so there is
// nothing left to block — the handler's role is bookkeeping: confirming
// the response arrived and reporting which tool it came from. The
// response body itself is not included in the output.
type PostToolUseHandler struct{ deps Deps }

func NewPostToolUseHandler(deps Deps) *PostToolUseHandler {
	return &PostToolUseHandler{deps: deps}
}

func (h *PostToolUseHandler) Name() string { return constants.EventPostToolUse }

func (h *PostToolUseHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventPostToolUse); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *PostToolUseHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	toolName := ""
	if ev.ToolName != nil {
		toolName = *ev.ToolName
	}

	return &Result{
		ExitCode: errs.ExitSuccess,
		Output:   fmt.Sprintf("post_tool_use recorded for tool: %s", toolName),
	}, nil
}
