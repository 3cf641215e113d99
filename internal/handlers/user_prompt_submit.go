package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
)

// UserPromptSubmitHandler processes a prompt the user just submitted. In
// its normal mode a policy failure blocks the prompt (the mapped exit
// code propagates to the host); with `--validate` (§12) it becomes a dry
// run: the same checks run, but a security/policy verdict is rendered as
// JSON output under exit 0 instead of the corresponding nonzero code, so
// a caller can lint a prompt without it taking effect.
type UserPromptSubmitHandler struct{ deps Deps }

func NewUserPromptSubmitHandler(deps Deps) *UserPromptSubmitHandler {
	return &UserPromptSubmitHandler{deps: deps}
}

func (h *UserPromptSubmitHandler) Name() string { return constants.EventUserPromptSubmit }

func (h *UserPromptSubmitHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventUserPromptSubmit); err != nil {
		return err
	}
	return ev.Validate()
}

// verdict is the JSON shape emitted for a `--validate` dry run.
type verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (h *UserPromptSubmitHandler) Execute(_ context.Context, ev *event.Event, opts Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	checkErr := h.checkPrompt(ev)

	if opts.Validate {
		v := verdict{Valid: checkErr == nil}
		if checkErr != nil {
			v.Reason = checkErr.Error()
		}
		payload, _ := json.Marshal(v)
		return &Result{ExitCode: errs.ExitSuccess, Output: string(payload)}, nil
	}

	if checkErr != nil {
		return nil, checkErr
	}

	prompt := ""
	if ev.Prompt != nil {
		prompt = *ev.Prompt
	}
	return &Result{ExitCode: errs.ExitSuccess, Output: fmt.Sprintf("user_prompt_submit accepted (%d chars)", len(prompt))}, nil
}

// checkPrompt runs whatever policy checks apply to prompt content. The
// spec names no concrete prompt-content deny list beyond the general
// command/path validators handlers reuse elsewhere, so this currently
// always accepts a structurally valid prompt; it is the seam --validate
// dry-runs through.
func (h *UserPromptSubmitHandler) checkPrompt(_ *event.Event) *errs.Error {
	return nil
}
