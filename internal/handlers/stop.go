package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/security"
)

// StopHandler processes the event marking the main agent's run as
// finished. With `--chat` (§6, §12) it reads the transcript at
// transcript_path. The transcript lives wherever the host keeps its
// session history (e.g. ~/.claude/projects/.../transcript.jsonl), outside
// any configured workspace root, so only the pre-canonicalization
// traversal/drive/UNC check applies here, not workspace containment — the
// transcript's contents stay opaque to the core (§4.7), and streaming it
// through is the only thing this path is used for.
type StopHandler struct{ deps Deps }

func NewStopHandler(deps Deps) *StopHandler {
	return &StopHandler{deps: deps}
}

func (h *StopHandler) Name() string { return constants.EventStop }

func (h *StopHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventStop); err != nil {
		return err
	}
	return ev.Validate()
}

func (h *StopHandler) Execute(_ context.Context, ev *event.Event, opts Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	if !opts.Chat {
		return &Result{ExitCode: errs.ExitSuccess, Output: "stop acknowledged"}, nil
	}

	if err := security.ValidatePathSafety(ev.TranscriptPath); err != nil {
		return nil, err
	}

	contents, ioErr := os.ReadFile(ev.TranscriptPath)
	if ioErr != nil {
		return nil, errs.IOError(fmt.Sprintf("failed to read transcript: %v", ioErr))
	}

	return &Result{ExitCode: errs.ExitSuccess, Output: string(contents)}, nil
}
