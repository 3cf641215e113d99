package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/event"
	"github.com/maos-project/maos/internal/security"
)

// PreToolUseHandler processes events immediately before Claude Code
// executes a tool: it validates the intended command (if the tool is
// shell-shaped) and any file/path arguments against the protected-file
// list and the pre-canonicalization path-safety check before the host is
// allowed to proceed. Tool-supplied paths are not workspace-relative in
// general (a Read/Write/Edit call can legitimately target any path on
// disk), so this only rejects traversal-shaped paths, not paths outside
// any configured workspace root.
type PreToolUseHandler struct{ deps Deps }

func NewPreToolUseHandler(deps Deps) *PreToolUseHandler {
	return &PreToolUseHandler{deps: deps}
}

func (h *PreToolUseHandler) Name() string { return constants.EventPreToolUse }

func (h *PreToolUseHandler) ValidateInput(ev *event.Event) *errs.Error {
	if err := requireEventName(ev, constants.EventPreToolUse); err != nil {
		return err
	}
	return ev.Validate()
}

// toolInputPathFields are the well-known keys Claude Code's built-in tools
// use for file paths (shell commands are read from the "command" key in
// Execute); inspecting them lets a single
// handler cover Bash, Read, Write, Edit, and similar tools without a
// per-tool dispatch table.
var toolInputPathFields = []string{"file_path", "path", "notebook_path"}

func (h *PreToolUseHandler) Execute(_ context.Context, ev *event.Event, _ Options) (*Result, *errs.Error) {
	if err := h.ValidateInput(ev); err != nil {
		return nil, err
	}

	var params map[string]any
	if len(ev.ToolInput) > 0 {
		_ = json.Unmarshal(ev.ToolInput, &params)
	}

	if cmd, ok := params["command"].(string); ok && cmd != "" {
		if err := security.ValidateCommandSafety(cmd); err != nil {
			return nil, err
		}
	}

	toolName := ""
	if ev.ToolName != nil {
		toolName = *ev.ToolName
	}

	for _, field := range toolInputPathFields {
		p, ok := params[field].(string)
		if !ok || p == "" {
			continue
		}
		if err := security.ValidateFileAccess(p, toolName); err != nil {
			return nil, err
		}
		if err := security.ValidatePathSafety(p); err != nil {
			return nil, err
		}
	}

	return &Result{
		ExitCode: errs.ExitSuccess,
		Output:   fmt.Sprintf("pre_tool_use validated for tool: %s", toolName),
	}, nil
}
