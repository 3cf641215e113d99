// Package event defines the tagged hook-event record (§3) and its
// per-variant validation rules, grounded verbatim on the reference
// implementation's HookInput/HookInput::validate (io/messages.rs):
// required base fields plus optional variant fields, ignored-if-absent
// for other variants, unknown hook_event_name is a validation failure.
package event

import (
	"encoding/json"
	"fmt"

	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
)

// Event is the single JSON object received on stdin (§3). All variant
// fields are optional on the wire; Validate enforces which ones are
// required for the declared HookEventName.
type Event struct {
	SessionID      string          `json:"session_id"`
	TranscriptPath string          `json:"transcript_path"`
	Cwd            string          `json:"cwd"`
	HookEventName  string          `json:"hook_event_name"`

	ToolName     *string         `json:"tool_name,omitempty"`
	ToolInput    json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse json.RawMessage `json:"tool_response,omitempty"`

	Message *string `json:"message,omitempty"`

	Prompt *string `json:"prompt,omitempty"`

	Trigger             *string `json:"trigger,omitempty"`
	CustomInstructions   *string `json:"custom_instructions,omitempty"`

	Source *string `json:"source,omitempty"`

	StopHookActive *bool `json:"stop_hook_active,omitempty"`
}

// IsToolEvent reports whether e is a pre_tool_use or post_tool_use event.
func (e *Event) IsToolEvent() bool {
	return e.HookEventName == constants.EventPreToolUse || e.HookEventName == constants.EventPostToolUse
}

// isEmpty treats an absent or empty-string pointer as "not provided"
// (§4.7: "Empty required strings are treated as absent").
func isEmpty(s *string) bool {
	return s == nil || *s == ""
}

// Validate runs the per-variant required-field checks from §3/§4.7. It
// never inspects TranscriptPath's contents — that file is opaque to the
// core.
func (e *Event) Validate() *errs.Error {
	switch e.HookEventName {
	case constants.EventPreToolUse:
		if isEmpty(e.ToolName) || len(e.ToolInput) == 0 {
			return errs.InvalidInput("pre_tool_use requires tool_name and tool_input")
		}
	case constants.EventPostToolUse:
		if isEmpty(e.ToolName) || len(e.ToolInput) == 0 || len(e.ToolResponse) == 0 {
			return errs.InvalidInput("post_tool_use requires tool_name, tool_input, and tool_response")
		}
	case constants.EventNotification:
		if isEmpty(e.Message) {
			return errs.InvalidInput("notification requires message")
		}
	case constants.EventUserPromptSubmit:
		if isEmpty(e.Prompt) {
			return errs.InvalidInput("user_prompt_submit requires prompt")
		}
	case constants.EventPreCompact:
		if isEmpty(e.Trigger) || isEmpty(e.CustomInstructions) {
			return errs.InvalidInput("pre_compact requires trigger and custom_instructions")
		}
		if *e.Trigger != "manual" && *e.Trigger != "auto" {
			return errs.InvalidInput(fmt.Sprintf("invalid trigger value: %s. Must be 'manual' or 'auto'", *e.Trigger))
		}
	case constants.EventSessionStart:
		if isEmpty(e.Source) {
			return errs.InvalidInput("session_start requires source")
		}
		if *e.Source != "startup" && *e.Source != "resume" && *e.Source != "clear" {
			return errs.InvalidInput(fmt.Sprintf("invalid source value: %s. Must be 'startup', 'resume', or 'clear'", *e.Source))
		}
	case constants.EventStop, constants.EventSubagentStop:
		// stop_hook_active is optional; nothing else to require.
	default:
		return errs.InvalidInput(fmt.Sprintf("unknown hook event: %s", e.HookEventName))
	}

	return nil
}
