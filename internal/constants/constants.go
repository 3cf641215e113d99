// Package constants centralizes the compile-time ceilings, timeouts, and
// filesystem naming conventions shared across the adjudicator. Values here
// are defaults; internal/config may override the subset that the merged
// configuration exposes.
package constants

import "time"

// Byte-size units.
const (
	BytesPerKB = 1024
	BytesPerMB = 1024 * 1024
)

// Stdin and JSON structural limits (§4.1, §6).
const (
	// MaxInputSize is the default stdin size ceiling: 10 MiB.
	MaxInputSize = 10 * BytesPerMB

	// MaxJSONDepth is the default structural nesting ceiling in production.
	MaxJSONDepth = 64

	// DefaultBufferSize is the reusable stdin read buffer's initial capacity.
	DefaultBufferSize = 8 * BytesPerKB
)

// Timeouts (§4.1, §5).
const (
	StdinReadTimeout      = 500 * time.Millisecond
	TotalProcessingBudget = 5 * time.Second
	FileLockTimeout       = 1 * time.Second
)

// Session logger defaults (§4.4, §6).
const (
	MaxLogFileSize       = 10 * BytesPerMB
	MaxFilesPerSession   = 5
	DefaultCompressOnRoll = true
)

// Metrics collector defaults (§4.5).
const (
	MaxSamplesPerOperation = 1000
)

// Filesystem layout (§6).
const (
	RootDirName      = ".maos"
	SessionsDirName  = "sessions"
	WorkspacesDirName = "workspaces"

	SessionLogPrefix = "session-"
	SessionLogExt    = ".log"
)

// Identifier prefixes (§3).
const (
	SessionIDPrefix  = "sess"
	AgentIDPrefix    = "agent"
	ToolCallIDPrefix = "tool"
)

// Hook event tags (§3, §6).
const (
	EventPreToolUse       = "pre_tool_use"
	EventPostToolUse      = "post_tool_use"
	EventNotification     = "notification"
	EventUserPromptSubmit = "user_prompt_submit"
	EventPreCompact       = "pre_compact"
	EventSessionStart     = "session_start"
	EventStop             = "stop"
	EventSubagentStop     = "subagent_stop"
)
