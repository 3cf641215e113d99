// Package ids implements the prefixed-UUID identifier value types shared by
// sessions, agents, and tool calls (spec §3), grounded on the reference
// implementation's impl_id_type! macro: generate as "<prefix>_<uuidv4>",
// validate by splitting on the first underscore and parsing the remainder
// as a UUID, and round-trip through Display/Parse.
package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SessionID identifies a host session. Value objects: cheap to copy,
// immutable, comparable.
type SessionID string

// AgentID identifies an agent instance.
type AgentID string

// ToolCallID identifies a single tool invocation.
type ToolCallID string

const (
	sessionPrefix = "sess"
	agentPrefix   = "agent"
	toolPrefix    = "tool"
)

// GenerateSessionID returns a new valid SessionID.
func GenerateSessionID() SessionID { return SessionID(generate(sessionPrefix)) }

// GenerateAgentID returns a new valid AgentID.
func GenerateAgentID() AgentID { return AgentID(generate(agentPrefix)) }

// GenerateToolCallID returns a new valid ToolCallID.
func GenerateToolCallID() ToolCallID { return ToolCallID(generate(toolPrefix)) }

func generate(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}

// ParseSessionID validates and returns s as a SessionID.
func ParseSessionID(s string) (SessionID, error) {
	if !isValid(s, sessionPrefix) {
		return "", fmt.Errorf("invalid session id format: %q", s)
	}
	return SessionID(s), nil
}

// ParseAgentID validates and returns s as an AgentID.
func ParseAgentID(s string) (AgentID, error) {
	if !isValid(s, agentPrefix) {
		return "", fmt.Errorf("invalid agent id format: %q", s)
	}
	return AgentID(s), nil
}

// ParseToolCallID validates and returns s as a ToolCallID.
func ParseToolCallID(s string) (ToolCallID, error) {
	if !isValid(s, toolPrefix) {
		return "", fmt.Errorf("invalid tool call id format: %q", s)
	}
	return ToolCallID(s), nil
}

func isValid(s, prefix string) bool {
	parts := strings.SplitN(s, "_", 2)
	if len(parts) != 2 || parts[0] != prefix {
		return false
	}
	_, err := uuid.Parse(parts[1])
	return err == nil
}

// IsValid reports whether id is a well-formed SessionID.
func (id SessionID) IsValid() bool { return isValid(string(id), sessionPrefix) }

// IsValid reports whether id is a well-formed AgentID.
func (id AgentID) IsValid() bool { return isValid(string(id), agentPrefix) }

// IsValid reports whether id is a well-formed ToolCallID.
func (id ToolCallID) IsValid() bool { return isValid(string(id), toolPrefix) }

// String implements fmt.Stringer.
func (id SessionID) String() string { return string(id) }

// String implements fmt.Stringer.
func (id AgentID) String() string { return string(id) }

// String implements fmt.Stringer.
func (id ToolCallID) String() string { return string(id) }
