// Package domain holds the adjudicator's passive aggregate and
// value-object types: Session, Agent, Instance, and the AgentRole value
// object. These mirror the reference implementation's
// maos-domain/src/aggregates and value_objects crates one-to-one — plain
// structs with state-transition methods, no persistence or lookup
// behavior of their own (that lives in internal/logsession and the
// per-handler dispatch code, not here).
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/maos-project/maos/internal/ids"
)

// SessionStatus is the lifecycle state of a Session aggregate.
type SessionStatus string

const (
	SessionStatusCreated    SessionStatus = "created"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusFailed     SessionStatus = "failed"
)

// Session is the adjudicator's record of one host session under
// supervision: what it was asked to do and where it stands.
type Session struct {
	ID              ids.SessionID
	TaskDescription string
	Status          SessionStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSession creates a Session in the Created state.
func NewSession(id ids.SessionID, taskDescription string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:              id,
		TaskDescription: taskDescription,
		Status:          SessionStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Start transitions the session to InProgress.
func (s *Session) Start() {
	s.Status = SessionStatusInProgress
	s.UpdatedAt = time.Now().UTC()
}

// Complete transitions the session to Completed.
func (s *Session) Complete() {
	s.Status = SessionStatusCompleted
	s.UpdatedAt = time.Now().UTC()
}

// Fail transitions the session to Failed.
func (s *Session) Fail() {
	s.Status = SessionStatusFailed
	s.UpdatedAt = time.Now().UTC()
}

// AgentStatus is the lifecycle state of an Agent aggregate.
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "available"
	AgentStatusBusy      AgentStatus = "busy"
	AgentStatusOffline   AgentStatus = "offline"
	AgentStatusError     AgentStatus = "error"
)

// Agent is the adjudicator's record of one agent identity participating
// in a session: its role and what it is currently doing.
type Agent struct {
	ID           ids.AgentID
	Name         string
	Role         AgentRole
	Status       AgentStatus
	Capabilities []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAgent creates an Agent in the Available state.
func NewAgent(id ids.AgentID, name string, role AgentRole, capabilities []string) *Agent {
	now := time.Now().UTC()
	return &Agent{
		ID:           id,
		Name:         name,
		Role:         role,
		Status:       AgentStatusAvailable,
		Capabilities: capabilities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (a *Agent) SetBusy() {
	a.Status = AgentStatusBusy
	a.UpdatedAt = time.Now().UTC()
}

func (a *Agent) SetAvailable() {
	a.Status = AgentStatusAvailable
	a.UpdatedAt = time.Now().UTC()
}

func (a *Agent) SetOffline() {
	a.Status = AgentStatusOffline
	a.UpdatedAt = time.Now().UTC()
}

func (a *Agent) SetError() {
	a.Status = AgentStatusError
	a.UpdatedAt = time.Now().UTC()
}

// AgentRole is a value object describing what an agent is for: a
// predefined role shipped with the adjudicator, or a custom one declared
// by the host's configuration.
type AgentRole struct {
	Name            string
	Description     string
	Responsibilities string
	IsPredefined    bool
	InstanceSuffix  *string
}

// NewAgentRole constructs an AgentRole with every field explicit.
func NewAgentRole(name, description, responsibilities string, isPredefined bool, instanceSuffix *string) AgentRole {
	return AgentRole{
		Name:             name,
		Description:      description,
		Responsibilities: responsibilities,
		IsPredefined:     isPredefined,
		InstanceSuffix:   instanceSuffix,
	}
}

// PredefinedAgentRole constructs one of the adjudicator's built-in roles.
func PredefinedAgentRole(name, description, responsibilities string) AgentRole {
	return NewAgentRole(name, description, responsibilities, true, nil)
}

// CustomAgentRole constructs a host-declared role.
func CustomAgentRole(name, description, responsibilities string) AgentRole {
	return NewAgentRole(name, description, responsibilities, false, nil)
}

// InstanceStatus is the lifecycle state of a running Instance.
type InstanceStatus string

const (
	InstanceStatusStarting InstanceStatus = "starting"
	InstanceStatusRunning  InstanceStatus = "running"
	InstanceStatusStopping InstanceStatus = "stopping"
	InstanceStatusStopped  InstanceStatus = "stopped"
	InstanceStatusFailed   InstanceStatus = "failed"
)

// Instance represents one running instance of an agent within a session
// (an agent definition may be instantiated more than once per session).
type Instance struct {
	ID        uuid.UUID
	AgentID   ids.AgentID
	SessionID ids.SessionID
	Status    InstanceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInstance creates an Instance in the Starting state.
func NewInstance(agentID ids.AgentID, sessionID ids.SessionID) *Instance {
	now := time.Now().UTC()
	return &Instance{
		ID:        uuid.New(),
		AgentID:   agentID,
		SessionID: sessionID,
		Status:    InstanceStatusStarting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (i *Instance) Start() {
	i.Status = InstanceStatusRunning
	i.UpdatedAt = time.Now().UTC()
}

func (i *Instance) Stop() {
	i.Status = InstanceStatusStopping
	i.UpdatedAt = time.Now().UTC()
}

func (i *Instance) Stopped() {
	i.Status = InstanceStatusStopped
	i.UpdatedAt = time.Now().UTC()
}

func (i *Instance) Fail() {
	i.Status = InstanceStatusFailed
	i.UpdatedAt = time.Now().UTC()
}
