package domain

import (
	"testing"

	"github.com/maos-project/maos/internal/ids"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(ids.GenerateSessionID(), "investigate flaky test")
	if s.Status != SessionStatusCreated {
		t.Fatalf("got %q", s.Status)
	}
	createdAt := s.UpdatedAt

	s.Start()
	if s.Status != SessionStatusInProgress {
		t.Fatalf("got %q", s.Status)
	}
	if !s.UpdatedAt.After(createdAt) && s.UpdatedAt != createdAt {
		t.Fatalf("expected updated_at to advance")
	}

	s.Complete()
	if s.Status != SessionStatusCompleted {
		t.Fatalf("got %q", s.Status)
	}
}

func TestSessionFail(t *testing.T) {
	s := NewSession(ids.GenerateSessionID(), "task")
	s.Start()
	s.Fail()
	if s.Status != SessionStatusFailed {
		t.Fatalf("got %q", s.Status)
	}
}

func TestAgentLifecycle(t *testing.T) {
	role := PredefinedAgentRole("reviewer", "reviews code", "reads diffs, flags issues")
	a := NewAgent(ids.GenerateAgentID(), "reviewer-1", role, []string{"read", "comment"})
	if a.Status != AgentStatusAvailable {
		t.Fatalf("got %q", a.Status)
	}

	a.SetBusy()
	if a.Status != AgentStatusBusy {
		t.Fatalf("got %q", a.Status)
	}

	a.SetOffline()
	if a.Status != AgentStatusOffline {
		t.Fatalf("got %q", a.Status)
	}

	a.SetError()
	if a.Status != AgentStatusError {
		t.Fatalf("got %q", a.Status)
	}

	a.SetAvailable()
	if a.Status != AgentStatusAvailable {
		t.Fatalf("got %q", a.Status)
	}
}

func TestAgentRoleConstructors(t *testing.T) {
	predefined := PredefinedAgentRole("planner", "plans work", "breaks down tasks")
	if !predefined.IsPredefined || predefined.InstanceSuffix != nil {
		t.Fatalf("got %+v", predefined)
	}

	custom := CustomAgentRole("scraper", "scrapes docs", "fetches reference material")
	if custom.IsPredefined || custom.InstanceSuffix != nil {
		t.Fatalf("got %+v", custom)
	}
}

func TestInstanceLifecycle(t *testing.T) {
	agentID := ids.GenerateAgentID()
	sessionID := ids.GenerateSessionID()
	inst := NewInstance(agentID, sessionID)

	if inst.Status != InstanceStatusStarting {
		t.Fatalf("got %q", inst.Status)
	}
	if inst.AgentID != agentID || inst.SessionID != sessionID {
		t.Fatalf("got %+v", inst)
	}

	inst.Start()
	if inst.Status != InstanceStatusRunning {
		t.Fatalf("got %q", inst.Status)
	}

	inst.Stop()
	if inst.Status != InstanceStatusStopping {
		t.Fatalf("got %q", inst.Status)
	}

	inst.Stopped()
	if inst.Status != InstanceStatusStopped {
		t.Fatalf("got %q", inst.Status)
	}
}

func TestInstanceFail(t *testing.T) {
	inst := NewInstance(ids.GenerateAgentID(), ids.GenerateSessionID())
	inst.Fail()
	if inst.Status != InstanceStatusFailed {
		t.Fatalf("got %q", inst.Status)
	}
}
