package ids

import "testing"

func TestSessionIDRoundTrip(t *testing.T) {
	id := GenerateSessionID()
	if !id.IsValid() {
		t.Fatalf("generated id %q is not valid", id)
	}
	parsed, err := ParseSessionID(id.String())
	if err != nil {
		t.Fatalf("ParseSessionID(%q): %v", id, err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: got %q want %q", parsed, id)
	}
}

func TestAgentIDRoundTrip(t *testing.T) {
	id := GenerateAgentID()
	parsed, err := ParseAgentID(id.String())
	if err != nil {
		t.Fatalf("ParseAgentID(%q): %v", id, err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: got %q want %q", parsed, id)
	}
}

func TestToolCallIDRoundTrip(t *testing.T) {
	id := GenerateToolCallID()
	parsed, err := ParseToolCallID(id.String())
	if err != nil {
		t.Fatalf("ParseToolCallID(%q): %v", id, err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: got %q want %q", parsed, id)
	}
}

func TestInvalidIdentifiers(t *testing.T) {
	cases := []string{
		"",
		"sess_not-a-uuid",
		"agent_" + string(GenerateSessionID())[5:],
		"wrong_12345678-1234-1234-1234-123456789012",
	}
	for _, c := range cases {
		if _, err := ParseSessionID(c); err == nil {
			t.Errorf("ParseSessionID(%q): expected error, got none", c)
		}
	}
}

func TestWrongPrefixRejected(t *testing.T) {
	sess := GenerateSessionID()
	if _, err := ParseAgentID(sess.String()); err == nil {
		t.Fatalf("ParseAgentID accepted a session id %q", sess)
	}
}
