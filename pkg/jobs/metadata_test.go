package jobs

import (
	"strings"
	"testing"
)

func TestNewRequestMetadataIsStable(t *testing.T) {
	a := NewRequestMetadata("alice@example.com", "sess-1", "www.google.com")
	b := NewRequestMetadata("alice@example.com", "sess-1", "www.google.com")
	if a != b {
		t.Errorf("metadata differs for identical input: %+v vs %+v", a, b)
	}

	if strings.Contains(a.UserID, "alice") || strings.Contains(a.SessionID, "sess-1") {
		t.Errorf("raw identifiers leaked into metadata: %+v", a)
	}
	if a.Domain != "www.google.com" {
		t.Errorf("domain = %q", a.Domain)
	}

	other := NewRequestMetadata("bob@example.com", "sess-1", "www.google.com")
	if other.UserID == a.UserID {
		t.Error("different users hashed to the same id")
	}
}

func TestHashIdentifierEmpty(t *testing.T) {
	if got := HashIdentifier(""); got != "" {
		t.Errorf("HashIdentifier(\"\") = %q, want empty", got)
	}
}
