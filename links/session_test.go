package links

import (
	"testing"
)

func TestSession(t *testing.T) {
	session := NewSession()

	session.Append(hits)
	session.Append(hits[:1])

	if session.Len() != 3 || session.Count() != 1 {
		t.Errorf("Incorrect session - expected 3 hits (count 1), got %v (count %v)", session.Len(), session.Count())
	}

	session.MarkLinked()
	for _, hit := range session.Hits() {
		if !hit.Linked {
			t.Errorf("Expected %v to be marked linked", hit.FileName)
		}
	}

	session.Clear()
	if session.Len() != 0 || session.Count() != 0 {
		t.Errorf("Expected empty session after Clear, got %v (count %v)", session.Len(), session.Count())
	}
}

func TestSessionHitsReturnsCopy(t *testing.T) {
	session := NewSession()
	session.Append(hits)

	list := session.Hits()
	list[0].Linked = true

	if session.Hits()[0].Linked {
		t.Errorf("Modifying the returned hits changed the session log")
	}

	if hits[0].Linked {
		t.Errorf("Modifying the session log changed the appended hits")
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{"": Append, "append": Append, "replace": Replace}

	for s, expected := range tests {
		if mode, err := ParseMode(s); err != nil || mode != expected {
			t.Errorf("Incorrect mode for '%v' - expected %v, got %v (%v)", s, expected, mode, err)
		}
	}

	if _, err := ParseMode("merge"); err == nil {
		t.Errorf("Expected error for invalid mode")
	}
}
