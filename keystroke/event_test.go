package keystroke

import "testing"

func TestFlagsAccessors(t *testing.T) {
	cases := []struct {
		name      string
		f         Flags
		broken    bool
		truncated bool
	}{
		{"none", 0, false, false},
		{"broken", FlagBroken, true, false},
		{"truncated", FlagTruncated, false, true},
		{"both", FlagBroken | FlagTruncated, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f.Broken(); got != c.broken {
				t.Errorf("Broken() = %v, want %v", got, c.broken)
			}
			if got := c.f.Truncated(); got != c.truncated {
				t.Errorf("Truncated() = %v, want %v", got, c.truncated)
			}
		})
	}
}

func TestEventIsNull(t *testing.T) {
	if !(Event{Type: EventNull}).IsNull() {
		t.Error("zero-type event should be null")
	}
	if (Event{Type: EventChar}).IsNull() {
		t.Error("char event should not be null")
	}
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventNull: "null",
		EventChar: "char",
		EventEsc:  "esc",
		EventCSI:  "csi",
		EventIAC:  "iac",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", typ, got, want)
		}
	}
	if got := EventType(99).String(); got == "" {
		t.Error("unknown EventType.String() should not be empty")
	}
}
