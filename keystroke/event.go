package keystroke

import "fmt"

// KMAX bounds the payload a single Event can carry. Six bytes is enough
// for every sequence this package recognizes: the longest CSI parameter
// run this parser accepts plus its terminator, or an IAC SB ... SE option
// payload of modest length. Longer sequences are not rejected — they are
// accepted and flagged Truncated, with the terminating byte preserved.
const KMAX = 6

// EventType identifies the shape of a decoded Event.
type EventType uint8

const (
	// EventNull carries no keystroke. It is returned by Get when the FIFO
	// is empty, and distinguishes "no data yet" from "end of input" via
	// Event.Value. EventNull must never be written into the FIFO.
	EventNull EventType = iota
	// EventChar is a single ordinary character, value 0x00..0xFF.
	EventChar
	// EventEsc is a single-character ESC sequence (ESC + one byte).
	EventEsc
	// EventCSI is a multi-character ANSI Control Sequence Introducer.
	EventCSI
	// EventIAC is a Telnet in-band command.
	EventIAC
)

// String renders an EventType for diagnostics and test failure messages.
func (t EventType) String() string {
	switch t {
	case EventNull:
		return "null"
	case EventChar:
		return "char"
	case EventEsc:
		return "esc"
	case EventCSI:
		return "csi"
	case EventIAC:
		return "iac"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// NullValue is the sub-value carried by an EventNull event's Value field.
type NullValue uint32

const (
	// NotEOF means the FIFO is empty but more input may still arrive.
	NotEOF NullValue = iota
	// EOF means the stream is fully drained and no more input will arrive.
	EOF
)

// Flags records the two failure modes a non-null Event can carry. Both
// are stored as bits 5 and 4 of a compound FIFO record header.
type Flags uint8

const (
	// FlagBroken marks a sequence that ended unexpectedly (EOF mid
	// sequence) or that contained a byte outside the legal set for its
	// current sub-state.
	FlagBroken Flags = 1 << iota
	// FlagTruncated marks a sequence whose accumulated length exceeded
	// KMAX before it completed.
	FlagTruncated
)

// Broken reports whether f has FlagBroken set.
func (f Flags) Broken() bool { return f&FlagBroken != 0 }

// Truncated reports whether f has FlagTruncated set.
func (f Flags) Truncated() bool { return f&FlagTruncated != 0 }

// Event is a single decoded keystroke, produced by Get or diverted to a
// steal slot by Input.
type Event struct {
	// Type is the shape of this event.
	Type EventType
	// Value is a scalar: the character code for EventChar, the
	// terminating byte for EventEsc/EventCSI, the command byte (Buf[0])
	// for EventIAC, or a NullValue for EventNull.
	Value uint32
	// Flags records Broken/Truncated. Always zero for EventNull.
	Flags Flags
	// Len is the number of meaningful bytes in Buf.
	Len int
	// Buf holds the event's raw payload: CSI parameter bytes, an IAC
	// option payload, or (for Esc/Char) nothing beyond what Value already
	// carries. Capacity KMAX; bytes at index >= Len are not meaningful.
	Buf [KMAX]byte
}

// IsNull reports whether e carries no keystroke (Get returned false, or an
// unfulfilled steal slot).
func (e Event) IsNull() bool { return e.Type == EventNull }
