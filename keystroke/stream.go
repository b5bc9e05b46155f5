package keystroke

// Stream is an incremental keystroke parser. It holds no reference to a
// byte source: callers push bytes in with Input and pop decoded Events out
// with Get. A Stream is single-threaded cooperative — see doc.go — and is
// reclaimed by the garbage collector like any other Go value; there is no
// explicit destructor.
//
// The zero Stream value is not ready for use; construct one with New.
type Stream struct {
	csiByte byte

	eofMet     bool
	iacPending bool

	in       inProgress
	pushedIn inProgress

	stealThis bool
	stealSlot *Event

	fifo byteFIFO
}

// New creates a Stream configured with the given CSI byte. A csiByte of 0
// stores ESC, which disables a distinct single-byte CSI trigger (ESC `[`
// is always recognized regardless of this setting). Passing ESC (0x1B)
// explicitly has the same effect, by convention.
func New(csiByte byte) *Stream {
	if csiByte == 0 {
		csiByte = defaultCSI
	}
	return &Stream{csiByte: csiByte}
}
