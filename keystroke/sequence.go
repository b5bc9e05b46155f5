package keystroke

// seqState is the state of a single in-progress sequence descriptor. It is
// a small tagged variant, not a dynamic-dispatch hierarchy: each value has
// its own dispatch arm in ingest.go, and the exhaustive switch there is the
// single place the per-state behavior is described.
type seqState uint8

const (
	// stateIdle means no partial sequence is being collected.
	stateIdle seqState = iota
	// stateCharMulti is reserved by the source this package is modeled on
	// but never reached; this package treats entering it as a fatal
	// invariant violation (spec.md's open question on char_multi).
	stateCharMulti
	// stateEsc means a lone ESC byte was just consumed; the next byte
	// either opens a CSI or completes a short ESC sequence.
	stateEsc
	// stateCSI means a CSI sequence is being accumulated: parameter and
	// intermediate bytes followed by a terminator.
	stateCSI
	// stateIACOption means an IAC command byte was just consumed and the
	// next byte is its option argument.
	stateIACOption
	// stateIACSub means an IAC SB <option> subnegotiation is open and
	// bytes are being accumulated until a terminating IAC SE.
	stateIACSub
)

func (s seqState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateCharMulti:
		return "char_multi"
	case stateEsc:
		return "esc"
	case stateCSI:
		return "csi"
	case stateIACOption:
		return "iac_option"
	case stateIACSub:
		return "iac_sub"
	default:
		return "seqState(?)"
	}
}

// inProgress is an in-progress sequence descriptor. Two live inline inside
// a Stream: `in`, the top-level sequence being collected, and `pushedIn`,
// the outer sequence an IAC has displaced. Both are fixed-size and
// embedded — no heap allocation per keystroke.
type inProgress struct {
	state seqState
	// len counts bytes accumulated so far. It may exceed KMAX; anything
	// beyond raw[:KMAX] was dropped and truncation is reported at
	// emission time by comparing len against KMAX.
	len int
	raw [KMAX]byte
}

// reset returns d to its zero value, matching the all-zero initial state
// every field of a Stream is valid in.
func (d *inProgress) reset() {
	*d = inProgress{}
}

// addRaw appends b to the descriptor's accumulated bytes. The write is
// always counted, but only actually stored while there is room — callers
// detect overflow at emission time via len > KMAX, never here.
func (d *inProgress) addRaw(b byte) {
	if d.len < KMAX {
		d.raw[d.len] = b
	}
	d.len++
}

// overflowed reports whether more bytes were accumulated than KMAX can
// hold.
func (d *inProgress) overflowed() bool {
	return d.len > KMAX
}

// payload returns the stored bytes, clamped to KMAX regardless of the
// logical len.
func (d *inProgress) payload() []byte {
	n := d.len
	if n > KMAX {
		n = KMAX
	}
	return d.raw[:n]
}
