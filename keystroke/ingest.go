package keystroke

import "fmt"

// Input is the main ingest entry point. data is a byte chunk to consume,
// or nil to signal EOF (no further bytes will ever arrive). If steal is
// non-nil and no partial sequence is in progress when the call begins, the
// next complete, well-formed, non-IAC keystroke assembled during this call
// is written there instead of the FIFO; if a partial sequence is in
// progress, it and everything after it are enqueued normally. If the call
// completes without a stolen keystroke, steal is set to a null Event whose
// Value distinguishes NotEOF from EOF.
//
// Input never blocks and consumes all of data unconditionally; there is
// no back-pressure at this layer.
func (s *Stream) Input(data []byte, steal *Event) {
	s.stealSlot = steal
	s.stealThis = steal != nil && s.in.state == stateIdle

	switch {
	case data == nil:
		s.handleEOF()
	case !s.eofMet:
		for _, b := range data {
			s.processByte(b)
		}
	}
	// Once eofMet, further Input calls accept no more bytes (data is
	// treated as empty) but still run the steal-slot finalization below.

	if s.stealSlot != nil {
		nv := NotEOF
		if s.eofMet {
			nv = EOF
		}
		*s.stealSlot = Event{Type: EventNull, Value: uint32(nv)}
		s.stealSlot = nil
	}
}

// handleEOF runs the EOF recovery sequence: it flushes any sequence that
// was left incomplete when the byte source closed, each flushed as a
// Broken event, until the stream is back at idle.
func (s *Stream) handleEOF() {
	s.eofMet = true
	s.stealThis = false

	if s.iacPending && s.in.state == stateIdle {
		s.emitIACShort(true, 0)
		s.iacPending = false
	}

	for s.in.state != stateIdle {
		switch s.in.state {
		case stateEsc:
			s.emitEscBroken()
			s.in.reset()
		case stateCSI:
			s.emitCSI(0)
		case stateIACOption, stateIACSub:
			s.emitIACLong(true)
		default:
			panic(newInvariantError(fmt.Sprintf("EOF drain reached undefined state %s", s.in.state)))
		}
	}
}

// processByte applies the per-byte rule (spec.md §4.1) in priority order:
// Telnet escape resolution, post-IAC dispatch, then normal dispatch.
func (s *Stream) processByte(u byte) {
	if u == IAC && s.in.state != stateIACOption {
		if s.iacPending {
			// IAC IAC: the escaped byte is literal data (0xFF); fall
			// through to normal dispatch below.
			s.iacPending = false
		} else {
			s.iacPending = true
			return
		}
	} else if s.iacPending {
		s.iacPending = false
		s.dispatchPostIAC(u)
		return
	}

	s.dispatchNormal(u)
}

// dispatchPostIAC consumes u as the argument of a previously-seen,
// unresolved IAC marker.
func (s *Stream) dispatchPostIAC(u byte) {
	switch s.in.state {
	case stateIdle, stateEsc, stateCSI:
		if u < SB {
			s.emitIACShort(false, u)
			return
		}
		s.pushedIn = s.in
		s.in = inProgress{state: stateIACOption}
		s.in.addRaw(u)

	case stateIACSub:
		if u == SE {
			s.emitIACLong(false)
			return
		}
		// An unexpected command interrupted the subnegotiation: close it
		// broken, then treat the already-consumed IAC and this byte as
		// the start of a fresh command against the restored outer state.
		s.emitIACLong(true)
		s.iacPending = true
		s.processByte(u)

	default:
		panic(newInvariantError(fmt.Sprintf("post-IAC dispatch invalid in state %s", s.in.state)))
	}
}

// dispatchNormal applies the byte with no IAC pending.
func (s *Stream) dispatchNormal(u byte) {
	switch s.in.state {
	case stateIdle:
		switch {
		case u == ESC:
			s.in.state = stateEsc
		case s.csiByte != ESC && u == s.csiByte:
			s.in.len = 0
			s.in.state = stateCSI
		default:
			s.emitChar(u)
		}

	case stateEsc:
		if u == '[' {
			s.in.len = 0
			s.in.state = stateCSI
			return
		}
		s.emitEscByte(u)
		s.in.state = stateIdle

	case stateCSI:
		switch {
		case u >= csiParamLow && u <= csiParamHigh:
			s.in.addRaw(u)
		case u >= csiFinalLow && u <= csiFinalHigh:
			s.emitCSI(u)
		default:
			// Malformed: put the byte back and let it be reprocessed
			// from scratch against the now-idle state. A 0xFF here came
			// from IAC IAC, so re-arm the IAC flag to keep it literal.
			s.emitCSI(0)
			if u == IAC {
				s.iacPending = true
			}
			s.processByte(u)
		}

	case stateIACOption:
		cmd := s.in.raw[0]
		s.in.addRaw(u)
		if cmd == SB {
			s.in.state = stateIACSub
		} else {
			s.emitIACLong(false)
		}

	case stateIACSub:
		s.in.addRaw(u)

	default:
		panic(newInvariantError(fmt.Sprintf("normal dispatch reached undefined state %s", s.in.state)))
	}
}
