package keystroke

// emitChar handles a single data byte. A char event is never broken or
// truncated, so it is always steal-eligible.
func (s *Stream) emitChar(u byte) {
	if s.trySteal(EventChar, uint32(u), []byte{u}) {
		return
	}
	if u < 0x80 {
		// Simple form: the byte itself is the complete record.
		s.fifo.writeByte(u)
		return
	}
	s.push(EventChar, false, false, []byte{u})
}

// emitEscByte handles a well-formed short ESC sequence (ESC + one byte).
func (s *Stream) emitEscByte(u byte) {
	if s.trySteal(EventEsc, uint32(u), []byte{u}) {
		return
	}
	s.push(EventEsc, false, false, []byte{u})
}

// emitEscBroken handles EOF arriving immediately after a lone ESC.
func (s *Stream) emitEscBroken() {
	s.push(EventEsc, true, false, nil)
}

// emitIACShort handles a single-byte Telnet command (one with no option
// argument, value < SB) or, when broken, the zero-length event produced
// by EOF arriving right after an unresolved IAC. IAC events are never
// stolen.
func (s *Stream) emitIACShort(broken bool, arg byte) {
	if broken {
		s.push(EventIAC, true, false, nil)
		return
	}
	s.push(EventIAC, false, false, []byte{arg})
}

// emitIACLong finalizes the in-progress IAC command held in s.in — a
// 2-byte WILL/WONT/DO/DONT command or a complete/broken SB ... SE
// subnegotiation — then restores the sequence pushedIn had displaced.
// Truncation is measured against s.in directly, since subnegotiation
// payloads accumulate the same bounded way CSI parameters do.
func (s *Stream) emitIACLong(broken bool) {
	truncated := s.in.overflowed()
	s.push(EventIAC, broken, truncated, s.in.payload())
	s.in = s.pushedIn
	s.pushedIn.reset()
}

// emitCSI finalizes the in-progress CSI sequence held in s.in. term is the
// terminator byte normally, or 0 to signal a broken sequence (a byte
// outside the legal CSI ranges, or EOF) with no real terminator to report.
func (s *Stream) emitCSI(term byte) {
	s.in.addRaw(term)
	broken := term == 0
	truncated := s.in.overflowed()
	payload := append([]byte(nil), s.in.payload()...)
	if truncated {
		// The terminator didn't fit; sacrifice the last stored byte so
		// the terminator is always recoverable on decode.
		payload[len(payload)-1] = term
	}
	if !broken && !truncated && s.tryStealCSI(term) {
		s.in.reset()
		return
	}
	s.push(EventCSI, broken, truncated, payload)
	s.in.reset()
}

// trySteal attempts to divert a well-formed char or esc event directly
// into the caller's steal slot instead of the FIFO. Returns true iff it
// did.
func (s *Stream) trySteal(t EventType, value uint32, payload []byte) bool {
	if !s.stealThis || s.stealSlot == nil {
		return false
	}
	ev := Event{Type: t, Value: value, Len: len(payload)}
	copy(ev.Buf[:], payload)
	s.deliverSteal(ev)
	return true
}

// tryStealCSI attempts to divert a well-formed CSI event. Per spec.md's
// documented source quirk (see DESIGN.md), the stolen event's
// Type is Esc, not CSI: Value is the terminator, Len/Buf carry the
// parameter bytes with a trailing NUL, mirroring how a stolen short ESC
// sequence looks to the caller.
func (s *Stream) tryStealCSI(term byte) bool {
	if !s.stealThis || s.stealSlot == nil {
		return false
	}
	params := s.in.raw[:s.in.len-1]
	ev := Event{Type: EventEsc, Value: uint32(term), Len: len(params)}
	copy(ev.Buf[:], params)
	s.deliverSteal(ev)
	return true
}

// deliverSteal writes ev into the caller's slot and disarms stealing for
// the remainder of this Input call, so subsequent bytes in the same chunk
// enqueue normally.
func (s *Stream) deliverSteal(ev Event) {
	*s.stealSlot = ev
	s.stealSlot = nil
	s.stealThis = false
}
