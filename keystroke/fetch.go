package keystroke

import "fmt"

// Get pops the next event from the FIFO. If the FIFO is empty it returns
// (null event, false); the null event's Value distinguishes NotEOF ("no
// data yet") from EOF ("stream fully drained"). Otherwise it returns
// (event, true).
func (s *Stream) Get() (Event, bool) {
	b, ok := s.fifo.readByte()
	if !ok {
		nv := NotEOF
		if s.eofMet {
			nv = EOF
		}
		return Event{Type: EventNull, Value: uint32(nv)}, false
	}

	if b&compoundBit == 0 {
		ev := Event{Type: EventChar, Value: uint32(b), Len: 1}
		ev.Buf[0] = b
		return ev, true
	}

	return s.decodeCompound(b), true
}

// decodeCompound reconstructs an Event from a compound record whose
// header byte has already been read.
func (s *Stream) decodeCompound(header byte) Event {
	t, ok := tagEvent[header&typeMask]
	if !ok {
		panic(newInvariantError(fmt.Sprintf("fifo record with unrecognized type tag %d", header&typeMask)))
	}

	flags := Flags(0)
	if header&brokenBit != 0 {
		flags |= FlagBroken
	}
	if header&truncatedBit != 0 {
		flags |= FlagTruncated
	}

	lenByte, ok := s.fifo.readByte()
	if !ok {
		panic(newInvariantError("fifo underflow reading record length"))
	}
	n := int(lenByte)

	payload := make([]byte, n)
	for i := 0; i < n; i++ {
		b, ok := s.fifo.readByte()
		if !ok {
			panic(newInvariantError("fifo underflow reading record payload"))
		}
		payload[i] = b
	}

	ev := Event{Type: t, Flags: flags, Len: n}
	copy(ev.Buf[:], payload)

	switch t {
	case EventChar:
		if !flags.Broken() && !flags.Truncated() {
			ev.Value = decodeBigEndian(payload)
		}
	case EventEsc:
		if n >= 1 {
			ev.Value = uint32(payload[0])
		}
	case EventCSI:
		if n > 0 {
			ev.Value = uint32(payload[n-1])
			ev.Len = n - 1
			ev.Buf[ev.Len] = 0
		}
	case EventIAC:
		if n > 0 {
			ev.Value = uint32(payload[0])
		}
	}
	return ev
}

// decodeBigEndian reassembles a scalar from its big-endian byte
// representation. A char payload is always a single byte in this byte-
// transparent parser, but the reassembly is written generically per
// spec.md's put-char description.
func decodeBigEndian(b []byte) uint32 {
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v
}
