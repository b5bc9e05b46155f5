package keystroke

// Empty reports whether the FIFO has no complete events waiting. A
// partial in-progress sequence does not count as non-empty.
func (s *Stream) Empty() bool {
	return s.fifo.empty()
}

// EOFReached reports whether EOF has been signaled and the FIFO has been
// fully drained.
func (s *Stream) EOFReached() bool {
	return s.eofMet && s.fifo.empty()
}

// SetEOF forces the stream into the EOF state immediately, discarding the
// FIFO's contents and any partial sequence in progress. Unlike signaling
// EOF through Input, this does not flush a partial sequence as a Broken
// event first — it is a hard reset, not a graceful close.
func (s *Stream) SetEOF() {
	s.fifo.reset()
	s.eofMet = true
	s.stealThis = false
	s.stealSlot = nil
	s.iacPending = false
	s.in.reset()
	s.pushedIn.reset()
}
