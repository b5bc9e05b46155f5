// Package keystroke implements an incremental, byte-driven parser for
// interactive terminal input.
//
// Raw bytes arrive in arbitrary-sized chunks from a byte source that may be
// tunneled through a Telnet-style transport — a socket, a pty, a test
// harness, anything implementing io.Reader on the caller's side. The
// package does not read from that source itself; callers push chunks in
// with Stream.Input and pop decoded events out with Stream.Get.
//
// A Stream resolves pushed bytes into a sequence of Events: ordinary
// characters, single-byte ESC sequences, multi-byte CSI (ANSI control)
// sequences, and Telnet IAC commands. Completed events are buffered in an
// internal byte FIFO between Input and Get calls, using a compact
// self-describing encoding (see fifo.go) so a single stream can carry both
// plain bytes and long escape/IAC sequences without an out-of-band index.
//
// # Basic usage
//
//	s := keystroke.New(0) // no distinct CSI byte; ESC [ starts CSI
//	for {
//	    n, err := conn.Read(buf)
//	    if err != nil {
//	        s.Input(nil, nil) // signal EOF
//	    } else {
//	        s.Input(buf[:n], nil)
//	    }
//	    for {
//	        ev, ok := s.Get()
//	        if !ok {
//	            break
//	        }
//	        handle(ev)
//	    }
//	    if s.EOFReached() {
//	        break
//	    }
//	}
//
// # Stealing
//
// A caller that needs the very next well-formed keystroke diverted to it
// instead of enqueued (for single-key prompts) passes a non-nil *Event to
// Input. Only char, esc, and csi events — never broken, never truncated,
// never iac — are eligible; anything else is enqueued normally and stealing
// stays armed for the next eligible keystroke in the same call. If none
// arrives, the steal slot is set to a null event.
//
// # Concurrency
//
// A Stream is single-threaded cooperative: Input and Get must not run
// concurrently on the same Stream, and no call blocks internally. A Stream
// has no internal locking.
package keystroke
