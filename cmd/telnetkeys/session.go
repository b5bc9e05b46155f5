package main

import (
	"bufio"
	"fmt"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vtyshell/keystroke"
)

// Telnet option-negotiation constants this listener sends proactively.
// These mirror the handful every telnet-serving repo in this space opens
// a session with: character-at-a-time input with local echo
// suppressed, since the client's raw keystrokes are exactly what this
// program wants to see.
const (
	optEcho     = 1
	optSGA      = 3
	optLinemode = 34
)

// session wires one accepted Telnet connection to its own keystroke.Stream.
// It negotiates options, then forwards raw bytes read off the socket
// straight into the stream without stripping IAC itself — the stream is
// the one and only place IAC is interpreted.
type session struct {
	id   string
	conn net.Conn
	r    *bufio.Reader
	ks   *keystroke.Stream
}

func newSession(conn net.Conn, csiByte byte) *session {
	return &session{
		id:   uuid.NewString(),
		conn: conn,
		r:    bufio.NewReader(conn),
		ks:   keystroke.New(csiByte),
	}
}

// negotiate sends the options this listener wants and does not wait for
// replies: a client's WILL/WONT/DO/DONT responses, along with anything
// else it sends, arrive as ordinary bytes on the same connection and are
// resolved by the keystroke.Stream like any other IAC traffic.
func (s *session) negotiate() error {
	out := []byte{
		keystroke.IAC, keystroke.WILL, optEcho,
		keystroke.IAC, keystroke.WILL, optSGA,
		keystroke.IAC, keystroke.DO, optSGA,
		keystroke.IAC, keystroke.DONT, optLinemode,
	}
	if _, err := s.conn.Write(out); err != nil {
		return fmt.Errorf("sending negotiation: %w", err)
	}
	return nil
}

// pump reads from the connection until it closes or errors, feeding every
// chunk straight into the keystroke stream and draining decoded events as
// they complete.
func (s *session) pump(sugar *zap.SugaredLogger) error {
	buf := make([]byte, 512)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			s.ks.Input(buf[:n], nil)
			s.drain(sugar)
		}
		if err != nil {
			s.ks.Input(nil, nil)
			s.drain(sugar)
			return err
		}
	}
}

func (s *session) drain(sugar *zap.SugaredLogger) {
	for {
		ev, ok := s.ks.Get()
		if !ok {
			return
		}
		logEvent(sugar, s.id, ev)
	}
}
