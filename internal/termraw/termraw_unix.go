//go:build !windows
// +build !windows

package termraw

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type unixTerminal struct {
	Terminal
	originalState *unix.Termios
}

// Open puts os.Stdin into raw mode and returns a Terminal that reads from
// it. Call the returned function to restore the terminal's original state.
func Open() (*Terminal, func() error, error) {
	t := &unixTerminal{
		Terminal: Terminal{fd: int(os.Stdin.Fd()), reader: os.Stdin},
	}

	state, err := unix.IoctlGetTermios(t.fd, unix.TIOCGETA)
	if err != nil {
		return nil, nil, fmt.Errorf("termraw: get terminal state: %w", err)
	}
	t.originalState = state

	raw := *state
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.INPCK | unix.ISTRIP | unix.ICRNL
	raw.Oflag &^= unix.OPOST
	raw.Cflag &^= unix.CSIZE
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, unix.TIOCSETA, &raw); err != nil {
		return nil, nil, fmt.Errorf("termraw: set raw mode: %w", err)
	}
	t.initialized = true

	return &t.Terminal, func() error {
		if !t.initialized {
			return nil
		}
		if err := unix.IoctlSetTermios(t.fd, unix.TIOCSETA, t.originalState); err != nil {
			return fmt.Errorf("termraw: restore terminal state: %w", err)
		}
		return nil
	}, nil
}
