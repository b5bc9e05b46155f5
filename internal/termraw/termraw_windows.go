//go:build windows
// +build windows

package termraw

import "errors"

// Open is not yet implemented on Windows; the console API raw-mode path
// (SetConsoleMode without ENABLE_LINE_INPUT/ENABLE_ECHO_INPUT) needs a
// separate read loop since console input does not behave like a byte
// stream the way a Unix tty does.
func Open() (*Terminal, func() error, error) {
	return nil, nil, errors.New("termraw: windows backend not yet implemented")
}
