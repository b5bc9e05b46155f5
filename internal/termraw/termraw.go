// Package termraw puts a local terminal into raw mode and returns the bytes
// it reads, untranslated. It has no notion of keystrokes itself and does
// not feed a keystroke.Stream; it only owns the platform-specific raw-mode
// toggle and a single-read Read method whose bytes the caller passes on.
package termraw

import (
	"io"
	"sync"
)

// readBufferSize mirrors the chunk size the terminal backend this package
// is adapted from used per read; large enough to absorb a burst of pasted
// input without forcing multiple syscalls.
const readBufferSize = 256

var readBufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, readBufferSize)
		return &b
	},
}

// Terminal is a raw-mode-controlled local terminal backed by a file
// descriptor, typically os.Stdin.
type Terminal struct {
	fd          int
	reader      io.Reader
	initialized bool
}

// Read performs one blocking read from the terminal and returns the bytes
// received. It returns io.EOF whenever a read yields no bytes. The returned
// slice is a fresh copy owned by the caller.
func (t *Terminal) Read() ([]byte, error) {
	bufPtr := readBufferPool.Get().(*[]byte)
	defer readBufferPool.Put(bufPtr)
	buf := *bufPtr

	n, err := t.reader.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}

	out := make([]byte, n)
	copy(out, buf[:n])
	return out, nil
}
