package keystroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	s := New(0)
	assert.True(t, s.Empty())
	s.Input([]byte("a"), nil)
	assert.False(t, s.Empty())
	s.Get()
	assert.True(t, s.Empty())
}

func TestEOFReached(t *testing.T) {
	s := New(0)
	assert.False(t, s.EOFReached())
	s.Input([]byte("a"), nil)
	s.Input(nil, nil)
	assert.False(t, s.EOFReached(), "FIFO still has the queued char")
	s.Get()
	assert.True(t, s.EOFReached())
}

func TestSetEOFDiscardsPendingAndPartial(t *testing.T) {
	s := New(0)
	s.Input([]byte("a"), nil)
	s.Input([]byte{ESC}, nil)
	assert.False(t, s.Empty())
	assert.Equal(t, stateEsc, s.in.state)

	s.SetEOF()

	assert.True(t, s.Empty(), "SetEOF must discard queued events, not flush them")
	assert.True(t, s.EOFReached())
	assert.Equal(t, stateIdle, s.in.state)
	assert.False(t, s.iacPending)

	ev, ok := s.Get()
	assert.False(t, ok)
	assert.True(t, ev.IsNull())
	assert.Equal(t, uint32(EOF), ev.Value)
}
