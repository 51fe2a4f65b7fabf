package io

import (
	"fmt"
	"io"
)

// Tape writes each sent value as a decimal number on its own line.
// Writes are synchronous, so values appear in the order sent.
type Tape struct {
	Output io.Writer

	Sent int // Values sent since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; it only resets the counter.
func (tc *Tape) Rewind() {
	tc.Sent = 0
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Sent++
	return
}
