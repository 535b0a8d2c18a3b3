package io

import (
	"bufio"
	"io"
	"strings"
)

// Terminal provides line-oriented console I/O.
// It wraps an io.Reader for input and io.Writer for the output and
// diagnostic streams. Nil writers discard their output.
type Terminal struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	reader *bufio.Reader
	source io.Reader
}

var _ Console = (*Terminal)(nil)

// Rewind drops any buffered input.
func (tc *Terminal) Rewind() {
	tc.reader = nil
	tc.source = nil
}

// ReadLine reads a single line from the input, stripping the trailing
// newline (and carriage return, if present).
func (tc *Terminal) ReadLine() (line string, err error) {
	if tc.Stdin == nil {
		err = ErrNoInput
		return
	}

	if tc.reader == nil || tc.source != tc.Stdin {
		tc.reader = bufio.NewReader(tc.Stdin)
		tc.source = tc.Stdin
	}

	line, err = tc.reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return
}

// Output returns the standard output stream.
func (tc *Terminal) Output() io.Writer {
	if tc.Stdout == nil {
		return io.Discard
	}
	return tc.Stdout
}

// Diagnostic returns the diagnostic stream.
func (tc *Terminal) Diagnostic() io.Writer {
	if tc.Stderr == nil {
		return io.Discard
	}
	return tc.Stderr
}
