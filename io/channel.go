// Package io provides the console channel for the vmma virtual machine.
// The console carries the line-oriented standard input used by the input
// instructions, the standard output used by the print family, and the
// diagnostic stream used by the debug instruction.
package io

import (
	"io"
)

// Console defines the interface for the terminal attached to the machine.
type Console interface {
	// ReadLine reads the next line of input, without its line terminator.
	// At end of input, the partial line (possibly empty) is returned with io.EOF.
	ReadLine() (line string, err error)
	// Output is the standard output stream.
	Output() io.Writer
	// Diagnostic is the diagnostic (standard error) stream.
	Diagnostic() io.Writer
}
