package io

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_ReadLine(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{Stdin: strings.NewReader("12\r\n0x1f\nlast")}

	line, err := tc.ReadLine()
	assert.NoError(err)
	assert.Equal("12", line)

	line, err = tc.ReadLine()
	assert.NoError(err)
	assert.Equal("0x1f", line)

	line, err = tc.ReadLine()
	assert.ErrorIs(err, io.EOF)
	assert.Equal("last", line)

	line, err = tc.ReadLine()
	assert.ErrorIs(err, io.EOF)
	assert.Equal("", line)
}

func TestTerminal_NoInput(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{}
	_, err := tc.ReadLine()
	assert.ErrorIs(err, ErrNoInput)
}

func TestTerminal_SwapInput(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{Stdin: strings.NewReader("a\nb\n")}
	line, err := tc.ReadLine()
	assert.NoError(err)
	assert.Equal("a", line)

	tc.Stdin = strings.NewReader("c\n")
	line, err = tc.ReadLine()
	assert.NoError(err)
	assert.Equal("c", line)

	tc.Rewind()
	_, err = tc.ReadLine()
	assert.ErrorIs(err, io.EOF)
}

func TestTerminal_Writers(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{}
	assert.Equal(io.Discard, tc.Output())
	assert.Equal(io.Discard, tc.Diagnostic())

	out := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	tc.Stdout = out
	tc.Stderr = diag

	io.WriteString(tc.Output(), "hello")
	io.WriteString(tc.Diagnostic(), "debug")
	assert.Equal("hello", out.String())
	assert.Equal("debug", diag.String())
}
