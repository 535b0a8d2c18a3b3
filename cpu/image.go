package cpu

import (
	"errors"
	"io"
)

// MAGIC is the marker at the start of every program image.
var MAGIC = [4]byte{0xDE, 0xAD, 0xBE, 0xEF}

// ReadImage validates a program image and returns its body.
func ReadImage(input io.Reader) (body []byte, err error) {
	var magic [len(MAGIC)]byte

	_, err = io.ReadFull(input, magic[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrInvalidFormat
		return
	}
	if err != nil {
		err = errors.Join(ErrImageRead, err)
		return
	}

	if magic != MAGIC {
		err = ErrInvalidFormat
		return
	}

	// Read one byte more than will fit, to detect oversized programs.
	body, err = io.ReadAll(io.LimitReader(input, MEMORY_SIZE+1))
	if err != nil {
		body = nil
		err = errors.Join(ErrImageRead, err)
		return
	}

	if len(body) > MEMORY_SIZE {
		body = nil
		err = ErrProgramTooLarge
		return
	}

	return
}

// WriteImage writes a program body, preceded by the magic marker.
func WriteImage(output io.Writer, body []byte) (err error) {
	if len(body) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	_, err = output.Write(MAGIC[:])
	if err != nil {
		return
	}

	_, err = output.Write(body)
	return
}
