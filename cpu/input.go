package cpu

import (
	"strconv"
	"strings"
)

// ParseInput converts a line of user input to a stack word.
// Input is decimal, or hexadecimal with a 0x prefix, or binary with a
// 0b prefix. Unparsable input is 0.
func ParseInput(text string) (value uint32) {
	s := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err == nil {
			value = uint32(v)
		}
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		v, err := strconv.ParseUint(s[2:], 2, 32)
		if err == nil {
			value = uint32(v)
		}
	default:
		v, err := strconv.ParseInt(s, 10, 32)
		if err == nil {
			value = uint32(int32(v))
		}
	}

	return
}

const (
	PACK_PAD  = 0x01      // Filler for unused bytes of a packed word.
	PACK_MORE = 0x01 << 24 // Set on every packed word but the first pushed.
)

// PackString packs text three bytes per word, in push order.
//
// The text is walked from its end, so the first word holds the last
// characters. Every word but the first has PACK_MORE set in its top byte,
// and a short chunk pads its missing bytes with PACK_PAD. Once pushed, the
// string reads forward from Sp, and prints with the print instruction.
func PackString(text string) (words []uint32) {
	data := []byte(text)

	for index := len(data); index > 0; {
		start := max(index-3, 0)
		chunk := data[start:index]

		var word uint32
		if len(words) != 0 {
			word = PACK_MORE
		}
		for n := range 3 {
			b := uint32(PACK_PAD)
			if n < len(chunk) {
				b = uint32(chunk[n])
			}
			word |= b << (8 * n)
		}

		words = append(words, word)
		index = start
	}

	return
}
