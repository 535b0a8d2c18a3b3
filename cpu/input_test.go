package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text  string
		value uint32
	}{
		{"123", 123},
		{"  42\n", 42},
		{"-1", 0xffff_ffff},
		{"0x1F", 0x1f},
		{"0XdeadBEEF", 0xdead_beef},
		{"0b101", 5},
		{"0B11", 3},
		{"0xzz", 0},
		{"0b2", 0},
		{"hello", 0},
		{"", 0},
		{"2147483648", 0},
		{"-2147483648", 0x8000_0000},
	}

	for _, entry := range table {
		assert.Equal(entry.value, ParseInput(entry.text), entry.text)
	}
}

func TestPackString(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(PackString(""))

	assert.Equal([]uint32{0x0001_0141}, PackString("A"))
	assert.Equal([]uint32{0x0043_4241}, PackString("ABC"))

	// "Hello" => "llo" first (no continuation), then "He" padded.
	assert.Equal([]uint32{
		0x006f_6c6c,
		0x0101_6548,
	}, PackString("Hello"))

	assert.Equal([]uint32{
		0x0066_6564,
		0x0163_6261,
	}, PackString("abcdef"))
}
