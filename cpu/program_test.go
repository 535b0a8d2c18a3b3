package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"push", "0x10"}, Codes: []Code{0xf000_0010}},
			{LineNo: 2, Ip: 4, Words: []string{"push", "0x20"}, Codes: []Code{0xf000_0020}},
			{LineNo: 3, Ip: 8, Words: []string{"add"}, Codes: []Code{0x2000_0000}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)

	dbg = prog.Debug(9)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(12)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_MultipleCodesPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"MACRO"}, Codes: []Code{0xf000_0001, 0xf000_0002, 0x2000_0000}},
		},
	}

	assert.Equal(0, prog.Debug(0).Index)
	assert.Equal(1, prog.Debug(4).Index)
	assert.Equal(2, prog.Debug(8).Index)
	assert.Nil(prog.Debug(12).Opcode)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Codes: []Code{0xf000_0001, 0xf000_0002}},
			{LineNo: 2, Ip: 8, Codes: []Code{0x0000_0000}},
		},
	}

	var pcs []uint32
	var codes []Code
	for pc, code := range prog.Codes() {
		pcs = append(pcs, pc)
		codes = append(codes, code)
	}
	assert.Equal([]uint32{0, 4, 8}, pcs)
	assert.Equal([]Code{0xf000_0001, 0xf000_0002, 0x0000_0000}, codes)

	assert.Equal([]byte{
		0x01, 0x00, 0x00, 0xf0,
		0x02, 0x00, 0x00, 0xf0,
		0x00, 0x00, 0x00, 0x00,
	}, prog.Body())

	assert.Empty((&Program{}).Body())
}
