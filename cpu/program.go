package cpu

import (
	"encoding/binary"
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo    int      // Source line number.
	Ip        int      // Byte address of the first instruction.
	Words     []string // Source words.
	Codes     []Code   // Generated instructions.
	LinkLabel string   // Label to link into the last instruction's offset.
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the listing entry for an instruction address.
func (prog *Program) Debug(pc uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		start := uint32(op.Ip)
		end := start + uint32(len(op.Codes)*WORD_SIZE)
		if pc >= start && pc < end {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(pc-start) / WORD_SIZE,
			}
			break
		}
	}

	return
}

// Codes iterates over every instruction and its address.
func (prog *Program) Codes() iter.Seq2[uint32, Code] {
	return func(yield func(pc uint32, code Code) bool) {
		for _, op := range prog.Opcodes {
			pc := uint32(op.Ip)
			for n, code := range op.Codes {
				if !yield(pc+uint32(n*WORD_SIZE), code) {
					return
				}
			}
		}
	}
}

// Body returns the program body, as loaded into memory.
func (prog *Program) Body() (body []byte) {
	for pc, code := range prog.Codes() {
		if need := int(pc) + WORD_SIZE; need > len(body) {
			body = append(body, make([]byte, need-len(body))...)
		}
		binary.LittleEndian.PutUint32(body[pc:], uint32(code))
	}

	return
}
