package cpu

import (
	"encoding/binary"
)

const (
	MEMORY_SIZE = 4096 // Bytes of machine memory.
	WORD_SIZE   = 4    // Bytes per instruction or stack word.
)

// Memory is the machine memory, holding both the program and the stack.
type Memory [MEMORY_SIZE]byte

// Valid returns true if a whole word at addr lies within memory.
func (mem *Memory) Valid(addr int) bool {
	return addr >= 0 && addr+WORD_SIZE <= MEMORY_SIZE
}

// Word reads the little-endian word at addr.
func (mem *Memory) Word(addr int) (value uint32, ok bool) {
	if !mem.Valid(addr) {
		return
	}

	return binary.LittleEndian.Uint32(mem[addr:]), true
}

// SetWord writes a little-endian word at addr.
func (mem *Memory) SetWord(addr int, value uint32) (ok bool) {
	if !mem.Valid(addr) {
		return
	}

	binary.LittleEndian.PutUint32(mem[addr:], value)
	return true
}
