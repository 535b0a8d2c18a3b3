package cpu

// The stack lives at the top of Memory and grows down; Sp == MEMORY_SIZE
// is the empty stack.

// Push decrements Sp by a word and writes value there.
func (cpu *Cpu) Push(value uint32) (err error) {
	if cpu.Sp < WORD_SIZE {
		err = ErrStackFull
		return
	}

	cpu.Sp -= WORD_SIZE
	cpu.Memory.SetWord(int(cpu.Sp), value)

	return
}

// Pop reads the word at Sp and increments Sp by a word.
func (cpu *Cpu) Pop() (value uint32, err error) {
	value, err = cpu.Peek(0)
	if err == nil {
		cpu.Sp += WORD_SIZE
	}
	return
}

// Peek reads the word at Sp+offset without moving Sp.
func (cpu *Cpu) Peek(offset int) (value uint32, err error) {
	value, ok := cpu.Memory.Word(int(cpu.Sp) + offset)
	if !ok {
		err = ErrStackEmpty
	}
	return
}

// Empty returns true if no whole word remains on the stack.
func (cpu *Cpu) Empty() bool {
	return int(cpu.Sp)+WORD_SIZE > MEMORY_SIZE
}

// Full returns true if another word cannot be pushed.
func (cpu *Cpu) Full() bool {
	return cpu.Sp < WORD_SIZE
}

// Depth returns the number of whole words on the stack.
func (cpu *Cpu) Depth() int {
	if int(cpu.Sp) >= MEMORY_SIZE {
		return 0
	}
	return (MEMORY_SIZE - int(cpu.Sp)) / WORD_SIZE
}
