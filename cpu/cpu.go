package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strings"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"WORD_SIZE":   fmt.Sprintf("%v", WORD_SIZE),
}

// Cpu is the simulation context for the machine. Each Cpu owns its memory,
// program counter and stack pointer; nothing is shared between instances.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Program and stack memory.
	Pc     uint32 // Address of the next instruction.
	Sp     uint32 // Address of the top of stack word.

	Console Console // Terminal for the input and print instructions.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a console.
func NewCpu(console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Console: console,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %04x\n   sp: %04x\n", cpu.Pc, cpu.Sp)
	if value, err := cpu.Peek(0); err == nil {
		text += fmt.Sprintf("stack: %04X_%04X\n", value>>16, value&0xffff)
	} else {
		text += "stack: ----_----\n"
	}

	return
}

// Reset the CPU state.
// - Zeros memory.
// - Sets Pc to the start of memory, and Sp to the empty stack.
// - Zeros statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	cpu.Pc = 0
	cpu.Sp = MEMORY_SIZE
	cpu.Ticks = 0
}

// Load resets the CPU, and copies a program body to the start of memory.
func (cpu *Cpu) Load(body []byte) (err error) {
	if len(body) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	cpu.Reset()
	copy(cpu.Memory[:], body)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(body))
	}

	return
}

// FetchCode fetches the instruction at Pc, and advances Pc past it.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	word, ok := cpu.Memory.Word(int(cpu.Pc))
	if !ok {
		err = ErrPcRange
		return
	}

	code = Code(word)
	cpu.Pc += WORD_SIZE

	return
}

// Tick executes a single instruction cycle.
//
// A nil error continues execution. An ErrExit is an explicit exit request.
// Any other error is an *ErrHalt, and the machine must not be ticked again.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc

	code, err := cpu.FetchCode()
	if err == nil {
		if cpu.Verbose {
			log.Printf("%04x: %v", pc, code)
		}
		err = cpu.Execute(code)
	}

	if err != nil {
		var exit ErrExit
		if !errors.As(err, &exit) {
			err = &ErrHalt{Pc: pc, Code: code, Err: err}
		}
		return
	}

	cpu.Ticks++

	return
}

// jump transfers control to base+offset.
func (cpu *Cpu) jump(base int, offset int32) (err error) {
	target := base + int(offset)
	if target < 0 || target >= MEMORY_SIZE {
		err = ErrJumpRange(target)
		return
	}

	cpu.Pc = uint32(target)

	return
}

// Execute executes a single decoded instruction. Pc must already be
// advanced past the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	// Address of the instruction itself, the base for pc-relative offsets.
	base := int(cpu.Pc) - WORD_SIZE

	switch code.Class() {
	case OP_MISC:
		err = cpu.doMisc(code)
	case OP_POP:
		count := code.Count()
		if count == 0 {
			count = WORD_SIZE
		}
		cpu.Sp = min(cpu.Sp+count, MEMORY_SIZE)
	case OP_ALU:
		op := code.AluDecode()
		if !op.valid() {
			break
		}
		var lhs, rhs uint32
		rhs, err = cpu.Pop()
		if err != nil {
			return
		}
		lhs, err = cpu.Pop()
		if err != nil {
			return
		}
		err = cpu.Push(doAlu(op, lhs, rhs))
	case OP_UNARY:
		var value uint32
		switch op := code.UnaryDecode(); op {
		case UNARY_OP_NEG:
			value, err = cpu.Pop()
			if err == nil {
				err = cpu.Push(uint32(-int32(value)))
			}
		case UNARY_OP_NOT:
			value, err = cpu.Pop()
			if err == nil {
				err = cpu.Push(^value)
			}
		}
	case OP_PRINT:
		err = cpu.printString(int(cpu.Sp) + int(code.Offset()))
	case OP_CALL:
		err = cpu.Push(cpu.Pc)
		if err != nil {
			return
		}
		err = cpu.jump(base, code.Offset())
	case OP_RETURN:
		cpu.Sp = min(cpu.Sp+code.Count(), MEMORY_SIZE-WORD_SIZE)
		var ret uint32
		ret, err = cpu.Pop()
		if err != nil {
			return
		}
		if ret >= MEMORY_SIZE {
			err = ErrJumpRange(ret)
			return
		}
		cpu.Pc = ret
	case OP_GOTO:
		err = cpu.jump(base, code.Offset())
	case OP_IF:
		cond, offset := code.IfDecode()
		var right uint32
		right, err = cpu.Peek(0)
		if err != nil {
			return
		}
		// Missing left operand compares as zero.
		left, _ := cpu.Peek(WORD_SIZE)
		if cond.Test(left, right) {
			err = cpu.jump(base, offset)
		}
	case OP_IFZ:
		cond, offset := code.IfzDecode()
		var value uint32
		value, err = cpu.Peek(0)
		if err != nil {
			return
		}
		if cond.Test(value) {
			err = cpu.jump(base, offset)
		}
	case OP_DUP:
		value, ok := cpu.Memory.Word(int(cpu.Sp) + int(code.Offset()))
		if !ok {
			err = ErrAddressRange
			return
		}
		err = cpu.Push(value)
	case OP_PRINTF:
		format, offset := code.PrintfDecode()
		value, ok := cpu.Memory.Word(int(cpu.Sp) + int(offset))
		if !ok {
			err = ErrAddressRange
			return
		}
		_, err = io.WriteString(cpu.Console.Output(), format.Format(value)+"\n")
	case OP_DUMP:
		err = cpu.dump()
	case OP_PUSH:
		err = cpu.Push(code.Count())
	default:
		// Unassigned classes are ignored.
	}

	return
}

// doMisc executes a miscellaneous class instruction.
func (cpu *Cpu) doMisc(code Code) (err error) {
	switch code.MiscDecode() {
	case MISC_OP_EXIT:
		err = ErrExit(code.ExitDecode())
	case MISC_OP_SWAP:
		from, to := code.SwapDecode()
		a := int(cpu.Sp) + int(from)
		b := int(cpu.Sp) + int(to)
		va, ok_a := cpu.Memory.Word(a)
		vb, ok_b := cpu.Memory.Word(b)
		if ok_a && ok_b {
			cpu.Memory.SetWord(a, vb)
			cpu.Memory.SetWord(b, va)
		}
	case MISC_OP_INPUT:
		var line string
		_, err = io.WriteString(cpu.Console.Output(), "> ")
		if err != nil {
			return
		}
		line, err = cpu.readLine()
		if err != nil {
			return
		}
		err = cpu.Push(ParseInput(line))
	case MISC_OP_SINPUT:
		var line string
		line, err = cpu.readLine()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if limit := int(code.Length()); len(line) > limit {
			line = line[:limit]
		}
		for _, word := range PackString(line) {
			err = cpu.Push(word)
			if err != nil {
				return
			}
		}
	case MISC_OP_DEBUG:
		_, err = fmt.Fprintf(cpu.Console.Diagnostic(), "DEBUG Value=%d, PC=%d, SP=%d\n", code.Length(), cpu.Pc, cpu.Sp)
	default:
		err = ErrMiscOp
	}

	return
}

// readLine reads a line from the console. End of input is an empty line.
func (cpu *Cpu) readLine() (line string, err error) {
	line, err = cpu.Console.ReadLine()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		err = errors.Join(ErrInput, err)
	}
	return
}

// printString prints the packed string at addr, a word at a time, until a
// zero byte or the end of memory. PACK_PAD bytes print nothing.
func (cpu *Cpu) printString(addr int) (err error) {
	var text strings.Builder

	for ; cpu.Memory.Valid(addr); addr += WORD_SIZE {
		word, _ := cpu.Memory.Word(addr)
		done := false
		for n := range WORD_SIZE {
			b := byte(word >> (8 * n))
			if b == 0x00 {
				done = true
				break
			}
			if b != PACK_PAD {
				text.WriteRune(rune(b))
			}
		}
		if done {
			break
		}
	}

	_, err = io.WriteString(cpu.Console.Output(), text.String())
	return
}

// dump prints every stack word, as its offset from Sp and its value.
func (cpu *Cpu) dump() (err error) {
	out := cpu.Console.Output()
	for addr := int(cpu.Sp); cpu.Memory.Valid(addr); addr += WORD_SIZE {
		value, _ := cpu.Memory.Word(addr)
		_, err = fmt.Fprintf(out, "%04x: %08x\n", addr-int(cpu.Sp), value)
		if err != nil {
			return
		}
	}
	return
}

// valid returns true for the assigned arithmetic operations.
func (op CodeAluOp) valid() bool {
	return (op >= ALU_OP_ADD && op <= ALU_OP_SHR) || op == ALU_OP_SAR
}

// doAlu performs the requested ALU action, and returns the output value.
// All arithmetic wraps; division and modulo by zero are zero.
func doAlu(op CodeAluOp, lhs_u, rhs_u uint32) (output uint32) {
	lhs := int32(lhs_u)
	rhs := int32(rhs_u)

	switch op {
	case ALU_OP_ADD:
		output = uint32(lhs + rhs)
	case ALU_OP_SUB:
		output = uint32(lhs - rhs)
	case ALU_OP_MUL:
		output = uint32(lhs * rhs)
	case ALU_OP_DIV:
		if rhs != 0 {
			output = uint32(lhs / rhs)
		}
	case ALU_OP_MOD:
		if rhs != 0 {
			output = uint32(lhs % rhs)
		}
	case ALU_OP_AND:
		output = lhs_u & rhs_u
	case ALU_OP_OR:
		output = lhs_u | rhs_u
	case ALU_OP_XOR:
		output = lhs_u ^ rhs_u
	case ALU_OP_SHL:
		output = lhs_u << (rhs_u & 0x1f)
	case ALU_OP_SHR:
		output = lhs_u >> (rhs_u & 0x1f)
	case ALU_OP_SAR:
		output = uint32(lhs >> (rhs_u & 0x1f))
	}

	return
}

// Test evaluates the condition; left is the deeper stack word.
// Undefined conditions are false.
func (cond CodeCond) Test(left, right uint32) bool {
	switch cond {
	case COND_EQ:
		return left == right
	case COND_NE:
		return left != right
	case COND_LT:
		return int32(left) < int32(right)
	case COND_GT:
		return int32(left) > int32(right)
	case COND_LE:
		return int32(left) <= int32(right)
	case COND_GE:
		return int32(left) >= int32(right)
	}
	return false
}

// Test evaluates the condition against the top of stack.
func (cond CodeZCond) Test(value uint32) bool {
	switch cond {
	case ZCOND_EZ:
		return value == 0
	case ZCOND_NZ:
		return value != 0
	case ZCOND_MI:
		return int32(value) < 0
	case ZCOND_PL:
		return int32(value) >= 0
	}
	return false
}

// Format formats a word per the number base.
func (format CodeFormat) Format(value uint32) (text string) {
	switch format {
	case FORMAT_DEC:
		text = fmt.Sprintf("%d", int32(value))
	case FORMAT_HEX:
		text = fmt.Sprintf("0x%X", value)
	case FORMAT_BIN:
		text = fmt.Sprintf("0b%b", value)
	case FORMAT_OCT:
		text = fmt.Sprintf("0o%o", value)
	}
	return
}
