package cpu

import (
	"fmt"
)

// CodeClass is the instruction class, the top nibble of the instruction word.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	OP_MISC   = CodeClass(0x0) // misc
	OP_POP    = CodeClass(0x1) // pop
	OP_ALU    = CodeClass(0x2) // alu
	OP_UNARY  = CodeClass(0x3) // unary
	OP_PRINT  = CodeClass(0x4) // print
	OP_CALL   = CodeClass(0x5) // call
	OP_RETURN = CodeClass(0x6) // return
	OP_GOTO   = CodeClass(0x7) // goto
	OP_IF     = CodeClass(0x8) // if
	OP_IFZ    = CodeClass(0x9) // ifz
	OP_DUP    = CodeClass(0xb) // dup
	OP_PRINTF = CodeClass(0xd) // printf
	OP_DUMP   = CodeClass(0xe) // dump
	OP_PUSH   = CodeClass(0xf) // push
)

// CodeMiscOp is a miscellaneous operation type.
type CodeMiscOp int

//go:generate go tool stringer -linecomment -type=CodeMiscOp
const (
	MISC_OP_EXIT   = CodeMiscOp(0x0) // exit
	MISC_OP_SWAP   = CodeMiscOp(0x1) // swap
	MISC_OP_INPUT  = CodeMiscOp(0x4) // input
	MISC_OP_SINPUT = CodeMiscOp(0x5) // sinput
	MISC_OP_DEBUG  = CodeMiscOp(0xf) // debug
)

// CodeAluOp is a binary arithmetic operation type.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0x0) // add
	ALU_OP_SUB = CodeAluOp(0x1) // sub
	ALU_OP_MUL = CodeAluOp(0x2) // mul
	ALU_OP_DIV = CodeAluOp(0x3) // div
	ALU_OP_MOD = CodeAluOp(0x4) // mod
	ALU_OP_AND = CodeAluOp(0x5) // and
	ALU_OP_OR  = CodeAluOp(0x6) // or
	ALU_OP_XOR = CodeAluOp(0x7) // xor
	ALU_OP_SHL = CodeAluOp(0x8) // shl
	ALU_OP_SHR = CodeAluOp(0x9) // shr
	ALU_OP_SAR = CodeAluOp(0xb) // sar
)

// CodeUnaryOp is a unary arithmetic operation type.
type CodeUnaryOp int

//go:generate go tool stringer -linecomment -type=CodeUnaryOp
const (
	UNARY_OP_NEG = CodeUnaryOp(0x0) // neg
	UNARY_OP_NOT = CodeUnaryOp(0x1) // not
)

// CodeCond is a binary conditional jump condition.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_EQ = CodeCond(0) // eq
	COND_NE = CodeCond(1) // ne
	COND_LT = CodeCond(2) // lt
	COND_GT = CodeCond(3) // gt
	COND_LE = CodeCond(4) // le
	COND_GE = CodeCond(5) // ge
)

// CodeZCond is a unary conditional jump condition.
type CodeZCond int

//go:generate go tool stringer -linecomment -type=CodeZCond
const (
	ZCOND_EZ = CodeZCond(0) // ez
	ZCOND_NZ = CodeZCond(1) // nz
	ZCOND_MI = CodeZCond(2) // mi
	ZCOND_PL = CodeZCond(3) // pl
)

// CodeFormat is a formatted print number base.
type CodeFormat int

//go:generate go tool stringer -linecomment -type=CodeFormat
const (
	FORMAT_DEC = CodeFormat(0) // d
	FORMAT_HEX = CodeFormat(1) // x
	FORMAT_BIN = CodeFormat(2) // b
	FORMAT_OCT = CodeFormat(3) // o
)

// Instruction fields.
var (
	FieldClass     = Field{Name: "class", Offset: 28, Width: 4}
	FieldSubOp     = Field{Name: "op", Offset: 24, Width: 4}
	FieldExit      = Field{Name: "exit", Offset: 0, Width: 8, Signed: true}
	FieldSwapFrom  = Field{Name: "from", Offset: 12, Width: 12, Signed: true, Scale: 2}
	FieldSwapTo    = Field{Name: "to", Offset: 0, Width: 12, Signed: true, Scale: 2}
	FieldLength    = Field{Name: "length", Offset: 0, Width: 24}
	FieldCount     = Field{Name: "count", Offset: 0, Width: 28}
	FieldOffset    = Field{Name: "offset", Offset: 2, Width: 26, Signed: true, Scale: 2}
	FieldCond      = Field{Name: "cond", Offset: 25, Width: 3}
	FieldIfOffset  = Field{Name: "offset", Offset: 2, Width: 23, Signed: true, Scale: 2}
	FieldZCond     = Field{Name: "cond", Offset: 25, Width: 2}
	FieldIfzOffset = Field{Name: "offset", Offset: 0, Width: 24, Signed: true, Scale: 2}
	FieldFormat    = Field{Name: "format", Offset: 0, Width: 2}
	FieldImm       = Field{Name: "imm", Offset: 0, Width: 28}
)

// Code is a single 32-bit instruction word.
type Code uint32

// MakeCode creates an instruction of a class and sub-op, with empty operands.
func MakeCode(class CodeClass, op int) Code {
	return Code((uint32(class&0xf) << 28) | (uint32(op&0xf) << 24))
}

// With returns the instruction with a field replaced by value.
func (code Code) With(fd Field, value int32) (out Code, err error) {
	word, err := fd.Insert(uint32(code), value)
	if err != nil {
		return
	}

	out = Code(word)
	return
}

// MakeCodeExit creates an exit instruction.
func MakeCodeExit(status int8) Code {
	return MakeCode(OP_MISC, int(MISC_OP_EXIT)) | Code(uint8(status))
}

// MakeCodeSwap creates a swap of the words at Sp+from and Sp+to.
func MakeCodeSwap(from, to int32) (code Code, err error) {
	code, err = MakeCode(OP_MISC, int(MISC_OP_SWAP)).With(FieldSwapFrom, from)
	if err != nil {
		return
	}
	code, err = code.With(FieldSwapTo, to)
	return
}

// MakeCodeMisc creates an input, sinput or debug instruction.
func MakeCodeMisc(op CodeMiscOp, length uint32) (code Code, err error) {
	return MakeCode(OP_MISC, int(op)).With(FieldLength, int32(length))
}

// MakeCodeCount creates a pop, return or push instruction.
func MakeCodeCount(class CodeClass, count uint32) (code Code, err error) {
	if count > 0x0fff_ffff {
		err = ErrFieldRange{Field: FieldCount.Name, Value: int64(count)}
		return
	}
	return MakeCode(class, 0).With(FieldCount, int32(count))
}

// MakeCodeAlu creates a binary arithmetic instruction.
func MakeCodeAlu(op CodeAluOp) Code {
	return MakeCode(OP_ALU, int(op))
}

// MakeCodeUnary creates a unary arithmetic instruction.
func MakeCodeUnary(op CodeUnaryOp) Code {
	return MakeCode(OP_UNARY, int(op))
}

// MakeCodeOffset creates a print, call, goto or dup instruction.
func MakeCodeOffset(class CodeClass, offset int32) (code Code, err error) {
	return MakeCode(class, 0).With(FieldOffset, offset)
}

// MakeCodeIf creates a binary conditional jump.
func MakeCodeIf(cond CodeCond, offset int32) (code Code, err error) {
	code = MakeCode(OP_IF, 0) | Code((uint32(cond)&7)<<25)
	return code.With(FieldIfOffset, offset)
}

// MakeCodeIfz creates a unary conditional jump.
func MakeCodeIfz(cond CodeZCond, offset int32) (code Code, err error) {
	code = MakeCode(OP_IFZ, 0) | Code((uint32(cond)&3)<<25)
	return code.With(FieldIfzOffset, offset)
}

// MakeCodePrintf creates a formatted print of the word at Sp+offset.
func MakeCodePrintf(format CodeFormat, offset int32) (code Code, err error) {
	code = MakeCode(OP_PRINTF, 0) | Code(uint32(format)&3)
	return code.With(FieldOffset, offset)
}

// MakeCodeDump creates a stack dump instruction.
func MakeCodeDump() Code {
	return MakeCode(OP_DUMP, 0)
}

// Class returns the instruction class.
func (code Code) Class() CodeClass {
	return CodeClass(FieldClass.Raw(uint32(code)))
}

// MiscDecode returns the miscellaneous operation.
func (code Code) MiscDecode() (op CodeMiscOp) {
	return CodeMiscOp(FieldSubOp.Raw(uint32(code)))
}

// ExitDecode returns the signed exit status.
func (code Code) ExitDecode() (status int) {
	return int(FieldExit.Extract(uint32(code)))
}

// SwapDecode returns the byte offsets, relative to Sp, of the swapped words.
func (code Code) SwapDecode() (from, to int32) {
	from = FieldSwapFrom.Extract(uint32(code))
	to = FieldSwapTo.Extract(uint32(code))
	return
}

// Length returns the 24-bit length (sinput) or value (debug) field.
func (code Code) Length() uint32 {
	return FieldLength.Raw(uint32(code))
}

// Count returns the 28-bit count or immediate field.
func (code Code) Count() uint32 {
	return FieldCount.Raw(uint32(code))
}

// AluDecode returns the binary arithmetic operation.
func (code Code) AluDecode() (op CodeAluOp) {
	return CodeAluOp(FieldSubOp.Raw(uint32(code)))
}

// UnaryDecode returns the unary arithmetic operation.
func (code Code) UnaryDecode() (op CodeUnaryOp) {
	return CodeUnaryOp(FieldSubOp.Raw(uint32(code)))
}

// Offset returns the signed byte offset of print, call, goto, dup and printf.
func (code Code) Offset() int32 {
	return FieldOffset.Extract(uint32(code))
}

// IfDecode returns the condition and byte offset of a binary conditional jump.
func (code Code) IfDecode() (cond CodeCond, offset int32) {
	cond = CodeCond(FieldCond.Raw(uint32(code)))
	offset = FieldIfOffset.Extract(uint32(code))
	return
}

// IfzDecode returns the condition and byte offset of a unary conditional jump.
func (code Code) IfzDecode() (cond CodeZCond, offset int32) {
	cond = CodeZCond(FieldZCond.Raw(uint32(code)))
	offset = FieldIfzOffset.Extract(uint32(code))
	return
}

// PrintfDecode returns the format and byte offset of a formatted print.
func (code Code) PrintfDecode() (format CodeFormat, offset int32) {
	format = CodeFormat(FieldFormat.Raw(uint32(code)))
	offset = code.Offset()
	return
}

// BranchField returns the field holding the pc-relative offset, for
// classes that transfer control to a fixed target.
func (code Code) BranchField() (fd Field, ok bool) {
	switch code.Class() {
	case OP_CALL, OP_GOTO:
		return FieldOffset, true
	case OP_IF:
		return FieldIfOffset, true
	case OP_IFZ:
		return FieldIfzOffset, true
	}
	return
}

// String returns the assembly language representation of this instruction.
// Offsets are shown in words.
func (code Code) String() (out string) {
	class := code.Class()

	switch class {
	case OP_MISC:
		op := code.MiscDecode()
		switch op {
		case MISC_OP_EXIT:
			out = fmt.Sprintf("%v %d", op, code.ExitDecode())
		case MISC_OP_SWAP:
			from, to := code.SwapDecode()
			out = fmt.Sprintf("%v %d %d", op, from/4, to/4)
		case MISC_OP_INPUT:
			out = op.String()
		case MISC_OP_SINPUT, MISC_OP_DEBUG:
			out = fmt.Sprintf("%v %d", op, code.Length())
		default:
			out = fmt.Sprintf("%v.%x", class, int(op))
		}
	case OP_POP, OP_RETURN:
		out = fmt.Sprintf("%v %d", class, code.Count())
	case OP_PUSH:
		out = fmt.Sprintf("%v %#x", class, code.Count())
	case OP_ALU:
		out = code.AluDecode().String()
	case OP_UNARY:
		out = code.UnaryDecode().String()
	case OP_PRINT, OP_CALL, OP_GOTO, OP_DUP:
		out = fmt.Sprintf("%v %d", class, code.Offset()/4)
	case OP_IF:
		cond, offset := code.IfDecode()
		out = fmt.Sprintf("if%v %d", cond, offset/4)
	case OP_IFZ:
		cond, offset := code.IfzDecode()
		out = fmt.Sprintf("if%v %d", cond, offset/4)
	case OP_PRINTF:
		format, offset := code.PrintfDecode()
		out = fmt.Sprintf("print%v %d", format, offset/4)
	case OP_DUMP:
		out = class.String()
	default:
		out = fmt.Sprintf("word %#08x", uint32(code))
	}

	return
}
