package cpu

import (
	"errors"

	"github.com/ezrec/vmma/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcRange      = errors.New(f("pc out of range"))
	ErrStackEmpty   = errors.New(f("stack empty"))
	ErrStackFull    = errors.New(f("stack full"))
	ErrAddressRange = errors.New(f("address out of range"))
	ErrMiscOp       = errors.New(f("misc op unknown"))
	ErrInput        = errors.New(f("input"))

	// Image errors
	ErrInvalidFormat   = errors.New(f("invalid magic number"))
	ErrProgramTooLarge = errors.New(f("program is too large to fit in memory"))
	ErrImageRead       = errors.New(f("image read"))

	// Field errors
	ErrFieldAlign = errors.New(f("field value unaligned"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrExit is returned by Tick when the program requests termination.
// It is the requested exit status, not a fault.
type ErrExit int

func (ee ErrExit) Error() string {
	return f("exit %d", int(ee))
}

// ErrJumpRange is a control transfer to an address outside of memory.
type ErrJumpRange int

func (ej ErrJumpRange) Error() string {
	return f("invalid jump to %#x", int(ej))
}

func (ej ErrJumpRange) Is(err error) (ok bool) {
	_, ok = err.(ErrJumpRange)
	return
}

// ErrHalt describes why, and where, the engine halted.
type ErrHalt struct {
	Pc   uint32 // Address of the halting instruction.
	Code Code   // The halting instruction, if it was fetched.
	Err  error
}

func (err *ErrHalt) Error() string {
	return f("halt at %04x: %v", err.Pc, err.Err)
}

func (err *ErrHalt) Unwrap() error {
	return err.Err
}

// ErrFieldRange is a value that does not fit in an instruction field.
type ErrFieldRange struct {
	Field string
	Value int64
}

func (err ErrFieldRange) Error() string {
	return f("field %v cannot hold %v", err.Field, err.Value)
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
