// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the first line of the macro body.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"MEMORY_SIZE": fmt.Sprintf("%#v", MEMORY_SIZE),
	"WORD_SIZE":   fmt.Sprintf("%#v", WORD_SIZE),
}

// Assembler is a single pass macro assembler for the vmma instruction set.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to byte addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	expansions int // Count of macro expansions, for local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{}
	}
	asm.predefine[equ] = value
}

// mnemonic is an instruction class, and its sub-op or condition.
type mnemonic struct {
	class CodeClass
	op    int
}

// mnemonicMap maps instruction names to their class and sub-op.
var mnemonicMap = map[string]mnemonic{}

func init() {
	for _, op := range []CodeMiscOp{MISC_OP_EXIT, MISC_OP_SWAP, MISC_OP_INPUT, MISC_OP_SINPUT, MISC_OP_DEBUG} {
		mnemonicMap[op.String()] = mnemonic{OP_MISC, int(op)}
	}
	for op := ALU_OP_ADD; op <= ALU_OP_SAR; op++ {
		if op.valid() {
			mnemonicMap[op.String()] = mnemonic{OP_ALU, int(op)}
		}
	}
	for _, op := range []CodeUnaryOp{UNARY_OP_NEG, UNARY_OP_NOT} {
		mnemonicMap[op.String()] = mnemonic{OP_UNARY, int(op)}
	}
	for cond := COND_EQ; cond <= COND_GE; cond++ {
		mnemonicMap["if"+cond.String()] = mnemonic{OP_IF, int(cond)}
	}
	for cond := ZCOND_EZ; cond <= ZCOND_PL; cond++ {
		mnemonicMap["if"+cond.String()] = mnemonic{OP_IFZ, int(cond)}
	}
	for format := FORMAT_DEC; format <= FORMAT_OCT; format++ {
		mnemonicMap["print"+format.String()] = mnemonic{OP_PRINTF, int(format)}
	}
	for _, class := range []CodeClass{OP_POP, OP_PRINT, OP_CALL, OP_RETURN, OP_GOTO, OP_DUP, OP_DUMP, OP_PUSH} {
		mnemonicMap[class.String()] = mnemonic{class, 0}
	}
}

var (
	charRegexp  = regexp.MustCompile(`'\\?[^']'`)
	exprRegexp  = regexp.MustCompile(`\$\([^\$]*\)`)
	labelRegexp = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
)

// charEscapes maps the letter after a backslash to the escaped byte.
var charEscapes = map[byte]byte{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'0':  0x00,
	'e':  0x1b,
}

// expandCharacters replaces 'c' literals with their decimal byte value.
// Unknown escapes are left as is, and fail to parse later.
func expandCharacters(line string) string {
	return charRegexp.ReplaceAllStringFunc(line, func(literal string) string {
		body := literal[1 : len(literal)-1]
		switch {
		case len(body) == 1:
			return strconv.Itoa(int(body[0]))
		case body[0] == '\\':
			if c, ok := charEscapes[body[1]]; ok {
				return strconv.Itoa(int(c))
			}
		}
		return literal
	})
}

// valueOf returns the value of a numeric word. A leading '~' inverts it.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	text, invert := strings.CutPrefix(word, "~")
	if strings.HasPrefix(text, "'") {
		// Valid character literals were expanded by expandCharacters.
		err = ErrParseCharacter(strings.Trim(text, "'"))
		return
	}

	v64, err := strconv.ParseInt(text, 0, 33)
	if err != nil || v64 < -0x8000_0000 {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	if invert {
		value = ^value
	}

	return
}

// evaluate computes a Starlark integer expression. Every equate with a
// numeric value is visible to the expression.
func (asm *Assembler) evaluate(expr string) (value uint32, err error) {
	env := starlark.StringDict{}
	for name, text := range asm.Equate {
		v, verr := asm.valueOf(text)
		if verr == nil {
			env[name] = starlark.MakeUint(uint(v))
		}
	}

	thread := &starlark.Thread{Name: "expr"}
	result, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "expr", expr, env)
	if err != nil {
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	v64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = uint32(v64)
	return
}

// expandExpressions replaces each $(...) with the hexadecimal value of
// its expression.
func (asm *Assembler) expandExpressions(line string) (out string, err error) {
	out = exprRegexp.ReplaceAllStringFunc(line, func(match string) string {
		value, eval_err := asm.evaluate(match[2 : len(match)-1])
		if eval_err != nil && err == nil {
			err = eval_err
		}
		return fmt.Sprintf("%#x", value)
	})
	return
}

// defineEquate handles '.equ NAME VALUE'.
func (asm *Assembler) defineEquate(args []string) (err error) {
	if len(args) != 2 {
		err = ErrEquateSyntax
		return
	}

	name, value := args[0], args[1]
	if _, ok := asm.Equate[name]; ok {
		err = ErrEquateDuplicate
		return
	}
	if equate, ok := asm.Equate[value]; ok {
		value = equate
	}

	asm.Equate[name] = value
	return
}

// defineLabels binds each leading 'name:' word to the current address,
// and returns the words that follow.
func (asm *Assembler) defineLabels(words []string) (rest []string, err error) {
	rest = words
	for len(rest) != 0 {
		label, ok := strings.CutSuffix(rest[0], ":")
		if !ok {
			break
		}
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentIp()
		rest = rest[1:]
	}
	return
}

// defineMacro handles '.macro NAME arg...'; the body starts on the next line.
func (asm *Assembler) defineMacro(args []string, lineno int) (macro *Macro, err error) {
	if len(args) == 0 {
		err = ErrMacroSyntax
		return
	}

	name := args[0]
	if _, ok := asm.Macro[name]; ok {
		err = ErrMacroDuplicate
		return
	}

	macro = &Macro{
		LineNo: lineno + 1,
		Args:   args[1:],
	}
	asm.Macro[name] = macro

	return
}

// expand assembles the body of a macro, with its arguments bound as equates.
func (asm *Assembler) expand(name string, macro *Macro, args []string) (err error) {
	if len(args) != len(macro.Args) {
		err = ErrMacroSyntax
		return
	}

	saved := maps.Clone(asm.Equate)
	defer func() { asm.Equate = saved }()
	for n, arg := range macro.Args {
		asm.Equate[arg] = args[n]
	}

	// '@' prefixes a label local to this expansion.
	asm.expansions++
	local := fmt.Sprintf("%v_%v_", name, asm.expansions)

	for n, line := range macro.Lines {
		lineno := macro.LineNo + n
		line = strings.ReplaceAll(line, "@", local)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err == nil {
			err = asm.parseWords(words, lineno)
		}
		if err != nil {
			err = &ErrMacro{Macro: name, Line: lineno, Err: err}
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	return
}

// parseLine expands a line of source, and handles any equate, label or
// macro on it. The remaining instruction words are returned.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	line = expandCharacters(line)
	line, err = asm.expandExpressions(line)
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	if words[0] == ".equ" {
		err = asm.defineEquate(words[1:])
		words = nil
		return
	}

	for n, word := range words {
		if equate, ok := asm.Equate[word]; ok {
			words[n] = equate
		}
	}

	words, err = asm.defineLabels(words)
	if err != nil || len(words) == 0 {
		return
	}

	if macro, ok := asm.Macro[words[0]]; ok {
		err = asm.expand(words[0], macro, words[1:])
		words = nil
	}

	return
}

// currentIp gets the byte address of the next instruction.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)*WORD_SIZE
}

// reset prepares the assembler for a new source.
func (asm *Assembler) reset() {
	asm.Opcode = asm.Opcode[:0]
	asm.Label = map[string]int{}
	asm.Macro = map[string](*Macro){}
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)
	asm.expansions = 0
}

// link resolves every label reference into a relative offset.
// On failure, the offending opcode is returned.
func (asm *Assembler) link() (op *Opcode, err error) {
	for n := range asm.Opcode {
		op = &asm.Opcode[n]
		if len(op.LinkLabel) == 0 {
			continue
		}

		ip, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}

		last := len(op.Codes) - 1
		fd, ok := op.Codes[last].BranchField()
		if !ok {
			err = ErrTargetInvalid
			return
		}

		base := op.Ip + last*WORD_SIZE
		op.Codes[last], err = op.Codes[last].With(fd, int32(ip-base))
		if err != nil {
			return
		}
	}

	op = nil
	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.reset()

	var macro *Macro
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		code, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(code)
		words := strings.Fields(line)
		directive := ""
		if len(words) != 0 {
			directive = words[0]
		}

		switch {
		case directive == ".macro":
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			macro, err = asm.defineMacro(words[1:], lineno)
		case directive == ".endm":
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
		case macro != nil:
			macro.Lines = append(macro.Lines, line)
		default:
			words, err = asm.parseLine(line, lineno)
			if err == nil {
				err = asm.parseWords(words, lineno)
			}
		}

		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	op, err := asm.link()
	if err != nil {
		lineno, line = op.LineNo, strings.Join(op.Words, " ")
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// argValue returns the single optional argument, or the default value.
func (asm *Assembler) argValue(args []string, value int32) (int32, error) {
	if len(args) > 1 {
		return 0, ErrOpcodeExtraArgs
	}
	if len(args) == 0 {
		return value, nil
	}
	u32, err := asm.valueOf(args[0])
	return int32(u32), err
}

// argCount returns the single optional unsigned argument, or the default value.
func (asm *Assembler) argCount(args []string, value uint32) (uint32, error) {
	v, err := asm.argValue(args, int32(value))
	return uint32(v), err
}

// argTarget returns the byte offset of a jump target given in words, or
// the label to link.
func (asm *Assembler) argTarget(args []string) (offset int32, label string, err error) {
	if len(args) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	value, verr := asm.valueOf(args[0])
	if verr == nil {
		offset = int32(value) * WORD_SIZE
		return
	}

	if !labelRegexp.MatchString(args[0]) {
		err = ErrTargetInvalid
		return
	}

	label = args[0]
	return
}

// encode assembles a single instruction. Offset operands are in words.
func (asm *Assembler) encode(m mnemonic, args []string) (code Code, label string, err error) {
	var value int32
	var count uint32

	switch m.class {
	case OP_MISC:
		switch CodeMiscOp(m.op) {
		case MISC_OP_EXIT:
			value, err = asm.argValue(args, 0)
			if err != nil {
				return
			}
			if value < -128 || value > 255 {
				err = ErrFieldRange{Field: FieldExit.Name, Value: int64(value)}
				return
			}
			code = MakeCodeExit(int8(value))
		case MISC_OP_SWAP:
			if len(args) < 2 {
				err = ErrOpcodeValueMissing
				return
			}
			var from int32
			from, err = asm.argValue(args[:1], 0)
			if err != nil {
				return
			}
			value, err = asm.argValue(args[1:], 0)
			if err != nil {
				return
			}
			code, err = MakeCodeSwap(from*WORD_SIZE, value*WORD_SIZE)
		case MISC_OP_INPUT:
			if len(args) != 0 {
				err = ErrOpcodeExtraArgs
				return
			}
			code, err = MakeCodeMisc(MISC_OP_INPUT, 0)
		case MISC_OP_SINPUT, MISC_OP_DEBUG:
			if len(args) == 0 && CodeMiscOp(m.op) == MISC_OP_SINPUT {
				err = ErrOpcodeValueMissing
				return
			}
			count, err = asm.argCount(args, 0)
			if err != nil {
				return
			}
			code, err = MakeCodeMisc(CodeMiscOp(m.op), count)
		}
	case OP_ALU, OP_UNARY, OP_DUMP:
		if len(args) != 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		code = MakeCode(m.class, m.op)
	case OP_POP, OP_RETURN, OP_PUSH:
		if len(args) == 0 && m.class == OP_PUSH {
			err = ErrOpcodeValueMissing
			return
		}
		count, err = asm.argCount(args, 0)
		if err != nil {
			return
		}
		code, err = MakeCodeCount(m.class, count)
	case OP_PRINT, OP_DUP:
		value, err = asm.argValue(args, 0)
		if err != nil {
			return
		}
		code, err = MakeCodeOffset(m.class, value*WORD_SIZE)
	case OP_PRINTF:
		value, err = asm.argValue(args, 0)
		if err != nil {
			return
		}
		code, err = MakeCodePrintf(CodeFormat(m.op), value*WORD_SIZE)
	case OP_CALL, OP_GOTO, OP_IF, OP_IFZ:
		value, label, err = asm.argTarget(args)
		if err != nil {
			return
		}
		switch m.class {
		case OP_IF:
			code, err = MakeCodeIf(CodeCond(m.op), value)
		case OP_IFZ:
			code, err = MakeCodeIfz(CodeZCond(m.op), value)
		default:
			code, err = MakeCodeOffset(m.class, value)
		}
	}

	return
}

// parseWords assembles the instruction words of a line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	m, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	code, label, err := asm.encode(m, words[1:])
	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:    lineno,
		Ip:        asm.currentIp(),
		Words:     words,
		Codes:     []Code{code},
		LinkLabel: label,
	})

	return
}
