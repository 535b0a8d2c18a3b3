package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustCode(code Code, err error) Code {
	if err != nil {
		panic(err)
	}
	return code
}

func TestCode_Make(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		word uint32
	}){
		{"exit", MakeCodeExit(3), 0x0000_0003},
		{"exit_neg", MakeCodeExit(-1), 0x0000_00ff},
		{"swap", mustCode(MakeCodeSwap(4, 0)), 0x0100_1000},
		{"input", mustCode(MakeCodeMisc(MISC_OP_INPUT, 0)), 0x0400_0000},
		{"sinput", mustCode(MakeCodeMisc(MISC_OP_SINPUT, 10)), 0x0500_000a},
		{"debug", mustCode(MakeCodeMisc(MISC_OP_DEBUG, 5)), 0x0f00_0005},
		{"pop", mustCode(MakeCodeCount(OP_POP, 8)), 0x1000_0008},
		{"add", MakeCodeAlu(ALU_OP_ADD), 0x2000_0000},
		{"sar", MakeCodeAlu(ALU_OP_SAR), 0x2b00_0000},
		{"not", MakeCodeUnary(UNARY_OP_NOT), 0x3100_0000},
		{"print", mustCode(MakeCodeOffset(OP_PRINT, 0)), 0x4000_0000},
		{"call", mustCode(MakeCodeOffset(OP_CALL, 12)), 0x5000_000c},
		{"return", mustCode(MakeCodeCount(OP_RETURN, 8)), 0x6000_0008},
		{"goto", mustCode(MakeCodeOffset(OP_GOTO, -4)), 0x7fff_fffc},
		{"ifeq", mustCode(MakeCodeIf(COND_EQ, 8)), 0x8000_0008},
		{"ifne", mustCode(MakeCodeIf(COND_NE, -4)), 0x83ff_fffc},
		{"ifnz", mustCode(MakeCodeIfz(ZCOND_NZ, 8)), 0x9200_0002},
		{"ifez", mustCode(MakeCodeIfz(ZCOND_EZ, -4)), 0x90ff_ffff},
		{"dup", mustCode(MakeCodeOffset(OP_DUP, 4)), 0xb000_0004},
		{"printd", mustCode(MakeCodePrintf(FORMAT_DEC, 0)), 0xd000_0000},
		{"printx", mustCode(MakeCodePrintf(FORMAT_HEX, 4)), 0xd000_0005},
		{"dump", MakeCodeDump(), 0xe000_0000},
		{"push", mustCode(MakeCodeCount(OP_PUSH, 0x7b)), 0xf000_007b},
	}

	for _, entry := range table {
		assert.Equal(entry.word, uint32(entry.code), entry.name)
	}
}

func TestCode_MakeRange(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeCodeCount(OP_PUSH, 0x1000_0000)
	assert.Equal(ErrFieldRange{Field: "count", Value: 0x1000_0000}, err)

	_, err = MakeCodeMisc(MISC_OP_SINPUT, 0x100_0000)
	assert.Error(err)

	_, err = MakeCodeSwap(0, 2048*4)
	assert.Error(err)

	_, err = MakeCodeIf(COND_EQ, 1<<24)
	assert.Error(err)

	_, err = MakeCodeOffset(OP_GOTO, 2)
	assert.ErrorIs(err, ErrFieldAlign)
}

func TestCode_Decode(t *testing.T) {
	assert := assert.New(t)

	code := Code(0x0100_1fff)
	assert.Equal(OP_MISC, code.Class())
	assert.Equal(MISC_OP_SWAP, code.MiscDecode())
	from, to := code.SwapDecode()
	assert.Equal(int32(4), from)
	assert.Equal(int32(-4), to)

	code = Code(0x0000_0080)
	assert.Equal(MISC_OP_EXIT, code.MiscDecode())
	assert.Equal(-128, code.ExitDecode())

	code = Code(0x8600_0010)
	cond, offset := code.IfDecode()
	assert.Equal(OP_IF, code.Class())
	assert.Equal(COND_GT, cond)
	assert.Equal(int32(16), offset)

	code = Code(0x9600_0001)
	zcond, offset := code.IfzDecode()
	assert.Equal(ZCOND_PL, zcond)
	assert.Equal(int32(4), offset)

	code = Code(0xd000_0007)
	format, offset := code.PrintfDecode()
	assert.Equal(FORMAT_OCT, format)
	assert.Equal(int32(4), offset)

	code = Code(0xffff_ffff)
	assert.Equal(OP_PUSH, code.Class())
	assert.Equal(uint32(0x0fff_ffff), code.Count())
}

func TestCode_BranchField(t *testing.T) {
	assert := assert.New(t)

	fd, ok := Code(0x5000_0000).BranchField()
	assert.True(ok)
	assert.Equal(FieldOffset, fd)

	fd, ok = Code(0x8000_0000).BranchField()
	assert.True(ok)
	assert.Equal(FieldIfOffset, fd)

	fd, ok = Code(0x9000_0000).BranchField()
	assert.True(ok)
	assert.Equal(FieldIfzOffset, fd)

	_, ok = Code(0xb000_0000).BranchField()
	assert.False(ok)
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		word uint32
		text string
	}{
		{0x0000_00ff, "exit -1"},
		{0x0100_1000, "swap 1 0"},
		{0x0400_0000, "input"},
		{0x0500_000a, "sinput 10"},
		{0x0f00_0005, "debug 5"},
		{0x0200_0000, "misc.2"},
		{0x1000_0000, "pop 0"},
		{0x2900_0000, "shr"},
		{0x3000_0000, "neg"},
		{0x4000_0004, "print 1"},
		{0x5000_000c, "call 3"},
		{0x6000_0004, "return 4"},
		{0x7fff_fffc, "goto -1"},
		{0x83ff_fffc, "ifne -1"},
		{0x90ff_ffff, "ifez -1"},
		{0xb000_0004, "dup 1"},
		{0xd000_0002, "printb 0"},
		{0xe000_0000, "dump"},
		{0xf000_007b, "push 0x7b"},
		{0xa000_0001, "word 0xa0000001"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, Code(entry.word).String())
	}
}

func TestCodeClass_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ifz", OP_IFZ.String())
	assert.Equal("dup", OP_DUP.String())
	assert.Equal("push", OP_PUSH.String())
	assert.Equal("CodeClass(10)", CodeClass(10).String())
	assert.Equal("sinput", MISC_OP_SINPUT.String())
	assert.Equal("CodeAluOp(10)", CodeAluOp(10).String())
}
