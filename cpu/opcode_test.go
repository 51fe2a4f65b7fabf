package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		code     Code
		inst     Instruction
		operands int
		alu      bool
		setsPc   bool
	}{
		{0b10000010, INST_LDI, 2, false, false},
		{0b01000111, INST_PRN, 1, false, false},
		{0b00000001, INST_HLT, 0, false, false},
		{0b10100010, INST_MUL, 2, true, false},
		{0b10100000, INST_ADD, 2, true, false},
		{0b10100111, INST_CMP, 2, true, false},
		{0b01100101, INST_INC, 1, true, false},
		{0b01000101, INST_PUSH, 1, false, false},
		{0b01000110, INST_POP, 1, false, false},
		{0b01010000, INST_CALL, 1, false, true},
		{0b00010001, INST_RET, 0, false, true},
		{0b01010100, INST_JMP, 1, false, true},
		{0b01010101, INST_JEQ, 1, false, true},
		{0b01010110, INST_JNE, 1, false, true},
		{0b00010011, INST_IRET, 0, false, true},
		{0b01101001, INST_NOT, 1, true, false},
	}

	for _, entry := range table {
		inst, err := entry.code.Decode()
		assert.NoError(err, entry.inst.String())
		assert.Equal(entry.inst, inst)
		assert.Equal(entry.operands, entry.code.OperandCount(), entry.inst.String())
		assert.Equal(entry.alu, entry.code.IsAlu(), entry.inst.String())
		assert.Equal(entry.setsPc, entry.code.SetsPc(), entry.inst.String())
		assert.Equal(entry.inst.String(), entry.code.String())
	}
}

func TestCode_Unknown(t *testing.T) {
	assert := assert.New(t)

	for _, code := range []Code{0b11111111, 0b00000010, 0b10111111, 0b11000000} {
		_, err := code.Decode()
		assert.ErrorIs(err, ErrUnknownOpcode)
		assert.Equal("???", code.String())
	}
}

func TestCode_Table(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(34, len(_opcode))
	assert.Equal(len(_mnemonic), len(_opcode))

	// Every instruction has exactly one code, and round trips.
	for n := range _mnemonic {
		inst := Instruction(n)
		code, ok := inst.Code()
		assert.True(ok, inst.String())
		decoded, err := code.Decode()
		assert.NoError(err)
		assert.Equal(inst, decoded)
	}
}

func TestLookupInstruction(t *testing.T) {
	assert := assert.New(t)

	inst, ok := LookupInstruction("ldi")
	assert.True(ok)
	assert.Equal(INST_LDI, inst)

	inst, ok = LookupInstruction("HLT")
	assert.True(ok)
	assert.Equal(INST_HLT, inst)

	_, ok = LookupInstruction("FOO")
	assert.False(ok)

	assert.Equal("???", Instruction(-1).String())
	assert.Equal("???", Instruction(len(_mnemonic)).String())
}

func FuzzCode(f *testing.F) {
	for _, code := range []uint8{0x00, 0x01, 0x82, 0xa2, 0xff} {
		f.Add(code)
	}

	f.Fuzz(func(t *testing.T, raw uint8) {
		assert := assert.New(t)

		code := Code(raw)
		assert.Equal(int(raw>>6), code.OperandCount())
		assert.Equal(raw&0x20 != 0, code.IsAlu())
		assert.Equal(raw&0x10 != 0, code.SetsPc())

		inst, err := code.Decode()
		if err != nil {
			assert.ErrorIs(err, ErrUnknownOpcode)
			return
		}
		back, ok := inst.Code()
		assert.True(ok)
		assert.Equal(code, back)
	})
}
