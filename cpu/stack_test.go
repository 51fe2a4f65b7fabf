package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[0] = 0x12

	err := cpu.Push(0)
	assert.NoError(err)
	assert.Equal(uint8(STACK_TOP-1), cpu.Register[REGISTER_SP])
	assert.Equal(uint8(0x12), cpu.Ram.Data[STACK_TOP-1])
}

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	for r := range uint8(REGISTER_SP) {
		for r2 := range uint8(REGISTER_SP) {
			cpu := NewCpu()
			cpu.Register[r] = 0xa0 + r

			assert.NoError(cpu.Push(r))
			assert.NoError(cpu.Pop(r2))

			assert.Equal(0xa0+r, cpu.Register[r2])
			assert.Equal(uint8(STACK_TOP), cpu.Register[REGISTER_SP])
		}
	}
}

func TestStack_Lifo(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[0] = 1
	cpu.Register[1] = 2
	cpu.Register[2] = 3

	for r := range uint8(3) {
		assert.NoError(cpu.Push(r))
	}

	for _, expected := range []uint8{3, 2, 1} {
		assert.NoError(cpu.Pop(4))
		assert.Equal(expected, cpu.Register[4])
	}

	assert.Equal(uint8(STACK_TOP), cpu.Register[REGISTER_SP])
}

func TestStack_Sp(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// Pushing SP stores the decremented SP.
	assert.NoError(cpu.Push(REGISTER_SP))
	assert.Equal(uint8(STACK_TOP-1), cpu.Ram.Data[STACK_TOP-1])

	// Popping into SP increments the popped value.
	assert.NoError(cpu.Pop(REGISTER_SP))
	assert.Equal(uint8(STACK_TOP), cpu.Register[REGISTER_SP])
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REGISTER_SP] = 1

	assert.NoError(cpu.Push(0))
	assert.Equal(uint8(0), cpu.Register[REGISTER_SP])

	err := cpu.Push(0)
	assert.ErrorIs(err, ErrStackOverflow)
	assert.Equal(uint8(0), cpu.Register[REGISTER_SP])
}

func TestStack_Underflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REGISTER_SP] = 0xfe

	assert.NoError(cpu.Pop(0))
	assert.Equal(uint8(0xff), cpu.Register[REGISTER_SP])

	err := cpu.Pop(0)
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(uint8(0xff), cpu.Register[REGISTER_SP])

	_, err = cpu.popValue()
	assert.ErrorIs(err, ErrStackUnderflow)
}

func TestStack_Register(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.Push(8)
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Equal(uint8(STACK_TOP), cpu.Register[REGISTER_SP])

	err = cpu.Pop(8)
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Equal(uint8(STACK_TOP), cpu.Register[REGISTER_SP])
}
