package cpu

import (
	"github.com/ezrec/ls8/ram"
)

// handler executes a non-ALU instruction with its operand bytes.
type handler func(cpu *Cpu, args []uint8) error

// _handler is the dispatch table for non-ALU instructions.
// Decoded instructions absent from the table are not implemented.
var _handler = map[Instruction]handler{
	INST_LDI:  (*Cpu).ldi,
	INST_PRN:  (*Cpu).prn,
	INST_POP:  (*Cpu).pop,
	INST_PUSH: (*Cpu).push,
	INST_CALL: (*Cpu).call,
	INST_RET:  (*Cpu).ret,
	INST_JMP:  (*Cpu).jmp,
	INST_JEQ:  (*Cpu).jeq,
	INST_JNE:  (*Cpu).jne,
}

// dispatch invokes the handler for inst.
func (cpu *Cpu) dispatch(inst Instruction, args []uint8) (err error) {
	fn, ok := _handler[inst]
	if !ok {
		err = ErrNotImplemented
		return
	}

	return fn(cpu, args)
}

func (cpu *Cpu) ldi(args []uint8) error {
	return cpu.Register.Set(args[0], args[1])
}

func (cpu *Cpu) prn(args []uint8) (err error) {
	value, err := cpu.Register.Get(args[0])
	if err != nil {
		return
	}

	if cpu.Output == nil {
		err = ErrChannelInvalid
		return
	}

	return cpu.Output.Send(value)
}

func (cpu *Cpu) pop(args []uint8) error {
	return cpu.Pop(args[0])
}

func (cpu *Cpu) push(args []uint8) error {
	return cpu.Push(args[0])
}

// call pushes the address following its operand, then jumps.
func (cpu *Cpu) call(args []uint8) (err error) {
	target, err := cpu.Register.Get(args[0])
	if err != nil {
		return
	}

	ret := cpu.Pc + 2
	if ret >= ram.RAM_SIZE {
		err = &ram.ErrAddress{Address: ret, Err: ErrOutOfRange}
		return
	}

	err = cpu.pushValue(uint8(ret))
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

func (cpu *Cpu) ret(args []uint8) (err error) {
	target, err := cpu.popValue()
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

func (cpu *Cpu) jmp(args []uint8) (err error) {
	target, err := cpu.Register.Get(args[0])
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

func (cpu *Cpu) jeq(args []uint8) error {
	return cpu.jumpIf(cpu.Flag == FLAG_EQUAL, args[0])
}

// jne treats an unset flag as not equal.
func (cpu *Cpu) jne(args []uint8) error {
	return cpu.jumpIf(cpu.Flag != FLAG_EQUAL, args[0])
}

// jumpIf jumps to the address in reg if cond holds, otherwise
// steps over the opcode and its register operand.
func (cpu *Cpu) jumpIf(cond bool, reg uint8) (err error) {
	target, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	if cond {
		cpu.Pc = int(target)
	} else {
		cpu.Pc += 2
	}

	return
}
