package cpu

// pushValue decrements SP, then writes value at SP.
// SP never wraps; pushing with SP at 0 is an overflow.
func (cpu *Cpu) pushValue(value uint8) (err error) {
	sp := cpu.Register[REGISTER_SP]
	if sp == 0 {
		err = ErrStackOverflow
		return
	}

	sp--
	err = cpu.Ram.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = sp
	return
}

// popValue reads the value at SP, then increments SP.
// SP never wraps; popping with SP at 0xff is an underflow.
func (cpu *Cpu) popValue() (value uint8, err error) {
	sp := cpu.Register[REGISTER_SP]
	if sp == 0xff {
		err = ErrStackUnderflow
		return
	}

	value, err = cpu.Ram.Read(int(sp))
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = sp + 1
	return
}

// Push the value of register reg onto the stack.
// SP is decremented before reg is read, so pushing SP stores the new SP.
func (cpu *Cpu) Push(reg uint8) (err error) {
	value, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	if reg == REGISTER_SP {
		value--
	}

	return cpu.pushValue(value)
}

// Pop the top of the stack into register reg.
// reg is written before SP is incremented, so popping into SP yields the
// popped value plus one.
func (cpu *Cpu) Pop(reg uint8) (err error) {
	if int(reg) >= REGISTER_COUNT {
		err = ErrRegister(reg)
		return
	}

	value, err := cpu.popValue()
	if err != nil {
		return
	}

	if reg == REGISTER_SP {
		value++
	}

	cpu.Register[reg] = value
	return
}
