package cpu

// Alu performs an ALU operation in place on registers a and b.
//
// All arithmetic is 8-bit unsigned and wraps on overflow.
// DIV truncates, and fails without side effects on a zero divisor.
func (cpu *Cpu) Alu(op Instruction, a, b uint8) (err error) {
	switch op {
	case INST_ADD, INST_MUL, INST_DIV, INST_AND, INST_CMP, INST_INC, INST_DEC:
	case INST_SUB, INST_MOD, INST_OR, INST_XOR, INST_SHL, INST_SHR, INST_NOT:
		err = ErrNotImplemented
		return
	default:
		err = ErrAluUnsupported
		return
	}

	reg_a, err := cpu.Register.Ref(a)
	if err != nil {
		return
	}

	// INC and DEC are single operand; the second byte is not a register.
	var val_b uint8
	if op != INST_INC && op != INST_DEC {
		val_b, err = cpu.Register.Get(b)
		if err != nil {
			return
		}
	}

	switch op {
	case INST_ADD:
		*reg_a += val_b
	case INST_MUL:
		*reg_a *= val_b
	case INST_DIV:
		if val_b == 0 {
			err = ErrDivisionByZero
			return
		}
		*reg_a /= val_b
	case INST_AND:
		*reg_a &= val_b
	case INST_INC:
		*reg_a++
	case INST_DEC:
		*reg_a--
	case INST_CMP:
		if *reg_a == val_b {
			cpu.Flag = FLAG_EQUAL
		} else {
			cpu.Flag = FLAG_NOT_EQUAL
		}
	}

	return
}
