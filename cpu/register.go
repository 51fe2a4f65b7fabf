package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf4 // Initial stack pointer.
)

// RegisterFile is the bank of 8-bit general purpose registers.
type RegisterFile [REGISTER_COUNT]uint8

// Reset zeroes all registers and seeds the stack pointer.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
	rf[REGISTER_SP] = STACK_TOP
}

// Get returns the value of a register.
func (rf *RegisterFile) Get(index uint8) (value uint8, err error) {
	if int(index) >= len(rf) {
		err = ErrRegister(index)
		return
	}

	value = rf[index]
	return
}

// Set the value of a register.
func (rf *RegisterFile) Set(index uint8, value uint8) (err error) {
	if int(index) >= len(rf) {
		err = ErrRegister(index)
		return
	}

	rf[index] = value
	return
}

// Ref returns a reference to a register, for in-place updates.
func (rf *RegisterFile) Ref(index uint8) (reg *uint8, err error) {
	if int(index) >= len(rf) {
		err = ErrRegister(index)
		return
	}

	reg = &rf[index]
	return
}
