package cpu

import (
	"strings"
)

// Instruction is the symbolic identity of an opcode.
type Instruction int

const (
	INST_ADD  = Instruction(0)  // ADD
	INST_AND  = Instruction(1)  // AND
	INST_CALL = Instruction(2)  // CALL
	INST_CMP  = Instruction(3)  // CMP
	INST_DEC  = Instruction(4)  // DEC
	INST_DIV  = Instruction(5)  // DIV
	INST_HLT  = Instruction(6)  // HLT
	INST_INC  = Instruction(7)  // INC
	INST_INT  = Instruction(8)  // INT
	INST_IRET = Instruction(9)  // IRET
	INST_JEQ  = Instruction(10) // JEQ
	INST_JGE  = Instruction(11) // JGE
	INST_JGT  = Instruction(12) // JGT
	INST_JLE  = Instruction(13) // JLE
	INST_JLT  = Instruction(14) // JLT
	INST_JMP  = Instruction(15) // JMP
	INST_JNE  = Instruction(16) // JNE
	INST_LD   = Instruction(17) // LD
	INST_LDI  = Instruction(18) // LDI
	INST_MOD  = Instruction(19) // MOD
	INST_MUL  = Instruction(20) // MUL
	INST_NOP  = Instruction(21) // NOP
	INST_NOT  = Instruction(22) // NOT
	INST_OR   = Instruction(23) // OR
	INST_POP  = Instruction(24) // POP
	INST_PRA  = Instruction(25) // PRA
	INST_PRN  = Instruction(26) // PRN
	INST_PUSH = Instruction(27) // PUSH
	INST_RET  = Instruction(28) // RET
	INST_SHL  = Instruction(29) // SHL
	INST_SHR  = Instruction(30) // SHR
	INST_ST   = Instruction(31) // ST
	INST_SUB  = Instruction(32) // SUB
	INST_XOR  = Instruction(33) // XOR
)

// _mnemonic is indexed by Instruction.
var _mnemonic = [...]string{
	INST_ADD:  "ADD",
	INST_AND:  "AND",
	INST_CALL: "CALL",
	INST_CMP:  "CMP",
	INST_DEC:  "DEC",
	INST_DIV:  "DIV",
	INST_HLT:  "HLT",
	INST_INC:  "INC",
	INST_INT:  "INT",
	INST_IRET: "IRET",
	INST_JEQ:  "JEQ",
	INST_JGE:  "JGE",
	INST_JGT:  "JGT",
	INST_JLE:  "JLE",
	INST_JLT:  "JLT",
	INST_JMP:  "JMP",
	INST_JNE:  "JNE",
	INST_LD:   "LD",
	INST_LDI:  "LDI",
	INST_MOD:  "MOD",
	INST_MUL:  "MUL",
	INST_NOP:  "NOP",
	INST_NOT:  "NOT",
	INST_OR:   "OR",
	INST_POP:  "POP",
	INST_PRA:  "PRA",
	INST_PRN:  "PRN",
	INST_PUSH: "PUSH",
	INST_RET:  "RET",
	INST_SHL:  "SHL",
	INST_SHR:  "SHR",
	INST_ST:   "ST",
	INST_SUB:  "SUB",
	INST_XOR:  "XOR",
}

// _opcode is the fixed opcode table.
var _opcode = map[Code]Instruction{
	0b10100000: INST_ADD,
	0b10101000: INST_AND,
	0b01010000: INST_CALL,
	0b10100111: INST_CMP,
	0b01100110: INST_DEC,
	0b10100011: INST_DIV,
	0b00000001: INST_HLT,
	0b01100101: INST_INC,
	0b01010010: INST_INT,
	0b00010011: INST_IRET,
	0b01010101: INST_JEQ,
	0b01011010: INST_JGE,
	0b01010111: INST_JGT,
	0b01011001: INST_JLE,
	0b01011000: INST_JLT,
	0b01010100: INST_JMP,
	0b01010110: INST_JNE,
	0b10000011: INST_LD,
	0b10000010: INST_LDI,
	0b10100100: INST_MOD,
	0b10100010: INST_MUL,
	0b00000000: INST_NOP,
	0b01101001: INST_NOT,
	0b10101010: INST_OR,
	0b01000110: INST_POP,
	0b01001000: INST_PRA,
	0b01000111: INST_PRN,
	0b01000101: INST_PUSH,
	0b00010001: INST_RET,
	0b10101100: INST_SHL,
	0b10101101: INST_SHR,
	0b10000101: INST_ST,
	0b10100001: INST_SUB,
	0b10101011: INST_XOR,
}

// _code is the reverse of _opcode.
var _code = func() (codes map[Instruction]Code) {
	codes = make(map[Instruction]Code, len(_opcode))
	for code, inst := range _opcode {
		codes[inst] = code
	}
	return
}()

// String returns the mnemonic of the instruction.
func (inst Instruction) String() string {
	if inst < 0 || int(inst) >= len(_mnemonic) {
		return "???"
	}
	return _mnemonic[inst]
}

// Code returns the opcode byte of the instruction.
func (inst Instruction) Code() (code Code, ok bool) {
	code, ok = _code[inst]
	return
}

// LookupInstruction finds an instruction by mnemonic, ignoring case.
func LookupInstruction(mnemonic string) (inst Instruction, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for n, name := range _mnemonic {
		if name == mnemonic {
			inst = Instruction(n)
			ok = true
			return
		}
	}
	return
}

// Code is a single opcode byte.
//
//	bits 7-6: operand count
//	bit    5: ALU operation
//	bit    4: sets PC directly
//	bits 3-0: instruction identifier
type Code uint8

// OperandCount returns the number of operand bytes following the opcode.
func (code Code) OperandCount() int {
	return int((code >> 6) & 0b11)
}

// IsAlu returns true if the opcode is dispatched to the ALU.
func (code Code) IsAlu() bool {
	return (code>>5)&1 == 1
}

// SetsPc returns true if the opcode's handler updates PC itself.
func (code Code) SetsPc() bool {
	return (code>>4)&1 == 1
}

// Decode looks up the instruction identity of the opcode.
func (code Code) Decode() (inst Instruction, err error) {
	inst, ok := _opcode[code]
	if !ok {
		err = ErrUnknownOpcode
		return
	}
	return
}

// String returns the mnemonic of the opcode, or "???" if unknown.
func (code Code) String() string {
	inst, err := code.Decode()
	if err != nil {
		return "???"
	}
	return inst.String()
}
