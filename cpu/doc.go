// Package cpu implements the LS-8 microprocessor, its program loader and
// its assembler.
//
// The CPU consists of a program counter, eight 8-bit general-purpose
// registers (r0-r7, with r7 as the stack pointer), an ALU, an equality
// flag, and 256 bytes of memory. Each opcode byte describes its own
// operand count, whether it is an ALU operation, and whether it sets
// the program counter itself.
//
// The loader reads the textual binary image format. The assembler
// provides a mnemonic language supporting labels, equates, data bytes,
// and compile-time expression evaluation.
package cpu
