// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/logger"
	"github.com/ezrec/ls8/ram"
)

var log = logger.NewLogger("[cpu]")

// Channel is an output channel interface.
type Channel io.Channel

// CodeFlag is the state of the equality flag.
type CodeFlag int

const (
	FLAG_UNSET     = CodeFlag(0) // -
	FLAG_EQUAL     = CodeFlag(1) // E
	FLAG_NOT_EQUAL = CodeFlag(2) // N
)

func (flag CodeFlag) String() string {
	switch flag {
	case FLAG_EQUAL:
		return "E"
	case FLAG_NOT_EQUAL:
		return "N"
	}
	return "-"
}

// CodeState is the execution loop state.
type CodeState int

const (
	STATE_RUNNING = CodeState(0) // running
	STATE_HALTED  = CodeState(1) // halted
)

func (state CodeState) String() string {
	if state == STATE_HALTED {
		return "halted"
	}
	return "running"
}

var _cpu_defines = map[string]string{
	"SP":             fmt.Sprintf("%v", REGISTER_SP),
	"STACK_TOP":      fmt.Sprintf("0x%x", STACK_TOP),
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram *ram.Ram // Reference to the memory.

	Pc       int          // Program counter.
	Register RegisterFile // Register bank. R7 is the stack pointer.
	Flag     CodeFlag     // Equality flag, set by CMP.
	State    CodeState    // Execution loop state.

	Output Channel // PRN output.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with its own memory, ready to run.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Ram: ram.NewRam(),
	}

	cpu.Register.Reset()

	return
}

// Defines returns an iterator over the cpu and memory defines.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines), ram.Defines())
}

// Reset the CPU state.
// - Clears the memory and registers.
// - Seeds the stack pointer.
// - Clears the equality flag.
// - Sets PC to 0, running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debugf("reset")
	}

	cpu.Ram.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Flag = FLAG_UNSET
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Load copies a program image into memory.
func (cpu *Cpu) Load(image []uint8) (err error) {
	return cpu.Ram.Load(image)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "flag", cpu.Flag)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REGISTER_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", name, val)
	}

	return
}

// Trace formats PC, the three bytes at PC, and all registers as a
// single line.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		val, err := cpu.Ram.Read(cpu.Pc + n)
		if err != nil {
			sb.WriteString(" --")
		} else {
			fmt.Fprintf(&sb, " %02X", val)
		}
	}
	sb.WriteString(" |")
	for _, val := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", val)
	}

	return sb.String()
}

// FetchCode fetches the opcode at PC, and the two bytes following it.
// Operand bytes past the end of memory read as zero.
func (cpu *Cpu) FetchCode() (code Code, operand [2]uint8, err error) {
	ir, err := cpu.Ram.Read(cpu.Pc)
	if err != nil {
		return
	}

	code = Code(ir)

	for n := range operand {
		operand[n], _ = cpu.Ram.Read(cpu.Pc + 1 + n)
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	if cpu.Verbose {
		log.Debugf("%v", cpu.Trace())
	}

	code, operand, err := cpu.FetchCode()
	if err != nil {
		return
	}

	return cpu.Execute(code, operand[0], operand[1])
}

// Execute executes a single opcode at the current PC.
func (cpu *Cpu) Execute(code Code, operand_a, operand_b uint8) (err error) {
	pc := cpu.Pc
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: pc, Code: code}, err)
		}
	}()

	inst, err := code.Decode()
	if err != nil {
		return
	}

	count := code.OperandCount()
	next_pc := cpu.Pc + count + 1

	// Operands must be within memory.
	if next_pc > ram.RAM_SIZE {
		err = &ram.ErrAddress{Address: next_pc - 1, Err: ErrOutOfRange}
		return
	}

	switch {
	case inst == INST_HLT:
		cpu.State = STATE_HALTED
		cpu.Pc = next_pc
		if cpu.Verbose {
			log.Debugf("halt at %02X", pc)
		}
	case code.IsAlu():
		err = cpu.Alu(inst, operand_a, operand_b)
		if err != nil {
			return
		}
		cpu.Pc = next_pc
	default:
		args := []uint8{operand_a, operand_b}[:count]
		err = cpu.dispatch(inst, args)
		if err != nil {
			return
		}
		if !code.SetsPc() {
			cpu.Pc = next_pc
		}
	}

	cpu.Ticks++

	return
}

// Run ticks the CPU until it halts, or fails.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}
