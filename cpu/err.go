package cpu

import (
	"errors"

	"github.com/ezrec/ls8/ram"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOutOfRange     = ram.ErrOutOfRange
	ErrHalted         = errors.New(f("halted"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Instruction decode errors
	ErrUnknownOpcode  = errors.New(f("unknown opcode"))
	ErrNotImplemented = errors.New(f("not implemented"))
	ErrAluUnsupported = errors.New(f("unsupported alu operation"))
	ErrDivisionByZero = errors.New(f("division by zero"))

	// Loader errors
	ErrParseBinary = errors.New(f("not a binary byte"))
	ErrImageFull   = errors.New(f("image exceeds memory"))

	// Assembler errors
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandCount    = errors.New(f("wrong number of operands"))
	ErrValueRange      = errors.New(f("value out of byte range"))
)

// ErrRegister indicates an invalid register index.
type ErrRegister uint8

func (er ErrRegister) Error() string {
	return f("register %d invalid", uint8(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrOutOfRange
}

// ErrOpcode indicates the address and opcode of a failed instruction.
type ErrOpcode struct {
	Pc   int
	Code Code
}

func (eo ErrOpcode) Error() string {
	return f("pc 0x%02x opcode 0b%08b %v", eo.Pc, uint8(eo.Code), eo.Code.String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
