package ram

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrOutOfRange    = errors.New(f("out of range"))
	ErrImageTooLarge = errors.New(f("image too large"))
)

// ErrAddress indicates the memory address of an access error.
type ErrAddress struct {
	Address int
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address 0x%02x %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
