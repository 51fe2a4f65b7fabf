// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ram implements the flat byte-addressable memory of the LS-8.
package ram

import (
	"fmt"
	"iter"
	"maps"
)

const (
	RAM_SIZE = 256 // Number of addressable cells.
)

var _ram_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%v", RAM_SIZE),
}

// Ram is a zero-indexed array of 8-bit cells.
//
// Values are stored as bytes; callers that compute wider values
// must truncate before writing.
type Ram struct {
	Data [RAM_SIZE]uint8
}

// NewRam creates a new, zeroed RAM.
func NewRam() (ram *Ram) {
	ram = &Ram{}
	return
}

// Defines returns an iterator over the RAM defines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_ram_defines)
}

// Reset zeroes all of the cells.
func (ram *Ram) Reset() {
	clear(ram.Data[:])
}

// Read the cell at address.
func (ram *Ram) Read(address int) (value uint8, err error) {
	if address < 0 || address >= RAM_SIZE {
		err = &ErrAddress{Address: address, Err: ErrOutOfRange}
		return
	}

	value = ram.Data[address]
	return
}

// Write the cell at address.
func (ram *Ram) Write(address int, value uint8) (err error) {
	if address < 0 || address >= RAM_SIZE {
		err = &ErrAddress{Address: address, Err: ErrOutOfRange}
		return
	}

	ram.Data[address] = value
	return
}

// Load copies an image into RAM starting at address 0.
// Cells past the end of the image are left untouched.
func (ram *Ram) Load(image []uint8) (err error) {
	if len(image) > RAM_SIZE {
		err = ErrImageTooLarge
		return
	}

	copy(ram.Data[:], image)
	return
}
