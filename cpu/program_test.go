package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Lines: []Line{
			{LineNo: 1, Address: 0, Words: []string{"LDI", "R0,8"}, Bytes: []uint8{0x82, 0x00, 0x08}},
			{LineNo: 2, Address: 3, Words: []string{"PRN", "R0"}, Bytes: []uint8{0x47, 0x00}},
			{LineNo: 4, Address: 5, Words: []string{"HLT"}, Bytes: []uint8{0x01}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Line)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Line)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Line)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Line)
	assert.Equal(4, dbg.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Line)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(-1)
	assert.Nil(dbg.Line)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())

	// Gaps are zero filled.
	prog.Lines = append(prog.Lines, Line{LineNo: 5, Address: 8, Bytes: []uint8{0xaa}})
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01, 0x00, 0x00, 0xaa}, prog.Binary())

	empty := &Program{}
	assert.Equal(0, len(empty.Binary()))
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var addresses []int
	for address := range prog.Bytes() {
		addresses = append(addresses, address)
		if address == 3 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2, 3}, addresses)
}

func TestProgram_WriteImage(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	buff := &bytes.Buffer{}
	err := prog.WriteImage(buff)
	assert.NoError(err)

	expected := []string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buff.String())

	// Round trip through the loader.
	ld := &Loader{}
	loaded, err := ld.Parse(buff)
	assert.NoError(err)
	assert.Equal(prog.Binary(), loaded.Binary())
}
