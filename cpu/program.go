package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is a source line with its location in the image and the bytes
// it generated.
type Line struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
}

// Program is a memory image annotated with its source lines.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the source line that generated the byte at pc.
func (prog *Program) Debug(pc int) (dbg Debug) {
	for n, line := range prog.Lines {
		if pc >= line.Address && pc < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: pc - line.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
// Gaps between lines are zero filled.
func (prog *Program) Binary() (bins []uint8) {
	for address, value := range prog.Bytes() {
		for len(bins) < address {
			bins = append(bins, 0)
		}
		bins = append(bins, value)
	}

	return
}

// Bytes iterates over each address and byte of the program.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Address+n, value) {
					return
				}
			}
		}
	}
}

// WriteImage writes the program in the loader's text format, one byte
// per line, with the source of each line as a comment.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	for address, value := range prog.Binary() {
		comment := ""
		dbg := prog.Debug(address)
		if dbg.Line != nil && dbg.Index == 0 && len(dbg.Words) != 0 {
			comment = " # " + strings.Join(dbg.Words, " ")
		}
		_, err = fmt.Fprintf(w, "%08b%v\n", value, comment)
		if err != nil {
			return
		}
	}

	return
}
