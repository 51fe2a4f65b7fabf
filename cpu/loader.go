package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/ls8/ram"
)

// Loader parses the textual binary program image format.
//
// Each line holds one byte as binary digits, optionally followed by a
// '#' comment. Blank and comment-only lines are skipped.
type Loader struct {
	Verbose bool // If set, logs each loaded byte.
}

// Parse parses an input stream into a Program, one byte per line.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, comment, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrParseBinary
			return
		}

		if address >= ram.RAM_SIZE {
			err = ErrImageFull
			return
		}

		if ld.Verbose {
			log.Debugf("%02X: %08b %v", address, value, Code(value).String())
		}

		words := strings.Fields(comment)
		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Bytes:   []uint8{uint8(value)},
		})
		address++
	}

	err = scanner.Err()
	return
}
