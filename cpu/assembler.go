// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/ram"
)

// asmStatement is a single line of assembler source.
type asmStatement struct {
	Labels      []string        `( @Ident ":" )*`
	Equate      *asmEquate      `( @@`
	Data        *asmData        `| @@`
	Instruction *asmInstruction `| @@ )?`
}

// asmEquate is a `.equ NAME value` constant definition.
type asmEquate struct {
	Name  string      `".equ" @Ident`
	Value *asmOperand `@@`
}

// asmData is a `DB v, v, ...` list of raw bytes.
type asmData struct {
	Values []*asmOperand `( "DB" | "db" ) @@ ( "," @@ )*`
}

// asmInstruction is a mnemonic and its operands.
type asmInstruction struct {
	Mnemonic string        `@Ident`
	Operands []*asmOperand `( @@ ( "," @@ )* )?`
}

// asmOperand is a register, number, character, expression or symbol.
type asmOperand struct {
	Register *string `  @Register`
	Number   *string `| @Number`
	Char     *string `| @Char`
	Expr     *string `| @Expr`
	Symbol   *string `| @Ident`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},
	// Parentheses nest up to two levels deep inside an expression.
	{Name: "Expr", Pattern: `\$\((?:[^()]|\((?:[^()]|\([^()]*\))*\))*\)`},
	{Name: "Char", Pattern: `'[^']'`},
	{Name: "Register", Pattern: `[Rr][0-7]\b`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|0[bB][01]+|[0-9]+`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[:,]`},
})

var asmParser = participle.MustBuild[asmStatement](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Predefined system equates
var sysEquate = func() (equ map[string]int) {
	equ = map[string]int{}
	for key, str := range Defines() {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			continue
		}
		equ[key] = int(value)
	}
	return
}()

// parsed is a statement with its source location and image address.
type parsed struct {
	lineno  int
	line    string
	address int
	stmt    *asmStatement
}

// Assembler is a two pass assembler for LS-8 mnemonic source.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label  map[string]int // Map of labels to addresses.
	Equate map[string]int // Map of resolved equates.
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = map[string]int{}
	asm.Equate = map[string]int{}
	for key, value := range sysEquate {
		asm.Equate[key] = value
	}

	var stmts []parsed
	var equates []parsed
	address := 0

	// Pass 1: parse, and locate labels.
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Debugf("%v: %v", lineno, text)
		}

		line = strings.TrimSpace(text)
		if len(line) == 0 {
			continue
		}

		var stmt *asmStatement
		stmt, err = asmParser.ParseString("", line)
		if err != nil {
			return
		}

		line = stripComment(line)

		for _, label := range stmt.Labels {
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = address
		}

		entry := parsed{lineno: lineno, line: line, address: address, stmt: stmt}

		switch {
		case stmt.Equate != nil:
			for _, prior := range equates {
				if prior.stmt.Equate.Name == stmt.Equate.Name {
					err = ErrEquateDuplicate
					return
				}
			}
			equates = append(equates, entry)
			continue
		case stmt.Data != nil:
			address += len(stmt.Data.Values)
		case stmt.Instruction != nil:
			var size int
			size, err = instructionSize(stmt.Instruction)
			if err != nil {
				return
			}
			address += size
		default:
			continue
		}

		if address > ram.RAM_SIZE {
			err = ErrImageFull
			return
		}

		stmts = append(stmts, entry)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Equates resolve in order, against labels and earlier equates.
	for _, entry := range equates {
		lineno, line = entry.lineno, entry.line
		var value int
		value, err = asm.valueOf(entry.stmt.Equate.Value)
		if err != nil {
			return
		}
		asm.Equate[entry.stmt.Equate.Name] = value
	}

	// Pass 2: generate bytes.
	prog = &Program{}
	for _, entry := range stmts {
		lineno, line = entry.lineno, entry.line

		var bytes []uint8
		switch {
		case entry.stmt.Data != nil:
			bytes, err = asm.encode(entry.stmt.Data.Values)
		case entry.stmt.Instruction != nil:
			inst, _ := LookupInstruction(entry.stmt.Instruction.Mnemonic)
			code, _ := inst.Code()
			bytes, err = asm.encode(entry.stmt.Instruction.Operands)
			bytes = append([]uint8{uint8(code)}, bytes...)
		}
		if err != nil {
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  entry.lineno,
			Address: entry.address,
			Words:   strings.Fields(entry.line),
			Bytes:   bytes,
		})
	}

	return
}

// stripComment removes a trailing comment from a line that lexes cleanly.
func stripComment(line string) string {
	lex, err := asmLexer.LexString("", line)
	if err != nil {
		return line
	}

	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return line
	}

	comment := asmLexer.Symbols()["Comment"]
	for _, tok := range tokens {
		if tok.Type == comment {
			return strings.TrimSpace(line[:tok.Pos.Offset])
		}
	}

	return line
}

// instructionSize validates an instruction's operand count against
// its opcode, and returns its size in bytes.
func instructionSize(ins *asmInstruction) (size int, err error) {
	inst, ok := LookupInstruction(ins.Mnemonic)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	code, _ := inst.Code()
	count := code.OperandCount()
	if len(ins.Operands) != count {
		err = ErrOperandCount
		return
	}

	size = 1 + count
	return
}

// encode evaluates each operand as a byte.
func (asm *Assembler) encode(operands []*asmOperand) (bytes []uint8, err error) {
	for _, op := range operands {
		var value int
		value, err = asm.valueOf(op)
		if err != nil {
			return
		}
		if value < 0 || value > 0xff {
			err = ErrValueRange
			return
		}
		bytes = append(bytes, uint8(value))
	}

	return
}

// valueOf returns the value of an operand.
func (asm *Assembler) valueOf(op *asmOperand) (value int, err error) {
	switch {
	case op.Register != nil:
		value = int((*op.Register)[1] - '0')
	case op.Number != nil:
		var v64 uint64
		v64, err = strconv.ParseUint(*op.Number, 0, 16)
		if err != nil {
			err = ErrParseNumber(*op.Number)
			return
		}
		value = int(v64)
	case op.Char != nil:
		value = int((*op.Char)[1])
	case op.Expr != nil:
		expr := *op.Expr
		value, err = asm.parenEval(expr[2 : len(expr)-1])
	case op.Symbol != nil:
		var ok bool
		value, ok = asm.Label[*op.Symbol]
		if ok {
			return
		}
		value, ok = asm.Equate[*op.Symbol]
		if ok {
			return
		}
		err = ErrLabelMissing(*op.Symbol)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range asm.Equate {
		pred[key] = starlark.MakeInt(val)
	}
	for key, val := range asm.Label {
		pred[key] = starlark.MakeInt(val)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
