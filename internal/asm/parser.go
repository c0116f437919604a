package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/vm"
)

// Parser consumes assembly source one or more times -- Parse may be called repeatedly, for
// instance once per input file -- and accumulates a SyntaxTable and SymbolTable. The first error
// encountered is fatal: it is recorded and subsequent input is not parsed.
type Parser struct {
	log  *log.Logger
	file string

	prototypes map[string]func() Operation

	syntax  SyntaxTable
	symbols SymbolTable
	err     error
}

// NewParser creates a Parser with the default set of instruction and directive prototypes.
func NewParser(logger *log.Logger) *Parser {
	return &Parser{
		log:        logger,
		symbols:    make(SymbolTable),
		prototypes: defaultPrototypes(),
	}
}

func defaultPrototypes() map[string]func() Operation {
	return map[string]func() Operation{
		"ADD":      func() Operation { return new(ADD) },
		"AND":      func() Operation { return new(AND) },
		"JMP":      func() Operation { return new(JMP) },
		"JSRR":     func() Operation { return new(JSRR) },
		"JSR":      func() Operation { return new(JSR) },
		"LD":       func() Operation { return new(LD) },
		"LDI":      func() Operation { return new(LDI) },
		"LDR":      func() Operation { return new(LDR) },
		"LEA":      func() Operation { return new(LEA) },
		"NOT":      func() Operation { return new(NOT) },
		"RET":      func() Operation { return new(RET) },
		"RTI":      func() Operation { return new(RTI) },
		"ST":       func() Operation { return new(ST) },
		"STI":      func() Operation { return new(STI) },
		"STR":      func() Operation { return new(STR) },
		"TRAP":     func() Operation { return new(TRAP) },
		".ORIG":    func() Operation { return new(Origin) },
		".END":     func() Operation { return new(End) },
		".FILL":    func() Operation { return new(Fill) },
		".BLKW":    func() Operation { return new(Blkw) },
		".STRINGZ": func() Operation { return new(Stringz) },
	}
}

// File sets the name attributed to errors and SourceInfo for subsequent calls to Parse.
func (p *Parser) File(name string) {
	p.file = name
}

// Probe registers (or overrides) the prototype instance used to parse the given opcode or
// directive mnemonic. It exists so tests can exercise a single statement type's Parse method
// through the full parser pipeline, without going through the default instruction set.
func (p *Parser) Probe(opcode string, proto Operation) {
	if p.prototypes == nil {
		p.prototypes = make(map[string]func() Operation)
	}

	p.prototypes[strings.ToUpper(opcode)] = func() Operation { return proto }
}

func (p *Parser) newOperation(mnemonic string) Operation {
	upper := strings.ToUpper(mnemonic)

	if ctor, ok := p.prototypes[upper]; ok {
		return ctor()
	}

	if strings.HasPrefix(upper, "BR") {
		return new(BR)
	}

	return nil
}

// Err returns the first error encountered across all calls to Parse, or nil.
func (p *Parser) Err() error {
	return p.err
}

// Syntax returns the accumulated statement table.
func (p *Parser) Syntax() SyntaxTable {
	return p.syntax
}

// Symbols returns the symbol table built from the statements parsed so far. It is populated by
// Parse, which runs pass 1 once all of its input has been read.
func (p *Parser) Symbols() SymbolTable {
	return p.symbols
}

// Parse reads source from r, appending to the parser's SyntaxTable. If the parser already holds
// an error from a previous call, Parse returns immediately without reading.
func (p *Parser) Parse(r io.Reader) {
	if p.err != nil {
		return
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	ended := false

	for scanner.Scan() {
		lineNo++

		if ended {
			continue
		}

		line := scanner.Text()

		stmt, err := p.parseLine(lineNo, line)
		if err != nil {
			p.err = err
			return
		}

		for _, si := range stmt {
			p.syntax = append(p.syntax, si)

			if _, ok := si.Operation.(*End); ok {
				ended = true
			}
		}
	}

	if err := scanner.Err(); err != nil {
		p.err = err
		return
	}

	p.err = p.pass1()
}

// parseLine lexes and parses a single source line, which may yield zero, one, or two statements:
// a bare label declaration shares a line with the statement it precedes.
func (p *Parser) parseLine(lineNo int, line string) ([]*SourceInfo, error) {
	toks, err := lexLine(p.file, lineNo, line)
	if err != nil {
		return nil, err
	}

	var stmts []*SourceInfo

	if len(toks) == 0 {
		return nil, nil
	}

	// Rule: colon-terminated label.
	if toks[0].Kind == Label {
		stmts = append(stmts, &SourceInfo{
			Filename: p.file, Line: lineNo, Pos: toks[0].Pos, Text: toks[0].Text,
			Operation: &LabelDecl{Name: toks[0].Str},
		})

		toks = toks[1:]
	} else if len(toks) >= 2 && toks[0].Kind == Identifier &&
		(toks[1].Kind == Opcode || toks[1].Kind == Directive) {
		// Rule: bare label sharing a line with an instruction or directive.
		stmts = append(stmts, &SourceInfo{
			Filename: p.file, Line: lineNo, Pos: toks[0].Pos, Text: toks[0].Text,
			Operation: &LabelDecl{Name: toks[0].Str},
		})

		toks = toks[1:]
	} else if len(toks) == 1 && toks[0].Kind == Identifier {
		// Rule: a line consisting of only a bare label.
		stmts = append(stmts, &SourceInfo{
			Filename: p.file, Line: lineNo, Pos: toks[0].Pos, Text: toks[0].Text,
			Operation: &LabelDecl{Name: toks[0].Str},
		})

		return stmts, nil
	}

	if len(toks) == 0 {
		return stmts, nil
	}

	head := toks[0]

	// A mnemonic registered only through Probe never matches opcodeNames/directiveNames, so it
	// lexes as a plain Identifier; prototypes is consulted before the token kind is allowed to
	// reject it.
	if head.Kind != Opcode && head.Kind != Directive && head.Kind != Identifier {
		return nil, &SyntaxError{
			File: p.file, Loc: head.Text, Line: lineNo, Pos: head.Pos,
			Err: ErrOpcode,
		}
	}

	op := p.newOperation(head.Text)
	if op == nil {
		return nil, &SyntaxError{
			File: p.file, Loc: head.Text, Line: lineNo, Pos: head.Pos,
			Err: ErrOpcode,
		}
	}

	if err := op.Parse(head.Text, toks[1:]); err != nil {
		return nil, &SyntaxError{
			File: p.file, Loc: head.Text, Line: lineNo, Pos: head.Pos,
			Err: err,
		}
	}

	stmts = append(stmts, &SourceInfo{
		Filename: p.file, Line: lineNo, Pos: head.Pos, Text: head.Text,
		Operation: op,
	})

	return stmts, nil
}

// pass1 scans the accumulated syntax table once, establishing the location counter at the first
// Origin and recording each label's address. It is the sole place the location counter is
// advanced outside of pass 2 (gen.go), and both consult the same Operation.Size.
func (p *Parser) pass1() error {
	symbols := make(SymbolTable)

	var (
		pc      vm.Word
		started bool
	)

	for _, si := range p.syntax {
		switch op := si.Operation.(type) {
		case *Origin:
			if !started {
				pc = op.Addr
				started = true
			}

			continue
		case *End:
			p.symbols = symbols
			return nil
		case *LabelDecl:
			if !started {
				return &SymbolError{File: si.Filename, Line: si.Line, Reason: "missing .ORIG"}
			}

			if err := symbols.Add(op.Name, pc); err != nil {
				return &SymbolError{
					File: si.Filename, Line: si.Line, Symbol: op.Name, Reason: "duplicate label",
				}
			}

			continue
		}

		if !started {
			return &SymbolError{File: si.Filename, Line: si.Line, Reason: "missing .ORIG"}
		}

		pc += vm.Word(si.Size())
	}

	p.symbols = symbols

	return nil
}
