package asm

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/vm"
)

// Generator runs pass 2 over a SyntaxTable and SymbolTable produced by a Parser, encoding every
// statement into a vm.ObjectCode. Pass 2 re-establishes the location counter exactly as pass 1
// did, consulting the same Operation.Size on every statement, so the two passes cannot disagree
// about how many words a statement occupies.
type Generator struct {
	symbols SymbolTable
	syntax  SyntaxTable
	log     *log.Logger
}

// NewGenerator creates a Generator over an already-parsed program.
func NewGenerator(symbols SymbolTable, syntax SyntaxTable) *Generator {
	return &Generator{
		symbols: symbols,
		syntax:  syntax,
		log:     log.DefaultLogger(),
	}
}

// Generate runs pass 2, producing the assembled program's object code.
func (g *Generator) Generate() (vm.ObjectCode, error) {
	var obj vm.ObjectCode

	var (
		loc     int
		started bool
	)

	for _, si := range g.syntax {
		switch op := si.Operation.(type) {
		case *Origin:
			if !started {
				obj.Orig = op.Addr
				loc = int(op.Addr)
				started = true
			}

			continue
		case *End:
			return obj, nil
		}

		if !started {
			return obj, &EncodeError{File: si.Filename, Line: si.Line, Reason: "missing .ORIG"}
		}

		words, err := si.Generate(g.symbols, vm.Word(loc))
		if err != nil {
			return obj, wrapEncodeError(si, err)
		}

		obj.Code = append(obj.Code, words...)

		loc += si.Size()
		if loc > 0xffff {
			return obj, &EncodeError{File: si.Filename, Line: si.Line, Reason: "location counter overflow"}
		}
	}

	return obj, nil
}

func wrapEncodeError(si *SourceInfo, err error) error {
	var re *rangeErr
	if errors.As(err, &re) {
		return &OffsetRangeError{
			File: si.Filename, Line: si.Line, Label: re.label, PC: re.pc, Value: re.value, Bits: re.bits,
		}
	}

	return &EncodeError{File: si.Filename, Line: si.Line, Reason: err.Error()}
}

// WriteTo writes the object code in the raw big-endian format: the origin word followed by each
// code word, two bytes each, high byte first.
func (g *Generator) WriteTo(out io.Writer) (int64, error) {
	obj, err := g.Generate()
	if err != nil {
		return 0, err
	}

	buf := bufio.NewWriter(out)

	words := append([]vm.Word{obj.Orig}, obj.Code...)
	if err := binary.Write(buf, binary.BigEndian, words); err != nil {
		return 0, err
	}

	if err := buf.Flush(); err != nil {
		return 0, err
	}

	return int64(len(words) * 2), nil
}
