package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lc3kit/asm/internal/asm"
	"github.com/lc3kit/asm/internal/cli"
	"github.com/lc3kit/asm/internal/encoding"
	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/vm"
)

// Assembler is the command that translates LC-3 assembly source into object code.
//
//	lc3asm asm [-format raw|binascii|hex] [-o file] [-symbols] file.asm...
func Assembler() cli.Command {
	return new(assembler)
}

type assembler struct {
	debug   bool
	output  string
	format  string
	symbols bool
}

func (assembler) Description() string {
	return "assemble source code into object code"
}

func (assembler) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `asm [-format raw|binascii|hex] [-o file.o] [-symbols] file.asm...

Assemble one or more source files into a single object.`)

	return err
}

func (a *assembler) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("asm", flag.ExitOnError)
	fs.BoolVar(&a.debug, "debug", false, "enable debug logging")
	fs.StringVar(&a.output, "o", "a.o", "output `filename`")
	fs.StringVar(&a.format, "format", "raw", "output format: raw, binascii, or hex")
	fs.BoolVar(&a.symbols, "symbols", false, "print the symbol table to stderr")

	return fs
}

// Run assembles the named files, in order, as a single program, and writes the encoded object in
// the requested format.
func (a *assembler) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if a.debug {
		log.LogLevel.Set(log.Debug)
	}

	parser := asm.NewParser(logger)

	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			logger.Error("open failed", "file", fn, "err", err)
			return 1
		}

		parser.File(fn)
		parser.Parse(f)
		_ = f.Close()
	}

	if parser.Err() != nil {
		logger.Error("parse error", "err", parser.Err())
		return 1
	}

	symbols := parser.Symbols()
	syntax := parser.Syntax()

	logger.Debug("parsed source", "symbols", symbols.Count(), "size", syntax.Size())

	generator := asm.NewGenerator(symbols, syntax)

	obj, err := generator.Generate()
	if err != nil {
		logger.Error("compile error", "err", err)
		return 1
	}

	bs, err := marshal(a.format, obj)
	if err != nil {
		logger.Error("format error", "format", a.format, "err", err)
		return 1
	}

	out, err := os.Create(a.output)
	if err != nil {
		logger.Error("open failed", "out", a.output, "err", err)
		return 1
	}
	defer out.Close()

	if _, err := out.Write(bs); err != nil {
		logger.Error("I/O error", "out", a.output, "err", err)
		return 1
	}

	if a.symbols {
		fmt.Fprint(os.Stderr, symbols.Dump())
	}

	logger.Debug("compiled object", "out", a.output, "bytes", len(bs), "symbols", symbols.Count())

	return 0
}

func marshal(format string, obj vm.ObjectCode) ([]byte, error) {
	switch format {
	case "raw", "":
		return encoding.Raw{Code: obj}.MarshalBinary()
	case "binascii":
		return encoding.BinASCII{Code: obj}.MarshalText()
	case "hex":
		return encoding.HexASCII{Code: obj}.MarshalText()
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
