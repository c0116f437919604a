package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lc3kit/asm/internal/cli"
	"github.com/lc3kit/asm/internal/encoding"
	"github.com/lc3kit/asm/internal/log"
)

// Dump is the command that round-trips an assembled object file through the Intel-Hex encoder,
// for inspecting or archiving an object independent of the three plain formats asm produces.
//
//	lc3asm dump file.o
func Dump() cli.Command {
	return new(dump)
}

type dump struct{}

func (dump) Description() string {
	return "round-trip an object file through the Intel-Hex encoder"
}

func (dump) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `dump file.o

Read a raw object file and print its Intel-Hex encoding.`)

	return err
}

func (dump) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("dump", flag.ExitOnError)
}

func (dump) Run(_ context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) != 1 {
		logger.Error("dump: expected exactly one file argument")
		return 1
	}

	bs, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("read failed", "file", args[0], "err", err)
		return 1
	}

	var raw encoding.Raw
	if err := raw.UnmarshalBinary(bs); err != nil {
		logger.Error("decode failed", "file", args[0], "err", err)
		return 1
	}

	hexEnc := encoding.HexEncoding{}
	hexEnc.Add(raw.Code)

	text, err := hexEnc.MarshalText()
	if err != nil {
		logger.Error("encode failed", "err", err)
		return 1
	}

	if _, err := stdout.Write(text); err != nil {
		logger.Error("I/O error", "err", err)
		return 1
	}

	return 0
}
