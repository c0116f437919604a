package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lc3kit/asm/internal/cli"
	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/repl"
)

// REPL is the command that starts an interactive, assemble-as-you-type shell.
//
//	lc3asm repl
func REPL() cli.Command {
	return new(replCmd)
}

type replCmd struct{}

func (replCmd) Description() string {
	return "interactively assemble source a line at a time"
}

func (replCmd) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `repl

Start an interactive shell that assembles each line as it is entered.`)

	return err
}

func (replCmd) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("repl", flag.ExitOnError)
}

func (replCmd) Run(ctx context.Context, _ []string, _ io.Writer, logger *log.Logger) int {
	shell, err := repl.New(os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("repl: cannot start", "err", err)
		return 1
	}

	defer shell.Restore()

	if err := shell.Run(ctx); err != nil {
		logger.Error("repl: exited", "err", err)
		return 1
	}

	return 0
}
