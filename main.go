// Command lc3asm is a two-pass assembler for the LC-3 educational computer.
package main

import (
	"context"
	"os"

	"github.com/lc3kit/asm/internal/cli"
	"github.com/lc3kit/asm/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Assembler(),
	cmd.Dump(),
	cmd.REPL(),
}

// Entry point.
func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
