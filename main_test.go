package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lc3kit/asm/internal/cli/cmd"
	"github.com/lc3kit/asm/internal/log"
)

// TestAssembleCommand exercises the asm subcommand end to end -- flag parsing, assembly and
// writing the object file -- against a minimal program. It builds the command with
// cmd.Assembler() directly rather than through main.go's command list.
func TestAssembleCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.asm")
	out := filepath.Join(dir, "hello.o")

	err := os.WriteFile(src, []byte(".ORIG x3000\nAND R0, R0, #0\n.END\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	assembler := cmd.Assembler()

	fs := assembler.FlagSet()
	if err := fs.Parse([]string{"-o", out, src}); err != nil {
		t.Fatal(err)
	}

	logger := log.NewFormattedLogger(os.Stderr)

	code := assembler.Run(context.Background(), fs.Args(), os.Stdout, logger)
	if code != 0 {
		t.Fatalf("asm exited %d", code)
	}

	bs, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if len(bs) != 4 {
		t.Fatalf("expected 4 bytes (orig + 1 word), got %d", len(bs))
	}

	if bs[0] != 0x30 || bs[1] != 0x00 {
		t.Fatalf("expected origin 0x3000, got %#02x%02x", bs[0], bs[1])
	}
}
