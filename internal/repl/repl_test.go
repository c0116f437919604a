package repl

import (
	"testing"

	"github.com/lc3kit/asm/internal/log"
)

// newTestShell builds a Shell without going through New, since New requires a real terminal file
// descriptor. tryLine only touches source and log, so this is sufficient to exercise it.
func newTestShell() *Shell {
	sh := &Shell{log: log.DefaultLogger()}
	sh.source.WriteString(defaultOrigin)

	return sh
}

func TestShell_TryLine(t *testing.T) {
	sh := newTestShell()

	obj, err := sh.tryLine("AND R0, R0, #0")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(obj.Code) != 1 || obj.Code[0] != 0x5020 {
		t.Fatalf("got %#v, want one word 0x5020", obj.Code)
	}

	obj, err = sh.tryLine("ADD R0, R0, #5")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(obj.Code) != 2 || obj.Code[1] != 0x1025 {
		t.Fatalf("got %#v, want a second word 0x1025", obj.Code)
	}
}

func TestShell_TryLine_BadInputIsNotCommitted(t *testing.T) {
	sh := newTestShell()

	if _, err := sh.tryLine("AND R0, R0, #0"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	before := sh.source.String()

	if _, err := sh.tryLine("FROB R0"); err == nil {
		t.Fatal("expected an error for an unknown opcode")
	}

	if sh.source.String() != before {
		t.Error("a failed line must not become part of the session")
	}

	obj, err := sh.tryLine("ADD R0, R0, #1")
	if err != nil {
		t.Fatalf("unexpected error after retyping: %s", err)
	}

	if len(obj.Code) != 2 {
		t.Fatalf("got %d words, want 2: the bad line must not have been counted", len(obj.Code))
	}
}
