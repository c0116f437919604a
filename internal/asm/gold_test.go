package asm_test

// gold_test.go contains end-to-end tests: a fixture under testdata/ is assembled in full and the
// resulting object code is checked word for word.

import (
	"os"
	"path"
	"testing"

	. "github.com/lc3kit/asm/internal/asm"
	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/vm"
)

func TestAssembler_Gold(t *testing.T) {
	f, err := os.Open(path.Join("testdata", "program.asm"))
	if err != nil {
		t.Fatalf("fixture: %s", err)
	}
	defer f.Close()

	parser := NewParser(log.DefaultLogger())
	parser.Parse(f)

	if err := parser.Err(); err != nil {
		t.Fatalf("parse error: %s", err)
	}

	generator := NewGenerator(parser.Symbols(), parser.Syntax())

	obj, err := generator.Generate()
	if err != nil {
		t.Fatalf("generate error: %s", err)
	}

	if obj.Orig != 0x3000 {
		t.Fatalf("Orig = %s, want 0x3000", obj.Orig)
	}

	want := []vm.Word{
		0x5020, // AND R0, R0, #0
		0x1025, // ADD R0, R0, #5
		0x0401, // BRz SKIP (offset +1)
		0x1021, // ADD R0, R0, #1
		0xf025, // SKIP: TRAP x25
	}

	if len(obj.Code) != len(want) {
		t.Fatalf("Code has %d words, want %d: %#v", len(obj.Code), len(want), obj.Code)
	}

	for i := range want {
		if obj.Code[i] != want[i] {
			t.Errorf("word %d: got %s, want %s", i, obj.Code[i], want[i])
		}
	}
}
