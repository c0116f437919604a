package asm

import (
	"fmt"
	"sort"

	"github.com/lc3kit/asm/internal/vm"
)

// SymbolTable maps label names to the absolute address assigned to them during pass 1. Keys are
// case-sensitive identifiers; every key is unique.
type SymbolTable map[string]vm.Word

// Add inserts a new label at the given address. It is an error to add a label more than once.
func (s SymbolTable) Add(name string, addr vm.Word) error {
	if _, ok := s[name]; ok {
		return fmt.Errorf("%w: %s", errDuplicateLabel, name)
	}

	s[name] = addr

	return nil
}

// Offset returns the signed, two's-complement PC-relative offset from pc to the address of name,
// validated against an n-bit slot. It fails if name is undefined or the offset does not fit.
func (s SymbolTable) Offset(name string, pc vm.Word, bits uint8) (int, error) {
	addr, ok := s[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errUndefinedLabel, name)
	}

	offset := int(int32(addr) - int32(pc))
	lo, hi := rangeOf(bits)

	if offset < lo || offset > hi {
		return 0, &rangeErr{label: name, pc: int(pc), value: offset, bits: bits}
	}

	return offset, nil
}

// Lookup returns the address of name and whether it was found.
func (s SymbolTable) Lookup(name string) (vm.Word, bool) {
	addr, ok := s[name]
	return addr, ok
}

// Count returns the number of distinct labels in the table.
func (s SymbolTable) Count() int {
	return len(s)
}

// Dump writes one "NAME 0xHHHH" line per label, sorted by ascending address.
func (s SymbolTable) Dump() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return s[names[i]] < s[names[j]] })

	out := ""
	for _, name := range names {
		out += fmt.Sprintf("%s %s\n", name, s[name])
	}

	return out
}

// rangeErr is a plain, position-free error produced by Offset when a resolved PC-relative offset
// does not fit its slot. The generator attaches source position when it turns this into an
// *OffsetRangeError.
type rangeErr struct {
	label string
	pc    int
	value int
	bits  uint8
}

func (e *rangeErr) Error() string {
	lo, hi := rangeOf(e.bits)
	return fmt.Sprintf("offset to %q from pc %#04x is %d, out of range [%d, %d]", e.label, e.pc, e.value, lo, hi)
}

var (
	errDuplicateLabel = fmt.Errorf("duplicate label")
	errUndefinedLabel = fmt.Errorf("undefined label")
)
