package vm

// ops.go enumerates the opcodes of the instruction set. The assembler uses these values only to
// select an encoding; the semantics of each operation are defined by the specification, not by
// this package.

//go:generate go run golang.org/x/tools/cmd/stringer -type=Opcode -output=opcode_string.go

// An Opcode identifies an LC-3 instruction. The ISA has 15 distinct opcodes, plus one reserved
// value that is undefined.
type Opcode uint16

// Opcode constants. The value of each constant is the opcode shifted into the top four bits of an
// instruction word, matching its position in the encoded form.
const (
	BR Opcode = iota << 12
	ADD
	LD
	ST
	JSR
	AND
	LDR
	STR
	RTI
	NOT
	LDI
	STI
	JMP
	RESV
	LEA
	TRAP

	// JSRR and RET are synthetic opcodes, used only by String to name the two
	// special-cased encodings of JSR (bit 11 clear) and JMP (base register R7) under distinct
	// mnemonics. They are never written to object code; WriteTo and friends always emit JSR or
	// JMP.
	JSRR = Opcode(JSR | 0x0f00)
	RET  = Opcode(JMP | 0x0f00)
)
