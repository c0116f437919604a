package asm

import (
	"fmt"
	"strings"

	"github.com/lc3kit/asm/internal/vm"
)

// Operation is the behavior every statement kind -- instruction, directive, or label
// declaration -- implements. Parse validates and stores a statement's operands; Size reports how
// many words the statement contributes to the location counter, consulted identically by pass 1
// and pass 2 so the two passes cannot disagree; Generate produces the statement's encoded words
// once the symbol table is complete.
type Operation interface {
	Parse(opcode string, operands []Token) error
	Size() int
	Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error)
}

// SourceInfo wraps a parsed Operation with its position in the source file, for diagnostics.
// Embedding Operation promotes Parse, Size and Generate, so a *SourceInfo is itself an Operation.
type SourceInfo struct {
	Filename string
	Line     int
	Pos      int
	Text     string

	Operation
}

// Unwrap returns the wrapped Operation.
func (si *SourceInfo) Unwrap() Operation {
	return si.Operation
}

// SyntaxTable is the ordered sequence of statements produced by the parser.
type SyntaxTable []*SourceInfo

// Size returns the total word count of every statement in the table.
func (t SyntaxTable) Size() int {
	size := 0

	for _, stmt := range t {
		size += stmt.Size()
	}

	return size
}

func maskBits(v int, n uint8) uint16 {
	return uint16(v) & (1<<n - 1)
}

// LabelDecl introduces a symbol at the current location counter. It contributes no words.
type LabelDecl struct {
	Name string
}

func (*LabelDecl) Parse(string, []Token) error                      { return nil }
func (*LabelDecl) Size() int                                        { return 0 }
func (*LabelDecl) Generate(SymbolTable, vm.Word) ([]vm.Word, error) { return nil, nil }

// Origin sets the initial location counter. It must appear before any emitting statement and
// contributes no words of its own.
type Origin struct {
	Addr vm.Word
}

func (o *Origin) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotAddress)
	if err != nil {
		return err
	}

	o.Addr = vm.Word(ops[0].Value)

	return nil
}

func (*Origin) Size() int { return 0 }

func (*Origin) Generate(SymbolTable, vm.Word) ([]vm.Word, error) { return nil, nil }

// End terminates assembly; statements after it are ignored by the parser.
type End struct{}

func (*End) Parse(_ string, operands []Token) error {
	_, err := parseOperands(operands)
	return err
}

func (*End) Size() int { return 0 }

func (*End) Generate(SymbolTable, vm.Word) ([]vm.Word, error) { return nil, nil }

// Fill emits exactly one word: either a literal value or the resolved address of a label.
type Fill struct {
	Value   int
	Label   string
	IsLabel bool
}

func (f *Fill) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotValueOrLabel)
	if err != nil {
		return err
	}

	if ops[0].Kind == OperandLabel {
		f.IsLabel = true
		f.Label = ops[0].Label
	} else {
		f.Value = ops[0].Value
	}

	return nil
}

func (*Fill) Size() int { return 1 }

func (f *Fill) Generate(symbols SymbolTable, _ vm.Word) ([]vm.Word, error) {
	if !f.IsLabel {
		return []vm.Word{vm.Word(uint16(f.Value))}, nil
	}

	addr, ok := symbols.Lookup(f.Label)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUndefinedLabel, f.Label)
	}

	return []vm.Word{addr}, nil
}

// Blkw reserves N zero-initialized words. Size and Generate both consult N, so the two passes
// cannot disagree about how many words a .BLKW directive occupies.
type Blkw struct {
	N int
}

func (b *Blkw) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotCount)
	if err != nil {
		return err
	}

	b.N = ops[0].Value

	return nil
}

func (b *Blkw) Size() int { return b.N }

func (b *Blkw) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	return make([]vm.Word, b.N), nil
}

// Stringz emits its payload packed two 8-bit code units per word, high byte first, followed by a
// terminating NUL.
type Stringz struct {
	Payload string
}

func (s *Stringz) Parse(_ string, operands []Token) error {
	if len(operands) != 1 {
		return fmt.Errorf("%w: expected 1 operand, got %d", ErrOperand, len(operands))
	}

	if operands[0].Kind != String {
		return fmt.Errorf("%w: expected string literal, got %s", ErrOperand, operands[0])
	}

	s.Payload = operands[0].Str

	return nil
}

func (s *Stringz) Size() int {
	return (len(s.Payload) + 2) / 2
}

func (s *Stringz) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	words := make([]vm.Word, s.Size())

	for i := 0; i < len(s.Payload); i += 2 {
		hi := vm.Word(s.Payload[i]) << 8

		var lo vm.Word
		if i+1 < len(s.Payload) {
			lo = vm.Word(s.Payload[i+1])
		}

		words[i/2] = hi | lo
	}

	return words, nil
}

// ADD computes SR1 plus either SR2 or a signed 5-bit immediate and stores the result in DR.
type ADD struct {
	DR, SR1 int
	Src     Operand
}

func (a *ADD) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotRegister, slotRegisterOrImm5)
	if err != nil {
		return err
	}

	a.DR, a.SR1, a.Src = ops[0].Reg, ops[1].Reg, ops[2]

	return nil
}

func (*ADD) Size() int { return 1 }

func (a *ADD) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.ADD, 0)
	inst.Operand(uint16(a.DR) << 9)
	inst.Operand(uint16(a.SR1) << 6)

	if a.Src.Kind == OperandRegister {
		inst.Operand(uint16(a.Src.Reg))
	} else {
		inst.Operand(1<<5 | maskBits(a.Src.Value, 5))
	}

	return []vm.Word{inst.Encode()}, nil
}

// AND computes the bitwise AND of SR1 and either SR2 or a signed 5-bit immediate, storing the
// result in DR.
type AND struct {
	DR, SR1 int
	Src     Operand
}

func (a *AND) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotRegister, slotRegisterOrImm5)
	if err != nil {
		return err
	}

	a.DR, a.SR1, a.Src = ops[0].Reg, ops[1].Reg, ops[2]

	return nil
}

func (*AND) Size() int { return 1 }

func (a *AND) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.AND, 0)
	inst.Operand(uint16(a.DR) << 9)
	inst.Operand(uint16(a.SR1) << 6)

	if a.Src.Kind == OperandRegister {
		inst.Operand(uint16(a.Src.Reg))
	} else {
		inst.Operand(1<<5 | maskBits(a.Src.Value, 5))
	}

	return []vm.Word{inst.Encode()}, nil
}

// BR branches to Target if any of the condition codes set in Cond match the processor's
// condition register. A bare BR with no suffix is equivalent to BRnzp.
type BR struct {
	Cond   vm.Condition
	Target string
}

func (b *BR) Parse(opcode string, operands []Token) error {
	suffix := strings.ToUpper(opcode)[2:]

	if !validBRSuffix(suffix) {
		return fmt.Errorf("%w: invalid branch condition in %q", ErrOpcode, opcode)
	}

	if suffix == "" {
		b.Cond = vm.ConditionNegative | vm.ConditionZero | vm.ConditionPositive
	} else {
		for _, c := range suffix {
			switch c {
			case 'N':
				b.Cond |= vm.ConditionNegative
			case 'Z':
				b.Cond |= vm.ConditionZero
			case 'P':
				b.Cond |= vm.ConditionPositive
			}
		}
	}

	ops, err := parseOperands(operands, slotLabel)
	if err != nil {
		return err
	}

	b.Target = ops[0].Label

	return nil
}

func (*BR) Size() int { return 1 }

func (b *BR) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(b.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.BR, 0)

	var cond uint16
	if b.Cond.Negative() {
		cond |= 1 << 11
	}

	if b.Cond.Zero() {
		cond |= 1 << 10
	}

	if b.Cond.Positive() {
		cond |= 1 << 9
	}

	inst.Operand(cond)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// JMP transfers control to the address in Base.
type JMP struct {
	Base int
}

func (j *JMP) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister)
	if err != nil {
		return err
	}

	j.Base = ops[0].Reg

	return nil
}

func (*JMP) Size() int { return 1 }

func (j *JMP) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.JMP, 0)
	inst.Operand(uint16(j.Base) << 6)

	return []vm.Word{inst.Encode()}, nil
}

// RET transfers control to the address in R7. It assembles to the same word as JMP R7.
type RET struct{}

func (*RET) Parse(_ string, operands []Token) error {
	_, err := parseOperands(operands)
	return err
}

func (*RET) Size() int { return 1 }

func (*RET) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.JMP, 0)
	inst.Operand(uint16(vm.RETP) << 6)

	return []vm.Word{inst.Encode()}, nil
}

// RTI returns from a trap or interrupt service routine.
type RTI struct{}

func (*RTI) Parse(_ string, operands []Token) error {
	_, err := parseOperands(operands)
	return err
}

func (*RTI) Size() int { return 1 }

func (*RTI) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	return []vm.Word{vm.NewInstruction(vm.RTI, 0).Encode()}, nil
}

// JSR saves the return address in R7 and jumps to Target, PC-relative.
type JSR struct {
	Target string
}

func (j *JSR) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotLabel)
	if err != nil {
		return err
	}

	j.Target = ops[0].Label

	return nil
}

func (*JSR) Size() int { return 1 }

func (j *JSR) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(j.Target, pc+1, 11)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.JSR, 0)
	inst.Operand(1 << 11)
	inst.Operand(maskBits(offset, 11))

	return []vm.Word{inst.Encode()}, nil
}

// JSRR saves the return address in R7 and jumps to the address in Base.
type JSRR struct {
	Base int
}

func (j *JSRR) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister)
	if err != nil {
		return err
	}

	j.Base = ops[0].Reg

	return nil
}

func (*JSRR) Size() int { return 1 }

func (j *JSRR) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.JSR, 0) // Bit 11 clear distinguishes JSRR from JSR.
	inst.Operand(uint16(j.Base) << 6)

	return []vm.Word{inst.Encode()}, nil
}

// LD loads DR from the word at Target, PC-relative.
type LD struct {
	DR     int
	Target string
}

func (l *LD) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotLabel)
	if err != nil {
		return err
	}

	l.DR, l.Target = ops[0].Reg, ops[1].Label

	return nil
}

func (*LD) Size() int { return 1 }

func (l *LD) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(l.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.LD, 0)
	inst.Operand(uint16(l.DR) << 9)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// LDI loads DR from the word at the address stored at Target, PC-relative.
type LDI struct {
	DR     int
	Target string
}

func (l *LDI) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotLabel)
	if err != nil {
		return err
	}

	l.DR, l.Target = ops[0].Reg, ops[1].Label

	return nil
}

func (*LDI) Size() int { return 1 }

func (l *LDI) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(l.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.LDI, 0)
	inst.Operand(uint16(l.DR) << 9)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// LEA loads DR with the address of Target, PC-relative.
type LEA struct {
	DR     int
	Target string
}

func (l *LEA) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotLabel)
	if err != nil {
		return err
	}

	l.DR, l.Target = ops[0].Reg, ops[1].Label

	return nil
}

func (*LEA) Size() int { return 1 }

func (l *LEA) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(l.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.LEA, 0)
	inst.Operand(uint16(l.DR) << 9)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// ST stores SR to the word at Target, PC-relative.
type ST struct {
	SR     int
	Target string
}

func (s *ST) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotLabel)
	if err != nil {
		return err
	}

	s.SR, s.Target = ops[0].Reg, ops[1].Label

	return nil
}

func (*ST) Size() int { return 1 }

func (s *ST) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(s.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.ST, 0)
	inst.Operand(uint16(s.SR) << 9)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// STI stores SR to the word at the address stored at Target, PC-relative.
type STI struct {
	SR     int
	Target string
}

func (s *STI) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotLabel)
	if err != nil {
		return err
	}

	s.SR, s.Target = ops[0].Reg, ops[1].Label

	return nil
}

func (*STI) Size() int { return 1 }

func (s *STI) Generate(symbols SymbolTable, pc vm.Word) ([]vm.Word, error) {
	offset, err := symbols.Offset(s.Target, pc+1, 9)
	if err != nil {
		return nil, err
	}

	inst := vm.NewInstruction(vm.STI, 0)
	inst.Operand(uint16(s.SR) << 9)
	inst.Operand(maskBits(offset, 9))

	return []vm.Word{inst.Encode()}, nil
}

// LDR loads DR from the word at Base plus a signed 6-bit offset.
type LDR struct {
	DR, Base, Offset int
}

func (l *LDR) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotRegister, slotOffset6)
	if err != nil {
		return err
	}

	l.DR, l.Base, l.Offset = ops[0].Reg, ops[1].Reg, ops[2].Value

	return nil
}

func (*LDR) Size() int { return 1 }

func (l *LDR) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.LDR, 0)
	inst.Operand(uint16(l.DR) << 9)
	inst.Operand(uint16(l.Base) << 6)
	inst.Operand(maskBits(l.Offset, 6))

	return []vm.Word{inst.Encode()}, nil
}

// STR stores SR to the word at Base plus a signed 6-bit offset.
type STR struct {
	SR, Base, Offset int
}

func (s *STR) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotRegister, slotOffset6)
	if err != nil {
		return err
	}

	s.SR, s.Base, s.Offset = ops[0].Reg, ops[1].Reg, ops[2].Value

	return nil
}

func (*STR) Size() int { return 1 }

func (s *STR) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.STR, 0)
	inst.Operand(uint16(s.SR) << 9)
	inst.Operand(uint16(s.Base) << 6)
	inst.Operand(maskBits(s.Offset, 6))

	return []vm.Word{inst.Encode()}, nil
}

// NOT computes the bitwise complement of SR and stores the result in DR. Its low six bits are
// always 111111.
type NOT struct {
	DR, SR int
}

func (n *NOT) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotRegister, slotRegister)
	if err != nil {
		return err
	}

	n.DR, n.SR = ops[0].Reg, ops[1].Reg

	return nil
}

func (*NOT) Size() int { return 1 }

func (n *NOT) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.NOT, 0)
	inst.Operand(uint16(n.DR) << 9)
	inst.Operand(uint16(n.SR) << 6)
	inst.Operand(0x3f)

	return []vm.Word{inst.Encode()}, nil
}

// TRAP transfers control to the service routine at Vector.
type TRAP struct {
	Vector int
}

func (t *TRAP) Parse(_ string, operands []Token) error {
	ops, err := parseOperands(operands, slotTrapVect8)
	if err != nil {
		return err
	}

	t.Vector = ops[0].Value

	return nil
}

func (*TRAP) Size() int { return 1 }

func (t *TRAP) Generate(SymbolTable, vm.Word) ([]vm.Word, error) {
	inst := vm.NewInstruction(vm.TRAP, 0)
	inst.Operand(uint16(t.Vector))

	return []vm.Word{inst.Encode()}, nil
}
