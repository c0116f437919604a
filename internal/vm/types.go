package vm

// types.go defines the basic data types the assembler produces: the 16-bit word, the encoded
// instruction, general-purpose register IDs and branch condition flags.

import (
	"fmt"
)

// Word is the base data type the assembler emits. Every memory cell, instruction and operand is a
// 16-bit value.
type Word uint16

func (w Word) String() string {
	return fmt.Sprintf("%0#4x", uint16(w))
}

// Instruction is a value that encodes a single CPU operation. The top four bits hold the opcode;
// the remaining twelve bits hold operands and mode flags.
type Instruction Word

// NewInstruction creates an instruction value for the given opcode. opcode is already positioned
// in the top four bits, matching the Opcode constants in ops.go. The operand bits are ORed in
// unshifted; callers are responsible for shifting fields (DR, SR1, ...) into position first.
func NewInstruction(opcode Opcode, operands uint16) Instruction {
	val := uint16(opcode) & 0xf000
	val |= operands & 0x0fff

	return Instruction(val)
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s (OP: %s)", Word(i), i.Opcode())
}

// Operand ORs additional operand bits into the low 12 bits of the instruction. Callers build up an
// instruction by calling Operand once per field, in bit-position order.
func (i *Instruction) Operand(operand uint16) {
	*i |= Instruction(operand) & 0x0fff
}

// Encode returns the instruction as a plain word, ready to be written to object code.
func (i Instruction) Encode() Word {
	return Word(i)
}

// Opcode returns the instruction's opcode, stored in the top four bits.
func (i Instruction) Opcode() Opcode {
	return Opcode(i & 0xf000)
}

// GPR is the ID of a general-purpose register.
type GPR uint8

// General purpose registers.
const (
	R0 = GPR(iota)
	R1
	R2
	R3
	R4
	R5
	R6
	R7

	NumGPR             // Count of general purpose registers.
	SP     = R6        // Current stack is in R6.
	RETP   = R7        // Subroutine return address is in R7.
	BadGPR = GPR(0xff) // Invalid sentinel value; not a real register.
)

// Condition represents the NZP condition-code operand of a BR instruction.
type Condition uint8

// Condition flags.
const (
	ConditionPositive = Condition(1 << iota) // P
	ConditionZero                            // Z
	ConditionNegative                        // N
)

func (c Condition) String() string {
	return fmt.Sprintf("(N:%t Z:%t P:%t)", c.Negative(), c.Zero(), c.Positive())
}

// Negative returns true if the N flag is set.
func (c Condition) Negative() bool {
	return c&ConditionNegative != 0
}

// Zero returns true if the Z flag is set.
func (c Condition) Zero() bool {
	return c&ConditionZero != 0
}

// Positive returns true if the P flag is set.
func (c Condition) Positive() bool {
	return c&ConditionPositive != 0
}
