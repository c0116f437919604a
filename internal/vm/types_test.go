package vm

import "testing"

func TestNewInstruction(t *testing.T) {
	inst := NewInstruction(ADD, 0)
	inst.Operand(uint16(1) << 9) // DR = 1
	inst.Operand(uint16(2) << 6) // SR1 = 2
	inst.Operand(uint16(3))      // SR2 = 3

	if got, want := inst.Encode(), Word(0x1283); got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}

	if got := inst.Opcode(); got != ADD {
		t.Errorf("Opcode() = %s, want %s", got, ADD)
	}
}

func TestCondition(t *testing.T) {
	c := ConditionNegative | ConditionPositive

	if !c.Negative() || c.Zero() || !c.Positive() {
		t.Errorf("Condition %s: N/Z/P = %t/%t/%t, want true/false/true",
			c, c.Negative(), c.Zero(), c.Positive())
	}
}

func TestGPR(t *testing.T) {
	if SP != R6 {
		t.Errorf("SP = %d, want R6", SP)
	}

	if RETP != R7 {
		t.Errorf("RETP = %d, want R7", RETP)
	}

	if NumGPR != 8 {
		t.Errorf("NumGPR = %d, want 8", NumGPR)
	}
}
