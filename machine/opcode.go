package machine

import (
	"fmt"
)

// Op is an instruction operation type.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_SND = Op(0) // snd
	OP_SET = Op(1) // set
	OP_ADD = Op(2) // add
	OP_MUL = Op(3) // mul
	OP_MOD = Op(4) // mod
	OP_RCV = Op(5) // rcv
	OP_JGZ = Op(6) // jgz
)

// Operands returns the number of operands the operation requires.
func (op Op) Operands() int {
	switch op {
	case OP_SND, OP_RCV:
		return 1
	default:
		return 2
	}
}

// RegisterTarget returns true if the operation's first operand must be a
// register reference.
func (op Op) RegisterTarget() bool {
	switch op {
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_RCV:
		return true
	default:
		return false
	}
}

// Signal is the control result of executing a single instruction.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIGNAL_NONE    = Signal(0) // none
	SIGNAL_HALT    = Signal(1) // halt
	SIGNAL_SENT    = Signal(2) // sent
	SIGNAL_BLOCKED = Signal(3) // blocked
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Op Op
	X  Operand
	Y  Operand
}

// MakeSnd creates a send instruction.
func MakeSnd(x Operand) Instruction {
	return Instruction{Op: OP_SND, X: x}
}

// MakeSet creates a register assignment instruction.
func MakeSet(x Register, y Operand) Instruction {
	return Instruction{Op: OP_SET, X: MakeReg(x), Y: y}
}

// MakeAdd creates an addition instruction.
func MakeAdd(x Register, y Operand) Instruction {
	return Instruction{Op: OP_ADD, X: MakeReg(x), Y: y}
}

// MakeMul creates a multiplication instruction.
func MakeMul(x Register, y Operand) Instruction {
	return Instruction{Op: OP_MUL, X: MakeReg(x), Y: y}
}

// MakeMod creates a remainder instruction.
func MakeMod(x Register, y Operand) Instruction {
	return Instruction{Op: OP_MOD, X: MakeReg(x), Y: y}
}

// MakeRcv creates a receive instruction.
func MakeRcv(x Register) Instruction {
	return Instruction{Op: OP_RCV, X: MakeReg(x)}
}

// MakeJgz creates a jump-if-greater-than-zero instruction.
func MakeJgz(x, y Operand) Instruction {
	return Instruction{Op: OP_JGZ, X: x, Y: y}
}

// String returns the assembly language representation of the instruction.
func (instr Instruction) String() (out string) {
	if instr.Op.Operands() == 1 {
		out = fmt.Sprintf("%v %v", instr.Op.String(), instr.X.String())
	} else {
		out = fmt.Sprintf("%v %v %v", instr.Op.String(), instr.X.String(), instr.Y.String())
	}

	return
}
