package machine

import (
	"fmt"
	"strconv"
)

const (
	REGISTER_COUNT = 26 // Registers 'a' through 'z'.
)

// Register is a register index, the offset of the register name from 'a'.
type Register int

// MakeRegister converts a register name to its index.
func MakeRegister(name byte) (reg Register, err error) {
	if name < 'a' || name > 'z' {
		err = ErrRegisterInvalid
		return
	}

	reg = Register(name - 'a')

	return
}

// Name returns the register name.
func (reg Register) Name() byte {
	return byte('a' + reg)
}

func (reg Register) String() string {
	return string(reg.Name())
}

// OperandKind is an operand variant tag.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE = OperandKind(0) // none
	OPERAND_LIT  = OperandKind(1) // lit
	OPERAND_REG  = OperandKind(2) // reg
)

// Operand is a single instruction argument, either a literal value or a
// register reference.
type Operand struct {
	Kind  OperandKind
	Value int64
	Reg   Register
}

// MakeLit creates a literal operand.
func MakeLit(value int64) Operand {
	return Operand{Kind: OPERAND_LIT, Value: value}
}

// MakeReg creates a register reference operand.
func MakeReg(reg Register) Operand {
	return Operand{Kind: OPERAND_REG, Reg: reg}
}

// ParseOperand parses an operand token. A single lowercase letter is a
// register reference; anything else must be a signed decimal literal.
func ParseOperand(word string) (op Operand, err error) {
	if len(word) == 1 && word[0] >= 'a' && word[0] <= 'z' {
		var reg Register
		reg, err = MakeRegister(word[0])
		if err != nil {
			return
		}
		op = MakeReg(reg)
		return
	}

	value, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	op = MakeLit(value)

	return
}

// String returns the assembly language representation of the operand.
func (op Operand) String() (out string) {
	switch op.Kind {
	case OPERAND_LIT:
		out = fmt.Sprintf("%v", op.Value)
	case OPERAND_REG:
		out = op.Reg.String()
	default:
		out = "?"
	}

	return
}
