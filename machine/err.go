package machine

import (
	"errors"

	"github.com/ezrec/tandem/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrOperandInvalid  = errors.New(f("operand invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrModuloZero      = errors.New(f("modulo by zero"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
