// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"log"
)

// Machine is one independent execution context bound to a shared Program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int64                 // Current program counter.
	Register [REGISTER_COUNT]int64 // Register bank, 'a' through 'z'.
	In       Queue                 // Incoming message queue.
	Out      Queue                 // Outgoing message queue.

	Steps int // Instruction steps counter.
	Sent  int // Values sent counter.

	Program *Program // Reference to the shared program.
}

// NewMachine creates a new machine bound to a program. All registers start
// at zero and both queues start empty.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	return
}

// Reset the machine state.
// - Clears the registers and both queues.
// - Zeros the program counter and statistics counters.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	clear(m.Register[:])
	m.In.Reset()
	m.Out.Reset()
	m.Pc = 0
	m.Steps = 0
	m.Sent = 0
}

// SetRegister sets a register to a value.
func (m *Machine) SetRegister(reg Register, value int64) {
	m.Register[reg] = value
}

// GetRegister gets the current value of a register.
func (m *Machine) GetRegister(reg Register) int64 {
	return m.Register[reg]
}

// Eval returns the integer value of an operand against the current machine
// state. Evaluation has no side effects.
func (m *Machine) Eval(op Operand) (value int64, err error) {
	switch op.Kind {
	case OPERAND_LIT:
		value = op.Value
	case OPERAND_REG:
		value = m.Register[op.Reg]
	default:
		err = ErrOperandInvalid
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("pc: %v\n", m.Pc)
	for reg := Register(0); reg < REGISTER_COUNT; reg++ {
		text += fmt.Sprintf(" %v: %v\n", reg.String(), m.Register[reg])
	}

	return
}

// Step executes the instruction at the current program counter. A program
// counter outside the program signals SIGNAL_HALT without mutating anything.
func (m *Machine) Step() (sig Signal, err error) {
	if m.Pc < 0 || m.Pc >= int64(len(m.Program.Opcodes)) {
		sig = SIGNAL_HALT
		return
	}

	instr := m.Program.Opcodes[m.Pc].Instr

	if m.Verbose {
		log.Printf("%3d: %v", m.Pc, instr)
	}

	sig, err = m.Execute(instr)
	if err != nil {
		return
	}

	m.Steps += 1

	return
}

// Execute executes a single decoded instruction.
//
// A receive on an empty input queue signals SIGNAL_BLOCKED and leaves the
// program counter in place, so the instruction is retried on the machine's
// next step.
func (m *Machine) Execute(instr Instruction) (sig Signal, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(instr), err)
		}
	}()

	if instr.Op.RegisterTarget() && instr.X.Kind != OPERAND_REG {
		err = ErrRegisterInvalid
		return
	}

	switch instr.Op {
	case OP_SND:
		var value int64
		value, err = m.Eval(instr.X)
		if err != nil {
			return
		}
		m.Out.Push(value)
		m.Sent += 1
		m.Pc += 1
		sig = SIGNAL_SENT
	case OP_SET:
		var value int64
		value, err = m.Eval(instr.Y)
		if err != nil {
			return
		}
		m.SetRegister(instr.X.Reg, value)
		m.Pc += 1
	case OP_ADD:
		var value int64
		value, err = m.Eval(instr.Y)
		if err != nil {
			return
		}
		m.SetRegister(instr.X.Reg, m.GetRegister(instr.X.Reg)+value)
		m.Pc += 1
	case OP_MUL:
		var value int64
		value, err = m.Eval(instr.Y)
		if err != nil {
			return
		}
		m.SetRegister(instr.X.Reg, m.GetRegister(instr.X.Reg)*value)
		m.Pc += 1
	case OP_MOD:
		var value int64
		value, err = m.Eval(instr.Y)
		if err != nil {
			return
		}
		if value == 0 {
			err = ErrModuloZero
			return
		}
		m.SetRegister(instr.X.Reg, m.GetRegister(instr.X.Reg)%value)
		m.Pc += 1
	case OP_RCV:
		value, ok := m.In.Pop()
		if !ok {
			sig = SIGNAL_BLOCKED
			return
		}
		m.SetRegister(instr.X.Reg, value)
		m.Pc += 1
	case OP_JGZ:
		var test int64
		test, err = m.Eval(instr.X)
		if err != nil {
			return
		}
		if test > 0 {
			var offset int64
			offset, err = m.Eval(instr.Y)
			if err != nil {
				return
			}
			m.Pc += offset
		} else {
			m.Pc += 1
		}
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}
