package machine

import (
	"iter"
)

// Opcode is an assembled instruction with its source location.
type Opcode struct {
	LineNo int
	Pc     int
	Words  []string
	Instr  Instruction
}

// Program is an immutable, ordered instruction sequence. A program is shared
// read-only by every machine bound to it and is never mutated after assembly.
type Program struct {
	Opcodes []Opcode
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Debug returns the opcode at a program counter, or nil if the counter is
// outside the program.
func (prog *Program) Debug(pc int64) (op *Opcode) {
	if pc < 0 || pc >= int64(len(prog.Opcodes)) {
		return
	}

	return &prog.Opcodes[pc]
}

// Instructions iterates over the program counter and instruction pairs.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, instr Instruction) bool) {
		for n, op := range prog.Opcodes {
			if !yield(n, op.Instr) {
				return
			}
		}
	}
}
