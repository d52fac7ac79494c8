// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package duet

import (
	"log"

	"github.com/ezrec/tandem/machine"
)

const (
	MACHINE_COUNT = 2 // Machines running in lockstep.
)

// PRESET_REGISTER is the distinguishing register; machine N starts with
// register 'p' set to N.
const PRESET_REGISTER = machine.Register('p' - 'a')

// Outcome is the termination state of a run.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_RUNNING    = Outcome(0) // running
	OUTCOME_HALTED     = Outcome(1) // halted
	OUTCOME_DEADLOCKED = Outcome(2) // deadlocked
)

// Duet advances two machines in lockstep against a shared program.
//
// Each turn steps both machines exactly once, then drains each machine's
// output queue into the other's input queue. A send from one step is not
// visible to the partner until the partner's own step for that turn has
// already happened; the drain ordering is part of the execution contract.
type Duet struct {
	Verbose bool // Set to enable verbose logging.

	Machine [MACHINE_COUNT]*machine.Machine // The cooperating machines.
	Program *machine.Program                // Reference to the shared program.

	SendCount int // Values sent by machine 1 to machine 0.

	outcome Outcome
}

// NewDuet creates a pair of machines bound to a shared program, with
// register 'p' preset to each machine's index.
func NewDuet(prog *machine.Program) (duet *Duet) {
	duet = &Duet{
		Program: prog,
	}

	for n := range duet.Machine {
		m := machine.NewMachine(prog)
		m.SetRegister(PRESET_REGISTER, int64(n))
		duet.Machine[n] = m
	}

	return
}

// Outcome returns the current termination state.
func (duet *Duet) Outcome() Outcome {
	return duet.outcome
}

// Reset the run state.
// - Resets both machines and re-applies the register presets.
// - Zeros the send counter.
func (duet *Duet) Reset() {
	for n, m := range duet.Machine {
		m.Reset()
		m.SetRegister(PRESET_REGISTER, int64(n))
	}

	duet.SendCount = 0
	duet.outcome = OUTCOME_RUNNING
}

// step advances a single machine, wrapping any execution error with its
// source location.
func (duet *Duet) step(n int) (sig machine.Signal, err error) {
	m := duet.Machine[n]
	m.Verbose = duet.Verbose

	lineno := 0
	if op := duet.Program.Debug(m.Pc); op != nil {
		lineno = op.LineNo
	}

	sig, err = m.Step()
	if err != nil {
		err = &ErrRuntime{Machine: n, LineNo: lineno, Err: err}
	}

	return
}

// Tick performs one lockstep turn: step both machines, cross-deliver their
// output queues, then evaluate the termination conditions.
//
// Both machines step every turn; a halt on machine 0 does not short-circuit
// machine 1's step for that turn.
func (duet *Duet) Tick() (done bool, err error) {
	sig0, err := duet.step(0)
	if err != nil {
		return
	}
	sig1, err := duet.step(1)
	if err != nil {
		return
	}

	duet.Machine[0].Out.Drain(&duet.Machine[1].In)
	duet.SendCount += duet.Machine[1].Out.Drain(&duet.Machine[0].In)

	// Termination is evaluated only after the drains, so a machine blocked
	// this turn still sees any values its partner produced this turn.
	switch {
	case sig0 == machine.SIGNAL_BLOCKED && sig1 == machine.SIGNAL_BLOCKED:
		duet.outcome = OUTCOME_DEADLOCKED
		done = true
	case sig0 == machine.SIGNAL_HALT || sig1 == machine.SIGNAL_HALT:
		duet.outcome = OUTCOME_HALTED
		done = true
	}

	if duet.Verbose && done {
		log.Printf("duet: %v after %v sends", duet.outcome, duet.SendCount)
	}

	return
}

// Run ticks until the run terminates, and returns the number of values
// machine 1 sent along with the termination outcome.
func (duet *Duet) Run() (count int, outcome Outcome, err error) {
	for {
		var done bool
		done, err = duet.Tick()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	count = duet.SendCount
	outcome = duet.outcome

	return
}
