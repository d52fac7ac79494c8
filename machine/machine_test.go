package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mustParse assembles a program from source lines.
func mustParse(t *testing.T, lines ...string) *Program {
	t.Helper()

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	return prog
}

func TestMachine_Step_Halt(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "set a 1")

	table := [](struct {
		name string
		pc   int64
	}){
		{"past_end", 1},
		{"far_past_end", 100},
		{"negative", -1},
		{"far_negative", -100},
	}

	for _, entry := range table {
		m := NewMachine(prog)
		m.Register[0] = 42
		m.In.Push(7)
		m.Pc = entry.pc

		sig, err := m.Step()
		assert.NoError(err, entry.name)
		assert.Equal(SIGNAL_HALT, sig, entry.name)

		// Nothing may mutate on a halt step.
		assert.Equal(entry.pc, m.Pc, entry.name)
		assert.Equal(int64(42), m.Register[0], entry.name)
		assert.Equal(1, m.In.Len(), entry.name)
		assert.Equal(0, m.Steps, entry.name)
	}
}

func TestMachine_Step_Rcv_Blocked(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "rcv a")
	m := NewMachine(prog)

	// A blocked receive never advances, and retrying with the queue
	// still empty yields the identical machine state.
	for range 3 {
		sig, err := m.Step()
		assert.NoError(err)
		assert.Equal(SIGNAL_BLOCKED, sig)
		assert.Equal(int64(0), m.Pc)
		assert.Equal(int64(0), m.Register[0])
	}

	m.In.Push(33)
	sig, err := m.Step()
	assert.NoError(err)
	assert.Equal(SIGNAL_NONE, sig)
	assert.Equal(int64(1), m.Pc)
	assert.Equal(int64(33), m.Register[0])
	assert.True(m.In.Empty())
}

func TestMachine_Execute_Snd(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "snd 5", "snd a")
	m := NewMachine(prog)
	m.Register[0] = -3

	sig, err := m.Step()
	assert.NoError(err)
	assert.Equal(SIGNAL_SENT, sig)

	sig, err = m.Step()
	assert.NoError(err)
	assert.Equal(SIGNAL_SENT, sig)

	assert.Equal([]int64{5, -3}, m.Out.Data)
	assert.Equal(2, m.Sent)
	assert.Equal(int64(2), m.Pc)
}

func TestMachine_Execute_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		instr Instruction
		a     int64
		b     int64
		want  int64
	}){
		{"set_lit", MakeSet(0, MakeLit(10)), 1, 0, 10},
		{"set_reg", MakeSet(0, MakeReg(1)), 1, 5, 5},
		{"add_lit", MakeAdd(0, MakeLit(3)), 10, 0, 13},
		{"add_reg", MakeAdd(0, MakeReg(1)), 10, 5, 15},
		{"add_neg", MakeAdd(0, MakeLit(-4)), 10, 0, 6},
		{"mul_lit", MakeMul(0, MakeLit(3)), 10, 0, 30},
		{"mul_reg", MakeMul(0, MakeReg(1)), 10, 5, 50},
		{"mod_lit", MakeMod(0, MakeLit(3)), 10, 0, 1},
		{"mod_reg", MakeMod(0, MakeReg(1)), 10, 4, 2},
	}

	for _, entry := range table {
		prog := &Program{Opcodes: []Opcode{{LineNo: 1, Pc: 0, Instr: entry.instr}}}
		m := NewMachine(prog)
		m.Register[0] = entry.a
		m.Register[1] = entry.b

		sig, err := m.Step()
		assert.NoError(err, entry.name)
		assert.Equal(SIGNAL_NONE, sig, entry.name)
		assert.Equal(entry.want, m.Register[0], entry.name)
		assert.Equal(int64(1), m.Pc, entry.name)
	}
}

func TestMachine_Execute_ModuloZero(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "mod a 0")
	m := NewMachine(prog)
	m.Register[0] = 10

	_, err := m.Step()
	assert.ErrorIs(err, ErrModuloZero)
	assert.Equal(int64(0), m.Pc)
	assert.Equal(int64(10), m.Register[0])
}

func TestMachine_Execute_Jgz(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		instr  Instruction
		a      int64
		wantPc int64
	}){
		{"taken_forward", MakeJgz(MakeReg(0), MakeLit(4)), 1, 4},
		{"taken_backward", MakeJgz(MakeReg(0), MakeLit(-1)), 1, -1},
		{"not_taken_zero", MakeJgz(MakeReg(0), MakeLit(-1)), 0, 1},
		{"not_taken_negative", MakeJgz(MakeReg(0), MakeLit(4)), -5, 1},
		{"literal_test", MakeJgz(MakeLit(1), MakeLit(3)), 0, 3},
		{"literal_offset_reg", MakeJgz(MakeLit(2), MakeReg(0)), 6, 6},
	}

	for _, entry := range table {
		prog := &Program{Opcodes: []Opcode{{LineNo: 1, Pc: 0, Instr: entry.instr}}}
		m := NewMachine(prog)
		m.Register[0] = entry.a

		sig, err := m.Step()
		assert.NoError(err, entry.name)
		assert.Equal(SIGNAL_NONE, sig, entry.name)
		assert.Equal(entry.wantPc, m.Pc, entry.name)
	}
}

func TestMachine_Execute_BadTarget(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(&Program{})

	// A non-register first operand on a register-target operation is
	// rejected at parse time; Execute still defends against it.
	_, err := m.Execute(Instruction{Op: OP_SET, X: MakeLit(1), Y: MakeLit(2)})
	assert.ErrorIs(err, ErrRegisterInvalid)
	assert.ErrorIs(err, ErrInstruction{})
}

func TestMachine_Eval(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(&Program{})
	m.Register[3] = 77

	value, err := m.Eval(MakeLit(-12))
	assert.NoError(err)
	assert.Equal(int64(-12), value)

	value, err = m.Eval(MakeReg(3))
	assert.NoError(err)
	assert.Equal(int64(77), value)

	_, err = m.Eval(Operand{})
	assert.ErrorIs(err, ErrOperandInvalid)
}

func TestMachine_SendReceive_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	sender := NewMachine(mustParse(t, "snd 1", "snd 2", "snd 3"))
	receiver := NewMachine(mustParse(t, "rcv a", "rcv b", "rcv c"))

	for range 3 {
		sig, err := sender.Step()
		assert.NoError(err)
		assert.Equal(SIGNAL_SENT, sig)
	}

	sender.Out.Drain(&receiver.In)

	for range 3 {
		sig, err := receiver.Step()
		assert.NoError(err)
		assert.Equal(SIGNAL_NONE, sig)
	}

	// FIFO order survives the transfer exactly.
	assert.Equal(int64(1), receiver.Register[0])
	assert.Equal(int64(2), receiver.Register[1])
	assert.Equal(int64(3), receiver.Register[2])
}

func TestMachine_Reset(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "set a 1", "snd a")
	m := NewMachine(prog)

	for range 2 {
		_, err := m.Step()
		assert.NoError(err)
	}
	m.In.Push(9)

	assert.NotEqual(int64(0), m.Pc)
	assert.Equal(2, m.Steps)

	m.Reset()
	assert.Equal(int64(0), m.Pc)
	assert.Equal(int64(0), m.Register[0])
	assert.True(m.In.Empty())
	assert.True(m.Out.Empty())
	assert.Equal(0, m.Steps)
	assert.Equal(0, m.Sent)
}

func TestMachine_Integration_SetAdd(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "set a 10", "add a b")
	m := NewMachine(prog)
	m.Register[1] = 5

	for range prog.Len() {
		_, err := m.Step()
		assert.NoError(err)
	}

	assert.Equal(int64(15), m.Register[0])

	sig, err := m.Step()
	assert.NoError(err)
	assert.Equal(SIGNAL_HALT, sig)
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(&Program{})
	m.Pc = 3
	m.Register[0] = -9

	text := m.String()
	assert.Contains(text, "pc: 3")
	assert.Contains(text, "a: -9")
	assert.Contains(text, "z: 0")
}
