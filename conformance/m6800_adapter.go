package conformance

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
	"github.com/mvandenberg/sc1emu/cpu/m6800"
	"github.com/mvandenberg/sc1emu/testbus"
)

// M6800Adapter drives the secondary core through the generic vector
// schema. The 6800 has no U or DP register; those State fields are
// simply never touched and stay zero on both sides of a comparison.
type M6800Adapter struct {
	cpu *m6800.CPU
}

// NewM6800Adapter returns an Adapter for the secondary 6800 core.
func NewM6800Adapter() *M6800Adapter { return &M6800Adapter{} }

func (a *M6800Adapter) Load(initial State) *testbus.Bus {
	b := testbus.New()
	b.Tracing = true
	for _, r := range initial.RAM {
		b.Mem[r.Address] = r.Value
	}

	a.cpu = m6800.New()
	a.cpu.SetPC(initial.PC)
	a.cpu.A = initial.A
	a.cpu.B = initial.B
	a.cpu.X = initial.X
	a.cpu.SP = initial.S
	a.cpu.CC = flags.CC{}
	a.cpu.CC.FromValue(initial.CC)
	return b
}

func (a *M6800Adapter) RunOne(b *testbus.Bus) {
	a.cpu.TickWithBus(b, bus.Secondary)
	for !a.cpu.State() {
		a.cpu.TickWithBus(b, bus.Secondary)
	}
}

func (a *M6800Adapter) Snapshot() State {
	return State{
		PC: a.cpu.PC, A: a.cpu.A, B: a.cpu.B,
		X: a.cpu.X, S: a.cpu.SP,
		CC: a.cpu.CC.Value(),
	}
}
