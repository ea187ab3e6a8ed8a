package conformance

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
	"github.com/mvandenberg/sc1emu/cpu/m6809"
	"github.com/mvandenberg/sc1emu/testbus"
)

// M6809Adapter drives the primary core through the generic vector schema.
type M6809Adapter struct {
	cpu *m6809.CPU
}

// NewM6809Adapter returns an Adapter for the primary 6809 core.
func NewM6809Adapter() *M6809Adapter { return &M6809Adapter{} }

func (a *M6809Adapter) Load(initial State) *testbus.Bus {
	b := testbus.New()
	b.Tracing = true
	for _, r := range initial.RAM {
		b.Mem[r.Address] = r.Value
	}

	a.cpu = m6809.New()
	a.cpu.SetPC(initial.PC)
	a.cpu.A = initial.A
	a.cpu.B = initial.B
	a.cpu.DP = initial.DP
	a.cpu.X = initial.X
	a.cpu.Y = initial.Y
	a.cpu.U = initial.U
	a.cpu.S = initial.S
	a.cpu.CC = flags.CC{}
	a.cpu.CC.FromValue(initial.CC)
	return b
}

func (a *M6809Adapter) RunOne(b *testbus.Bus) {
	a.cpu.TickWithBus(b, bus.Primary)
	for a.cpu.State() != m6809.StateFetch {
		a.cpu.TickWithBus(b, bus.Primary)
	}
}

func (a *M6809Adapter) Snapshot() State {
	return State{
		PC: a.cpu.PC, A: a.cpu.A, B: a.cpu.B, DP: a.cpu.DP,
		X: a.cpu.X, Y: a.cpu.Y, U: a.cpu.U, S: a.cpu.S,
		CC: a.cpu.CC.Value(),
	}
}
