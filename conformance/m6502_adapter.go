package conformance

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/m6502"
	"github.com/mvandenberg/sc1emu/testbus"
)

// M6502Adapter drives the m6502 core through the generic vector schema.
// The 6502 has no separate B, DP, U or Y-and-X-both-16-bit registers in
// this schema's sense; X and Y map directly, the status byte maps to
// CC, and B/DP/U stay zero on both sides of a comparison. No 6502
// vector in this module's test fabric ever carries an "internal" cycle
// entry (§6), matching this core's genuinely per-cycle bus trace.
type M6502Adapter struct {
	cpu *m6502.CPU
}

// NewM6502Adapter returns an Adapter for the m6502 core.
func NewM6502Adapter() *M6502Adapter { return &M6502Adapter{} }

func (a *M6502Adapter) Load(initial State) *testbus.Bus {
	b := testbus.New()
	b.Tracing = true
	for _, r := range initial.RAM {
		b.Mem[r.Address] = r.Value
	}

	a.cpu = m6502.New()
	a.cpu.SetPC(initial.PC)
	a.cpu.A = initial.A
	a.cpu.X = uint8(initial.X)
	a.cpu.Y = uint8(initial.Y)
	a.cpu.SP = uint8(initial.S)
	a.cpu.SetStatus(initial.CC)
	return b
}

func (a *M6502Adapter) RunOne(b *testbus.Bus) {
	a.cpu.TickWithBus(b, bus.Primary)
	for !a.cpu.State() {
		a.cpu.TickWithBus(b, bus.Primary)
	}
}

func (a *M6502Adapter) Snapshot() State {
	return State{
		PC: a.cpu.PC, A: a.cpu.A, X: uint16(a.cpu.X), Y: uint16(a.cpu.Y),
		S:  uint16(a.cpu.SP),
		CC: a.cpu.Status(false),
	}
}
