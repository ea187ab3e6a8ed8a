// Package testbus provides a minimal, fully in-memory bus.Bus used by
// CPU core unit tests and the conformance harness. It never halts, never
// asserts an interrupt unless told to, and optionally records every
// transaction for assertions that care about bus-visible ordering rather
// than just final state.
package testbus

import "github.com/mvandenberg/sc1emu/bus"

// Direction names whether a recorded transaction was a read or a write.
type Direction int

const (
	Read Direction = iota
	Write
)

// Transaction is one recorded bus access.
type Transaction struct {
	Master    bus.Master
	Addr      uint16
	Data      uint8
	Direction Direction
}

// Bus is a flat 64 KiB memory array with no decoding, banking or side
// effects - exactly what a single-step conformance vector or a unit test
// wants, and nothing a real board would ever be.
type Bus struct {
	Mem [0x10000]uint8

	// Trace accumulates every transaction when Tracing is true. Left off
	// by default since most tests only care about final memory/register
	// state.
	Tracing bool
	Trace   []Transaction

	halted    map[bus.Master]bool
	interrupt bus.InterruptState
}

// New returns an empty bus with all memory zeroed.
func New() *Bus {
	return &Bus{halted: make(map[bus.Master]bool)}
}

func (t *Bus) Read(master bus.Master, addr uint16) uint8 {
	v := t.Mem[addr]
	if t.Tracing {
		t.Trace = append(t.Trace, Transaction{Master: master, Addr: addr, Data: v, Direction: Read})
	}
	return v
}

func (t *Bus) Write(master bus.Master, addr uint16, data uint8) {
	t.Mem[addr] = data
	if t.Tracing {
		t.Trace = append(t.Trace, Transaction{Master: master, Addr: addr, Data: data, Direction: Write})
	}
}

func (t *Bus) IsHaltedFor(master bus.Master) bool {
	return t.halted[master]
}

// SetHalted lets a test force arbitration state onto a particular master,
// the way a DMA blitter asserting its hold line would.
func (t *Bus) SetHalted(master bus.Master, halted bool) {
	t.halted[master] = halted
}

func (t *Bus) CheckInterrupts(master bus.Master) bus.InterruptState {
	return t.interrupt
}

// SetInterrupts lets a test assert NMI/IRQ/FIRQ lines directly, the way a
// Tom Harte-style vector's initial state block would.
func (t *Bus) SetInterrupts(state bus.InterruptState) {
	t.interrupt = state
}

// LoadBytes copies data into memory starting at addr, for seeding a
// test's initial RAM image.
func (t *Bus) LoadBytes(addr uint16, data []uint8) {
	copy(t.Mem[addr:], data)
}
