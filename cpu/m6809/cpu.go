// Package m6809 implements a Motorola 6809-class CPU core: eight
// architectural registers, three opcode pages, ten addressing-mode
// variants for indexed operands, vectored interrupts and the CWAI/SYNC
// wait states.
//
// Instructions dispatch through a static table keyed by opcode byte
// (see opcode_table.go), each entry
// naming an addressing-mode helper (see addressing.go) and a handler that
// performs the operation and reports the instruction's total cycle
// count. The state machine (ExecState, see state.go) fetches the opcode,
// runs the handler once to compute the resulting register/memory state,
// then holds Execute for the remaining datasheet cycles before returning
// to Fetch - so bus-visible timing matches the reference part even
// though the operand bytes are read in one pass rather than spread
// across the individual cycles that follow. See DESIGN.md for the
// tradeoff this records.
package m6809

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

// CPU is a single 6809 core. Zero value matches the reference part's
// power-on state (CC = I|F set, DP = 0, other registers zero) except
// that New must be called to set the mask bits.
type CPU struct {
	A, B       uint8
	X, Y, U, S uint16
	PC         uint16
	DP         uint8
	CC         flags.CC

	state      ExecState
	cyclesLeft int

	// nmiArmed tracks the reference part's documented quirk: NMI is
	// disabled until the stack pointer S has been loaded at least once
	// after reset, since a stray NMI into an undefined S would corrupt
	// arbitrary memory.
	nmiArmed  bool
	nmiEdge   bool
	firqEdge  bool
	pendingIRQ, pendingFIRQ, pendingNMI bool
}

// New returns a CPU in its documented reset state: interrupts masked,
// direct page zero, execution state Fetch. PC is left at zero; board
// assembly is responsible for the reset-vector fetch (see SPEC_FULL.md
// §9), since only the board knows which bus view of $FFFE/$FFFF to use.
func New() *CPU {
	c := &CPU{}
	c.CC.IRQMask = true
	c.CC.FIRQMask = true
	c.state = StateFetch
	return c
}

// SetPC sets the program counter directly, used by board reset after the
// vector fetch.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// D returns the concatenated 16-bit accumulator (A:B).
func (c *CPU) D() uint16 { return uint16(c.A)<<8 | uint16(c.B) }

// SetD writes the concatenated 16-bit accumulator, splitting it across A
// and B.
func (c *CPU) SetD(v uint16) {
	c.A = uint8(v >> 8)
	c.B = uint8(v)
}

// State reports the CPU's current execution state, mostly useful for
// tests asserting the post-instruction-boundary invariant.
func (c *CPU) State() ExecState { return c.state }

// ClockDivider reports that this core ticks once per system clock cycle.
func (c *CPU) ClockDivider() int { return 1 }

// TickWithBus advances the CPU by one system clock cycle. Returns false
// when the master is halted (by a DMA blitter, for instance) or waiting
// in SYNC with no interrupt pending, matching bus.Component's
// "did work happen" contract.
func (c *CPU) TickWithBus(b bus.Bus, m bus.Master) bool {
	if b.IsHaltedFor(m) {
		return false
	}

	switch c.state {
	case StateSyncWait:
		if b.CheckInterrupts(m).Any() {
			c.state = StateFetch
		}
		return c.state == StateFetch

	case StateWaitForInterrupt:
		intr := b.CheckInterrupts(m)
		if c.interruptReady(intr) {
			c.enterInterrupt(b, m, intr)
		}
		return true

	case StateExecute:
		c.cyclesLeft--
		if c.cyclesLeft <= 0 {
			c.state = StateFetch
		}
		return true

	case StateInterruptEntry:
		c.cyclesLeft--
		if c.cyclesLeft <= 0 {
			c.state = StateFetch
		}
		return true
	}

	// StateFetch
	intr := b.CheckInterrupts(m)
	if c.interruptReady(intr) {
		c.beginInterruptEntry(b, m, intr)
		return true
	}

	opcode := b.Read(m, c.PC)
	c.PC++

	page := 1
	switch opcode {
	case 0x10:
		page = 2
		opcode = b.Read(m, c.PC)
		c.PC++
	case 0x11:
		page = 3
		opcode = b.Read(m, c.PC)
		c.PC++
	}

	cycles := c.dispatch(b, m, page, opcode)
	if cycles < 1 {
		cycles = 1
	}
	c.cyclesLeft = cycles - 1
	if c.cyclesLeft > 0 && c.state == StateFetch {
		c.state = StateExecute
	}
	return true
}

func (c *CPU) interruptReady(intr bus.InterruptState) bool {
	if intr.NMI && c.nmiArmed {
		return true
	}
	if intr.FIRQ && !c.CC.FIRQMask {
		return true
	}
	if intr.IRQ && !c.CC.IRQMask {
		return true
	}
	return false
}

func (c *CPU) dispatch(b bus.Bus, m bus.Master, page int, opcode uint8) int {
	var table map[uint8]opcodeFunc
	switch page {
	case 2:
		table = page2Table
	case 3:
		table = page3Table
	default:
		table = page1Table
	}

	if fn, ok := table[opcode]; ok {
		return fn(c, b, m)
	}

	// Reserved/undefined encoding: execute as a NOP rather than panic
	// (SPEC_FULL.md §7 / §9).
	return 2
}
