// Package m6502 implements the secondary 6502-class core used by the
// conformance harness. Unlike cpu/m6809 and cpu/m6800, which compute an
// instruction's whole effect in one pass and then hold for the remaining
// datasheet cycles, this core steps one genuine bus transaction per
// Tick: every cycle - including the dummy reads a read-modify-write
// instruction issues before its real write, and the extra cycle an
// indexed addressing mode spends when the index crosses a page boundary
// - is its own bus.Bus call, in instruction order. The Tom Harte-style
// vectors this core is checked against encode a `cycles` list with no
// `"internal"` entries (see SPEC_FULL.md §6), so, unlike the other two
// cores, its bus trace itself is part of what conformance verifies.
package m6502

import "github.com/mvandenberg/sc1emu/bus"

// CPU is a single 6502 core.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	Negative bool
	Overflow bool
	Decimal  bool
	IRQMask  bool
	Zero     bool
	Carry    bool

	state execState
	queue []microOp
	qi    int

	// Scratch state threaded between an instruction's micro-ops. A real
	// part has no such fields - they are registers internal to its
	// decode PLA - but a Go state machine needs somewhere to hold an
	// address under construction between Tick calls.
	tmpAddr     uint16
	tmp8   uint8
	pageCrossed bool
}

type execState int

const (
	stateFetch execState = iota
	stateRunning
)

type microOp func(c *CPU, b bus.Bus, m bus.Master)

// New returns a CPU in its documented reset state: IRQ masked, stack
// pointer at its post-reset value, execution state Fetch.
func New() *CPU {
	c := &CPU{SP: 0xFD}
	c.IRQMask = true
	c.state = stateFetch
	return c
}

func (c *CPU) SetPC(pc uint16) { c.PC = pc }
func (c *CPU) State() bool     { return c.state == stateFetch }

// ClockDivider reports that this core ticks once per system clock cycle.
func (c *CPU) ClockDivider() int { return 1 }

// Status packs the processor status byte: N V 1 B D I Z C (bit 7 down to
// bit 0). The unused bit is always 1; the B (break) flag is 1 only when
// breakFlag is true, as PHP/BRK push it (interrupt entry pushes it as 0).
// RTI and PLP ignore both on pop.
func (c *CPU) Status(breakFlag bool) uint8 {
	var v uint8 = 0x20
	if c.Negative {
		v |= 0x80
	}
	if c.Overflow {
		v |= 0x40
	}
	if breakFlag {
		v |= 0x10
	}
	if c.Decimal {
		v |= 0x08
	}
	if c.IRQMask {
		v |= 0x04
	}
	if c.Zero {
		v |= 0x02
	}
	if c.Carry {
		v |= 0x01
	}
	return v
}

func (c *CPU) SetStatus(v uint8) {
	c.Negative = v&0x80 != 0
	c.Overflow = v&0x40 != 0
	c.Decimal = v&0x08 != 0
	c.IRQMask = v&0x04 != 0
	c.Zero = v&0x02 != 0
	c.Carry = v&0x01 != 0
}

// TickWithBus advances the CPU by exactly one bus cycle.
func (c *CPU) TickWithBus(b bus.Bus, m bus.Master) bool {
	if b.IsHaltedFor(m) {
		return false
	}

	if c.qi < len(c.queue) {
		op := c.queue[c.qi]
		c.qi++
		op(c, b, m)
		if c.qi >= len(c.queue) {
			c.state = stateFetch
		}
		return true
	}

	// A fresh Fetch spends exactly this one cycle reading the opcode (or,
	// for a pending interrupt, the first cycle of its entry sequence) and
	// nothing else - the remaining cycles of whichever micro-op queue
	// this decodes into run one per subsequent Tick, via the branch above.
	intr := b.CheckInterrupts(m)
	if intr.NMI || (intr.IRQ && !c.IRQMask) {
		b.Read(m, c.PC) // dummy opcode-fetch read; a real part fetches and discards the next opcode byte
		c.queue = interruptMicroOps(intr.NMI)
		c.qi = 0
		c.state = stateRunning
		return true
	}

	opcode := b.Read(m, c.PC)
	c.PC++
	c.queue = dispatch(opcode)
	c.qi = 0
	if len(c.queue) == 0 {
		c.state = stateFetch
		return true
	}
	c.state = stateRunning
	return true
}

func interruptMicroOps(nmi bool) []microOp {
	vector := uint16(0xFFFE)
	if nmi {
		vector = 0xFFFA
	}
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) }, // second internal opcode-fetch cycle
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC>>8)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), c.Status(false)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, vector)) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, vector+1)
			c.PC = uint16(hi)<<8 | c.tmpAddr
			c.IRQMask = true
		},
	}
}
