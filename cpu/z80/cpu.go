// Package z80 implements the secondary Z80-class core. Like cpu/m6809
// and cpu/m6800 (and unlike cpu/m6502), it follows the whole-instruction-
// effects-then-held-cycles model: Fetch computes an instruction's full
// register/memory/flag effect - including its MEMPTR (WZ) update and R
// refresh increment - in one pass, then holds for the instruction's
// remaining T-states. This is permitted here in a way it is not for the
// 6502 core because this family's own single-step vectors carry
// `"internal"` cycle entries alongside `memptr`/`r`/`iff1`/`iff2`/`q`
// state (SPEC_FULL.md §6): what conformance checks for this core is
// final architectural state, not a cycle-by-cycle bus trace.
package z80

import "github.com/mvandenberg/sc1emu/bus"

// Flag bits within F, in the Z80's documented layout: S Z Y H X P/V N C.
const (
	flagC  uint8 = 0x01
	flagN  uint8 = 0x02
	flagPV uint8 = 0x04
	flagX  uint8 = 0x08 // undocumented, copy of result bit 3
	flagH  uint8 = 0x10
	flagY  uint8 = 0x20 // undocumented, copy of result bit 5
	flagZ  uint8 = 0x40
	flagS  uint8 = 0x80
)

// CPU is a single Z80 core: the documented register file (main and
// shadow 8080-compatible sets, IX/IY, SP, PC, I, R), interrupt state
// (IFF1/IFF2/IM), and MEMPTR - the internal WZ latch every real part
// carries and that several documented flag quirks (BIT n,(HL) among
// them) leak into externally observable state.
type CPU struct {
	A, F, B, C, D, E, H, L         uint8
	A2, F2, B2, C2, D2, E2, H2, L2 uint8
	IX, IY, SP, PC                 uint16
	I, R                           uint8
	IFF1, IFF2                     bool
	IM                             uint8
	MEMPTR                         uint16

	// Q mirrors F immediately after the last instruction that affects
	// flags, zero otherwise - SCF/CCF's undocumented X/Y bits come from
	// ORing the prior flags into the new ones only when Q was nonzero,
	// a well-documented but rarely-modeled quirk of the real silicon.
	Q uint8

	halted     bool
	state      execState
	cyclesLeft int
}

type execState int

const (
	stateFetch execState = iota
	stateExecute
	stateHalted
)

// New returns a CPU in its documented reset state: IFF1/IFF2 clear, IM 0,
// SP at $FFFF, PC at zero, R and the rest of the register file zeroed.
func New() *CPU {
	c := &CPU{SP: 0xFFFF}
	c.state = stateFetch
	return c
}

func (c *CPU) SetPC(pc uint16) { c.PC = pc }
func (c *CPU) State() bool     { return c.state == stateFetch || c.state == stateHalted }
func (c *CPU) ClockDivider() int { return 1 }

func (c *CPU) getHL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) setHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }
func (c *CPU) getBC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) setBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }
func (c *CPU) getDE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) setDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }
func (c *CPU) getAF() uint16 { return uint16(c.A)<<8 | uint16(c.F) }
func (c *CPU) setAF(v uint16) { c.A, c.F = uint8(v>>8), uint8(v) }

// bumpR increments the 7 low bits of the refresh register, preserving
// bit 7 - the real part's DRAM-refresh counter wraps within a byte but
// never touches its top bit via this path.
func (c *CPU) bumpR() { c.R = (c.R & 0x80) | ((c.R + 1) & 0x7F) }

// TickWithBus advances the CPU by one system clock cycle.
func (c *CPU) TickWithBus(b bus.Bus, m bus.Master) bool {
	if b.IsHaltedFor(m) {
		return false
	}

	switch c.state {
	case stateExecute:
		c.cyclesLeft--
		if c.cyclesLeft <= 0 {
			c.state = stateFetch
		}
		return true

	case stateHalted:
		intr := b.CheckInterrupts(m)
		if intr.NMI {
			c.enterNMI(b, m)
			return true
		}
		if intr.IRQ && c.IFF1 {
			c.enterIRQ(b, m)
			return true
		}
		c.bumpR()
		return true
	}

	intr := b.CheckInterrupts(m)
	if intr.NMI {
		c.enterNMI(b, m)
		return true
	}
	if intr.IRQ && c.IFF1 {
		c.enterIRQ(b, m)
		return true
	}

	c.bumpR()
	opcode := b.Read(m, c.PC)
	c.PC++

	cycles := c.execute(b, m, opcode)
	if c.halted {
		c.state = stateHalted
		c.halted = false
		return true
	}
	if cycles < 1 {
		cycles = 1
	}
	c.cyclesLeft = cycles - 1
	if c.cyclesLeft > 0 {
		c.state = stateExecute
	} else {
		c.state = stateFetch
	}
	return true
}

func push16(c *CPU, b bus.Bus, m bus.Master, v uint16) {
	c.SP--
	b.Write(m, c.SP, uint8(v>>8))
	c.SP--
	b.Write(m, c.SP, uint8(v))
}

func pop16(c *CPU, b bus.Bus, m bus.Master) uint16 {
	lo := b.Read(m, c.SP)
	c.SP++
	hi := b.Read(m, c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) enterNMI(b bus.Bus, m bus.Master) {
	c.bumpR()
	c.IFF2 = c.IFF1
	c.IFF1 = false
	push16(c, b, m, c.PC)
	c.PC = 0x0066
	c.state = stateFetch
}

func (c *CPU) enterIRQ(b bus.Bus, m bus.Master) {
	c.bumpR()
	c.IFF1 = false
	c.IFF2 = false
	push16(c, b, m, c.PC)
	switch c.IM {
	case 0, 1:
		c.PC = 0x0038
	case 2:
		vector := uint16(c.I)<<8 | 0x00FF
		lo := b.Read(m, vector)
		hi := b.Read(m, vector+1)
		c.PC = uint16(hi)<<8 | uint16(lo)
	}
	c.state = stateFetch
}
