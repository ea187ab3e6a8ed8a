// Package m6800 implements the secondary sound-board CPU: a single-page
// Motorola 6800, sharing its condition-code layout and canonical flag
// helpers with the primary 6809 core (cpu/flags) but with a much smaller
// register file - one index register, one stack pointer, no direct page.
package m6800

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

// CPU is a single 6800 core.
type CPU struct {
	A, B uint8
	X    uint16
	SP   uint16
	PC   uint16
	CC   flags.CC

	state      execState
	cyclesLeft int
	waiting    bool
}

type execState int

const (
	stateFetch execState = iota
	stateExecute
	stateWaitForInterrupt
)

// New returns a CPU in its documented reset state: IRQ masked, execution
// state Fetch. PC is left at zero; board assembly fetches the reset
// vector from this core's own bus view of $FFFE/$FFFF.
func New() *CPU {
	c := &CPU{}
	c.CC.IRQMask = true
	c.state = stateFetch
	return c
}

func (c *CPU) SetPC(pc uint16) { c.PC = pc }
func (c *CPU) State() bool     { return c.state == stateFetch }

// ClockDivider reports that this core ticks once per system clock cycle,
// same as the primary core (both run at the board's nominal clock).
func (c *CPU) ClockDivider() int { return 1 }

// TickWithBus advances the CPU by one system clock cycle, following the
// same whole-instruction-effects-then-held-cycles model as cpu/m6809 (see
// DESIGN.md).
func (c *CPU) TickWithBus(b bus.Bus, m bus.Master) bool {
	if b.IsHaltedFor(m) {
		return false
	}

	switch c.state {
	case stateWaitForInterrupt:
		intr := b.CheckInterrupts(m)
		if intr.NMI || (intr.IRQ && !c.CC.IRQMask) {
			c.enterInterrupt(b, m, intr)
		}
		return true

	case stateExecute:
		c.cyclesLeft--
		if c.cyclesLeft <= 0 {
			c.state = stateFetch
		}
		return true
	}

	intr := b.CheckInterrupts(m)
	if intr.NMI || (intr.IRQ && !c.CC.IRQMask) {
		c.stackEntire(b, m)
		c.enterInterrupt(b, m, intr)
		c.cyclesLeft = 11
		c.state = stateExecute
		return true
	}

	opcode := b.Read(m, c.PC)
	c.PC++

	cycles := dispatch(c, b, m, opcode)
	if cycles < 1 {
		cycles = 1
	}
	c.cyclesLeft = cycles - 1
	if c.cyclesLeft > 0 {
		c.state = stateExecute
	}
	return true
}

func (c *CPU) enterInterrupt(b bus.Bus, m bus.Master, intr bus.InterruptState) {
	c.CC.IRQMask = true
	addr := uint16(0xFFF8) // IRQ
	if intr.NMI {
		addr = 0xFFFC
	}
	hi := b.Read(m, addr)
	lo := b.Read(m, addr+1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.state = stateFetch
}

// stackEntire pushes PC, X, A, B and CC - the 6800's fixed interrupt
// frame (there is no "fast" alternative the way the 6809 has FIRQ).
func (c *CPU) stackEntire(b bus.Bus, m bus.Master) {
	b.Write(m, c.SP, uint8(c.PC))
	c.SP--
	b.Write(m, c.SP, uint8(c.PC>>8))
	c.SP--
	b.Write(m, c.SP, uint8(c.X))
	c.SP--
	b.Write(m, c.SP, uint8(c.X>>8))
	c.SP--
	b.Write(m, c.SP, c.A)
	c.SP--
	b.Write(m, c.SP, c.B)
	c.SP--
	b.Write(m, c.SP, c.CC.Value()|0xC0)
	c.SP--
}
