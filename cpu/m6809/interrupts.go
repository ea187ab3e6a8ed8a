package m6809

import "github.com/mvandenberg/sc1emu/bus"

const (
	vectorSWI3 = 0xFFF2
	vectorSWI2 = 0xFFF4
	vectorFIRQ = 0xFFF6
	vectorIRQ  = 0xFFF8
	vectorSWI  = 0xFFFA
	vectorNMI  = 0xFFFC
)

// stackEntire pushes the full register file (used by NMI, IRQ, SWI/SWI2/
// SWI3 and CWAI's pre-stacking) and sets CC.Entire so RTI knows to pop it
// all back.
func (c *CPU) stackEntire(b bus.Bus, m bus.Master) {
	c.CC.Entire = true
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.S--
	b.Write(m, c.S, uint8(c.U))
	c.S--
	b.Write(m, c.S, uint8(c.U>>8))
	c.S--
	b.Write(m, c.S, uint8(c.Y))
	c.S--
	b.Write(m, c.S, uint8(c.Y>>8))
	c.S--
	b.Write(m, c.S, uint8(c.X))
	c.S--
	b.Write(m, c.S, uint8(c.X>>8))
	c.S--
	b.Write(m, c.S, c.DP)
	c.S--
	b.Write(m, c.S, c.B)
	c.S--
	b.Write(m, c.S, c.A)
	c.S--
	b.Write(m, c.S, c.CC.Value())
}

// stackFast pushes only PC and CC, FIRQ's abbreviated entry sequence.
func (c *CPU) stackFast(b bus.Bus, m bus.Master) {
	c.CC.Entire = false
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.S--
	b.Write(m, c.S, c.CC.Value())
}

func (c *CPU) vector(b bus.Bus, m bus.Master, addr uint16) uint16 {
	hi := b.Read(m, addr)
	lo := b.Read(m, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

// beginInterruptEntry starts hardware-driven interrupt entry (NMI/FIRQ/
// IRQ arriving while the core is in Fetch, as opposed to a software
// interrupt or CWAI, which stack immediately from dispatch). The full
// stacking-and-vector-fetch sequence is charged in one pass;
// StateInterruptEntry then holds for the remaining datasheet cycles, the
// way StateExecute does for an ordinary instruction.
func (c *CPU) beginInterruptEntry(b bus.Bus, m bus.Master, intr bus.InterruptState) {
	switch {
	case intr.NMI && c.nmiArmed:
		c.stackEntire(b, m)
		c.CC.IRQMask = true
		c.CC.FIRQMask = true
		c.PC = c.vector(b, m, vectorNMI)
		c.cyclesLeft = 18
	case intr.FIRQ && !c.CC.FIRQMask:
		c.stackFast(b, m)
		c.CC.IRQMask = true
		c.CC.FIRQMask = true
		c.PC = c.vector(b, m, vectorFIRQ)
		c.cyclesLeft = 9
	case intr.IRQ && !c.CC.IRQMask:
		c.stackEntire(b, m)
		c.CC.IRQMask = true
		c.PC = c.vector(b, m, vectorIRQ)
		c.cyclesLeft = 18
	default:
		return
	}
	c.state = StateInterruptEntry
}

// enterInterrupt is the CWAI/SYNC-wait variant: registers are already
// stacked (CWAI stacks eagerly before waiting), so only the mask update
// and vector fetch remain.
func (c *CPU) enterInterrupt(b bus.Bus, m bus.Master, intr bus.InterruptState) {
	switch {
	case intr.NMI && c.nmiArmed:
		c.CC.IRQMask = true
		c.CC.FIRQMask = true
		c.PC = c.vector(b, m, vectorNMI)
	case intr.FIRQ && !c.CC.FIRQMask:
		c.CC.IRQMask = true
		c.CC.FIRQMask = true
		c.PC = c.vector(b, m, vectorFIRQ)
	case intr.IRQ && !c.CC.IRQMask:
		c.CC.IRQMask = true
		c.PC = c.vector(b, m, vectorIRQ)
	default:
		return
	}
	c.state = StateFetch
}

func opSWI(c *CPU, b bus.Bus, m bus.Master) int {
	c.stackEntire(b, m)
	c.CC.IRQMask = true
	c.CC.FIRQMask = true
	c.PC = c.vector(b, m, vectorSWI)
	return 19
}

func opSWI2(c *CPU, b bus.Bus, m bus.Master) int {
	c.stackEntire(b, m)
	c.PC = c.vector(b, m, vectorSWI2)
	return 20
}

func opSWI3(c *CPU, b bus.Bus, m bus.Master) int {
	c.stackEntire(b, m)
	c.PC = c.vector(b, m, vectorSWI3)
	return 20
}

// opCWAI masks CC with the immediate operand, stacks the entire register
// file, then parks the core in StateWaitForInterrupt until any unmasked
// interrupt line is asserted.
func opCWAI(c *CPU, b bus.Bus, m bus.Master) int {
	mask := b.Read(m, c.PC)
	c.PC++
	c.CC.FromValue(c.CC.Value() & mask)
	c.stackEntire(b, m)
	c.state = StateWaitForInterrupt
	return 20
}

func opSYNC(c *CPU, b bus.Bus, m bus.Master) int {
	c.state = StateSyncWait
	return 2
}

// opRTI pops CC first; if CC.Entire was set at push time the rest of the
// register file follows, otherwise only PC remains (FIRQ's abbreviated
// frame).
func opRTI(c *CPU, b bus.Bus, m bus.Master) int {
	c.CC.FromValue(b.Read(m, c.S))
	c.S++
	if !c.CC.Entire {
		hi := b.Read(m, c.S)
		c.S++
		lo := b.Read(m, c.S)
		c.S++
		c.PC = uint16(hi)<<8 | uint16(lo)
		return 6
	}
	c.A = b.Read(m, c.S)
	c.S++
	c.B = b.Read(m, c.S)
	c.S++
	c.DP = b.Read(m, c.S)
	c.S++
	xHi := b.Read(m, c.S)
	c.S++
	xLo := b.Read(m, c.S)
	c.S++
	c.X = uint16(xHi)<<8 | uint16(xLo)
	yHi := b.Read(m, c.S)
	c.S++
	yLo := b.Read(m, c.S)
	c.S++
	c.Y = uint16(yHi)<<8 | uint16(yLo)
	uHi := b.Read(m, c.S)
	c.S++
	uLo := b.Read(m, c.S)
	c.S++
	c.U = uint16(uHi)<<8 | uint16(uLo)
	pcHi := b.Read(m, c.S)
	c.S++
	pcLo := b.Read(m, c.S)
	c.S++
	c.PC = uint16(pcHi)<<8 | uint16(pcLo)
	return 15
}
