package m6809

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

type reg16 struct {
	get func(c *CPU) uint16
	set func(c *CPU, v uint16)
}

var (
	regD = reg16{func(c *CPU) uint16 { return c.D() }, func(c *CPU, v uint16) { c.SetD(v) }}
	regX = reg16{func(c *CPU) uint16 { return c.X }, func(c *CPU, v uint16) { c.X = v }}
	regY = reg16{func(c *CPU) uint16 { return c.Y }, func(c *CPU, v uint16) { c.Y = v }}
	regU = reg16{func(c *CPU) uint16 { return c.U }, func(c *CPU, v uint16) { c.U = v }}
	// Writing S through this accessor (LDS, TFR, EXG) arms NMI - the
	// reference part refuses to recognise NMI until S has been loaded at
	// least once since reset. LEAS arms it as well; a PULU that loads S
	// does not.
	regS = reg16{func(c *CPU) uint16 { return c.S }, func(c *CPU, v uint16) { c.S = v; c.nmiArmed = true }}
)

type accum16Op func(cc *flags.CC, r reg16, c *CPU, operand uint16)

func read16(b bus.Bus, m bus.Master, addr uint16) uint16 {
	hi := b.Read(m, addr)
	lo := b.Read(m, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

func write16(b bus.Bus, m bus.Master, addr uint16, v uint16) {
	b.Write(m, addr, uint8(v>>8))
	b.Write(m, addr+1, uint8(v))
}

func registerImmediate16(c *CPU, b bus.Bus, m bus.Master, r reg16, op accum16Op, baseCycles int) int {
	hi := b.Read(m, c.PC)
	c.PC++
	lo := b.Read(m, c.PC)
	c.PC++
	op(&c.CC, r, c, uint16(hi)<<8|uint16(lo))
	return baseCycles
}

func registerDirect16(c *CPU, b bus.Bus, m bus.Master, r reg16, op accum16Op, baseCycles int) int {
	addr := c.effectiveAddressDirect(b, m)
	op(&c.CC, r, c, read16(b, m, addr))
	return baseCycles
}

func registerIndexed16(c *CPU, b bus.Bus, m bus.Master, r reg16, op accum16Op, baseCycles int) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	op(&c.CC, r, c, read16(b, m, addr))
	return baseCycles + extra
}

func registerExtended16(c *CPU, b bus.Bus, m bus.Master, r reg16, op accum16Op, baseCycles int) int {
	addr := c.effectiveAddressExtended(b, m)
	op(&c.CC, r, c, read16(b, m, addr))
	return baseCycles
}

func opLD16(cc *flags.CC, r reg16, c *CPU, operand uint16) {
	r.set(c, operand)
	flags.Logical16(cc, operand)
}

func opCMP16(cc *flags.CC, r reg16, c *CPU, operand uint16) {
	cur := r.get(c)
	result := cur - operand
	carry := cur < operand
	overflow := (cur^operand)&0x8000 != 0 && (cur^result)&0x8000 != 0
	flags.Arithmetic16(cc, result, carry, overflow)
}

func opADD16(cc *flags.CC, r reg16, c *CPU, operand uint16) {
	cur := r.get(c)
	wide := uint32(cur) + uint32(operand)
	result := uint16(wide)
	carry := wide > 0xFFFF
	overflow := (cur^operand)&0x8000 == 0 && (cur^result)&0x8000 != 0
	r.set(c, result)
	flags.Arithmetic16(cc, result, carry, overflow)
}

func opSUB16(cc *flags.CC, r reg16, c *CPU, operand uint16) {
	cur := r.get(c)
	result := cur - operand
	carry := cur < operand
	overflow := (cur^operand)&0x8000 != 0 && (cur^result)&0x8000 != 0
	r.set(c, result)
	flags.Arithmetic16(cc, result, carry, overflow)
}

// storeDirect/Indexed/Extended16 implement STX/STY/STU/STS/STD: unlike
// the load/compare family there is no immediate form (storing to an
// immediate operand makes no sense), so these are separate from
// accum16Op.

func storeDirect16(c *CPU, b bus.Bus, m bus.Master, r reg16, baseCycles int) int {
	addr := c.effectiveAddressDirect(b, m)
	v := r.get(c)
	write16(b, m, addr, v)
	flags.Logical16(&c.CC, v)
	return baseCycles
}

func storeIndexed16(c *CPU, b bus.Bus, m bus.Master, r reg16, baseCycles int) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	v := r.get(c)
	write16(b, m, addr, v)
	flags.Logical16(&c.CC, v)
	return baseCycles + extra
}

func storeExtended16(c *CPU, b bus.Bus, m bus.Master, r reg16, baseCycles int) int {
	addr := c.effectiveAddressExtended(b, m)
	v := r.get(c)
	write16(b, m, addr, v)
	flags.Logical16(&c.CC, v)
	return baseCycles
}
