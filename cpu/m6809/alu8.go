package m6809

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

// accum8Op applies an 8-bit operation (ADD/SUB/AND/...) against one
// accumulator (A or B) and an operand fetched by one of the four
// addressing modes; register8 selects which accumulator is read/written.
type accum8Op func(cc *flags.CC, reg *uint8, operand uint8)

func registerImmediate8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accum8Op, baseCycles int) int {
	operand := b.Read(m, c.PC)
	c.PC++
	op(&c.CC, reg, operand)
	return baseCycles
}

func registerDirect8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accum8Op, baseCycles int) int {
	addr := c.effectiveAddressDirect(b, m)
	operand := b.Read(m, addr)
	op(&c.CC, reg, operand)
	return baseCycles
}

func registerIndexed8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accum8Op, baseCycles int) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	operand := b.Read(m, addr)
	op(&c.CC, reg, operand)
	return baseCycles + extra
}

func registerExtended8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accum8Op, baseCycles int) int {
	addr := c.effectiveAddressExtended(b, m)
	operand := b.Read(m, addr)
	op(&c.CC, reg, operand)
	return baseCycles
}

// The accum8Op implementations. Each mutates *reg (except the
// compare/test-only forms, which discard the ALU result) and updates cc
// through the shared flags helpers - never inline.

func opSUB(cc *flags.CC, reg *uint8, operand uint8) {
	r := flags.SubBorrow8(*reg, operand, false)
	*reg = r.Value
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, false)
}

func opSBC(cc *flags.CC, reg *uint8, operand uint8) {
	r := flags.SubBorrow8(*reg, operand, cc.Carry)
	*reg = r.Value
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, false)
}

func opCMP(cc *flags.CC, reg *uint8, operand uint8) {
	r := flags.SubBorrow8(*reg, operand, false)
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, false)
}

func opAND(cc *flags.CC, reg *uint8, operand uint8) {
	*reg &= operand
	flags.Logical8(cc, *reg)
}

func opBIT(cc *flags.CC, reg *uint8, operand uint8) {
	flags.Logical8(cc, *reg&operand)
}

func opLD(cc *flags.CC, reg *uint8, operand uint8) {
	*reg = operand
	flags.Logical8(cc, *reg)
}

func opEOR(cc *flags.CC, reg *uint8, operand uint8) {
	*reg ^= operand
	flags.Logical8(cc, *reg)
}

func opADC(cc *flags.CC, reg *uint8, operand uint8) {
	r := flags.AddCarry8(*reg, operand, cc.Carry)
	*reg = r.Value
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, r.HalfCarry)
}

func opORA(cc *flags.CC, reg *uint8, operand uint8) {
	*reg |= operand
	flags.Logical8(cc, *reg)
}

func opADD(cc *flags.CC, reg *uint8, operand uint8) {
	r := flags.AddCarry8(*reg, operand, false)
	*reg = r.Value
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, r.HalfCarry)
}

// storeDirect/Indexed/Extended8 implement STA/STB: there is no immediate
// form, so these live outside accum8Op like their 16-bit counterparts.

func storeDirect8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, baseCycles int) int {
	addr := c.effectiveAddressDirect(b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return baseCycles
}

func storeIndexed8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, baseCycles int) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return baseCycles + extra
}

func storeExtended8(c *CPU, b bus.Bus, m bus.Master, reg *uint8, baseCycles int) int {
	addr := c.effectiveAddressExtended(b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return baseCycles
}
