package m6800

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

type accumOp func(cc *flags.CC, reg *uint8, operand uint8)

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

func accumImmediate(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accumOp, cycles int) int {
	v := b.Read(m, c.PC)
	c.PC++
	op(&c.CC, reg, v)
	return cycles
}

func accumDirect(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accumOp, cycles int) int {
	op(&c.CC, reg, b.Read(m, direct(c, b, m)))
	return cycles
}

func accumIndexed(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accumOp, cycles int) int {
	op(&c.CC, reg, b.Read(m, indexed(c, b, m)))
	return cycles
}

func accumExtended(c *CPU, b bus.Bus, m bus.Master, reg *uint8, op accumOp, cycles int) int {
	op(&c.CC, reg, b.Read(m, extended(c, b, m)))
	return cycles
}

func storeDirect(c *CPU, b bus.Bus, m bus.Master, reg *uint8, cycles int) int {
	addr := direct(c, b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return cycles
}

func storeIndexed(c *CPU, b bus.Bus, m bus.Master, reg *uint8, cycles int) int {
	addr := indexed(c, b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return cycles
}

func storeExtended(c *CPU, b bus.Bus, m bus.Master, reg *uint8, cycles int) int {
	addr := extended(c, b, m)
	b.Write(m, addr, *reg)
	flags.Logical8(&c.CC, *reg)
	return cycles
}
