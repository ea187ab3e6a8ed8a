package m6809

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

// rmwOp is a read-modify-write operation applied to a single byte,
// whether that byte lives in a register (inherent addressing) or in
// memory (direct/indexed/extended).
type rmwOp func(cc *flags.CC, v uint8) uint8

func rmwInherent(c *CPU, reg *uint8, op rmwOp, baseCycles int) int {
	*reg = op(&c.CC, *reg)
	return baseCycles
}

func rmwDirect(c *CPU, b bus.Bus, m bus.Master, op rmwOp, baseCycles int) int {
	addr := c.effectiveAddressDirect(b, m)
	v := b.Read(m, addr)
	b.Write(m, addr, op(&c.CC, v))
	return baseCycles
}

func rmwIndexed(c *CPU, b bus.Bus, m bus.Master, op rmwOp, baseCycles int) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	v := b.Read(m, addr)
	b.Write(m, addr, op(&c.CC, v))
	return baseCycles + extra
}

func rmwExtended(c *CPU, b bus.Bus, m bus.Master, op rmwOp, baseCycles int) int {
	addr := c.effectiveAddressExtended(b, m)
	v := b.Read(m, addr)
	b.Write(m, addr, op(&c.CC, v))
	return baseCycles
}

func opNEG(cc *flags.CC, v uint8) uint8 {
	r := flags.SubBorrow8(0, v, false)
	flags.Arithmetic8(cc, r.Value, r.Carry, r.Overflow, false)
	return r.Value
}

func opCOM(cc *flags.CC, v uint8) uint8 {
	result := ^v
	flags.Logical8(cc, result)
	cc.Carry = true
	return result
}

func opLSR(cc *flags.CC, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := v >> 1
	flags.ShiftRight8(cc, result, carryOut)
	return result
}

func opROR(cc *flags.CC, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := v >> 1
	if cc.Carry {
		result |= 0x80
	}
	flags.ShiftRight8(cc, result, carryOut)
	return result
}

func opASR(cc *flags.CC, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := (v >> 1) | (v & 0x80)
	flags.ShiftRight8(cc, result, carryOut)
	return result
}

func opASL(cc *flags.CC, v uint8) uint8 {
	carryOut := v&0x80 != 0
	result := v << 1
	flags.ShiftLeft8(cc, result, carryOut)
	return result
}

func opROL(cc *flags.CC, v uint8) uint8 {
	carryOut := v&0x80 != 0
	result := v << 1
	if cc.Carry {
		result |= 0x01
	}
	flags.ShiftLeft8(cc, result, carryOut)
	return result
}

func opDEC(cc *flags.CC, v uint8) uint8 {
	result := v - 1
	overflow := v == 0x80
	cc.Negative = result&0x80 != 0
	cc.Zero = result == 0
	cc.Overflow = overflow
	return result
}

func opINC(cc *flags.CC, v uint8) uint8 {
	result := v + 1
	overflow := v == 0x7F
	cc.Negative = result&0x80 != 0
	cc.Zero = result == 0
	cc.Overflow = overflow
	return result
}

func opTST(cc *flags.CC, v uint8) uint8 {
	flags.Logical8(cc, v)
	return v
}

func opCLR(cc *flags.CC, v uint8) uint8 {
	flags.Logical8(cc, 0)
	cc.Carry = false
	return 0
}
