package m6800

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

type rmwOp func(cc *flags.CC, v uint8) uint8

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
	cc.Negative = result&0x80 != 0
	cc.Zero = result == 0
	cc.Overflow = v == 0x80
	return result
}

func opINC(cc *flags.CC, v uint8) uint8 {
	result := v + 1
	cc.Negative = result&0x80 != 0
	cc.Zero = result == 0
	cc.Overflow = v == 0x7F
	return result
}

func opTST(cc *flags.CC, v uint8) uint8 {
	flags.Logical8(cc, v)
	cc.Carry = false
	return v
}

func opCLR(cc *flags.CC, v uint8) uint8 {
	flags.Logical8(cc, 0)
	cc.Carry = false
	return 0
}

func rmwInherent(c *CPU, reg *uint8, op rmwOp, cycles int) int {
	*reg = op(&c.CC, *reg)
	return cycles
}

func rmwIndexed(c *CPU, b bus.Bus, m bus.Master, op rmwOp, cycles int) int {
	addr := indexed(c, b, m)
	b.Write(m, addr, op(&c.CC, b.Read(m, addr)))
	return cycles
}

func rmwExtended(c *CPU, b bus.Bus, m bus.Master, op rmwOp, cycles int) int {
	addr := extended(c, b, m)
	b.Write(m, addr, op(&c.CC, b.Read(m, addr)))
	return cycles
}
