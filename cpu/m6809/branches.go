package m6809

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

// condCode names one of the sixteen 6809 branch conditions, shared by
// the short (Bcc) and long (LBcc) branch instructions.
type condCode int

const (
	condAlways condCode = iota
	condNever
	condHigher
	condLowerOrSame
	condCarryClear
	condCarrySet
	condNotEqual
	condEqual
	condOverflowClear
	condOverflowSet
	condPlus
	condMinus
	condGreaterOrEqual
	condLessThan
	condGreaterThan
	condLessOrEqual
)

func evalCond(cc *flags.CC, cond condCode) bool {
	switch cond {
	case condAlways:
		return true
	case condNever:
		return false
	case condHigher:
		return !cc.Carry && !cc.Zero
	case condLowerOrSame:
		return cc.Carry || cc.Zero
	case condCarryClear:
		return !cc.Carry
	case condCarrySet:
		return cc.Carry
	case condNotEqual:
		return !cc.Zero
	case condEqual:
		return cc.Zero
	case condOverflowClear:
		return !cc.Overflow
	case condOverflowSet:
		return cc.Overflow
	case condPlus:
		return !cc.Negative
	case condMinus:
		return cc.Negative
	case condGreaterOrEqual:
		return cc.Negative == cc.Overflow
	case condLessThan:
		return cc.Negative != cc.Overflow
	case condGreaterThan:
		return !cc.Zero && cc.Negative == cc.Overflow
	case condLessOrEqual:
		return cc.Zero || cc.Negative != cc.Overflow
	}
	return false
}

func shortBranch(cond condCode) opcodeFunc {
	return func(c *CPU, b bus.Bus, m bus.Master) int {
		offset := int8(b.Read(m, c.PC))
		c.PC++
		if evalCond(&c.CC, cond) {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
		return 3
	}
}

func longBranch(cond condCode) opcodeFunc {
	return func(c *CPU, b bus.Bus, m bus.Master) int {
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		offset := int16(uint16(hi)<<8 | uint16(lo))
		taken := evalCond(&c.CC, cond)
		if taken {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
		if cond == condAlways {
			return 5
		}
		if taken {
			return 6
		}
		return 5
	}
}

func opBSR(c *CPU, b bus.Bus, m bus.Master) int {
	offset := int8(b.Read(m, c.PC))
	c.PC++
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 7
}

func opLBSR(c *CPU, b bus.Bus, m bus.Master) int {
	hi := b.Read(m, c.PC)
	c.PC++
	lo := b.Read(m, c.PC)
	c.PC++
	offset := int16(uint16(hi)<<8 | uint16(lo))
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 9
}
