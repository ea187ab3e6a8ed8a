package m6800

import (
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/flags"
)

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

func branch(cond condCode) opcodeFunc {
	return func(c *CPU, b bus.Bus, m bus.Master) int {
		offset := int8(b.Read(m, c.PC))
		c.PC++
		if evalCond(&c.CC, cond) {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
		return 4
	}
}

func opBSR(c *CPU, b bus.Bus, m bus.Master) int {
	offset := int8(b.Read(m, c.PC))
	c.PC++
	b.Write(m, c.SP, uint8(c.PC))
	c.SP--
	b.Write(m, c.SP, uint8(c.PC>>8))
	c.SP--
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 8
}
