package m6502

import "github.com/mvandenberg/sc1emu/bus"

type condCode int

const (
	condCarryClear condCode = iota
	condCarrySet
	condNotEqual
	condEqual
	condPlus
	condMinus
	condOverflowClear
	condOverflowSet
)

func evalCond(c *CPU, cond condCode) bool {
	switch cond {
	case condCarryClear:
		return !c.Carry
	case condCarrySet:
		return c.Carry
	case condNotEqual:
		return !c.Zero
	case condEqual:
		return c.Zero
	case condPlus:
		return !c.Negative
	case condMinus:
		return c.Negative
	case condOverflowClear:
		return !c.Overflow
	case condOverflowSet:
		return c.Overflow
	}
	return false
}

// branch is 2 cycles when not taken, 3 when taken within the same page,
// 4 when taken across a page boundary - the extra cycle(s) are spent as
// the datasheet documents: a dummy read at the not-yet-corrected PC.
func branch(cond condCode) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) {
			offset := int8(b.Read(m, c.PC))
			c.PC++
			if !evalCond(c, cond) {
				return
			}
			c.queue = append(c.queue, func(c *CPU, b bus.Bus, m bus.Master) {
				b.Read(m, c.PC)
				target := uint16(int32(c.PC) + int32(offset))
				if target&0xFF00 == c.PC&0xFF00 {
					c.PC = target
					return
				}
				wrongHi := c.PC & 0xFF00
				c.queue = append(c.queue, func(c *CPU, b bus.Bus, m bus.Master) {
					b.Read(m, wrongHi|(target&0x00FF))
					c.PC = target
				})
			})
		},
	}
}
