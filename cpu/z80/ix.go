package z80

import "github.com/mvandenberg/sc1emu/bus"

// executeIndexed handles a DD- or FD-prefixed instruction against the
// given index register (IX or IY). Only the opcodes that actually
// reference the index register are given dedicated handling; every other
// opcode behaves on real silicon exactly as its unprefixed form (the
// prefix is simply wasted), so the fallback here dispatches the plain
// base-plane opcode and adds the prefix's flat 4-cycle cost.
func (c *CPU) executeIndexed(b bus.Bus, m bus.Master, ix *uint16) int {
	c.bumpR()
	opcode := b.Read(m, c.PC)
	c.PC++

	if opcode == 0xCB {
		d := int8(b.Read(m, c.PC))
		c.PC++
		sub := b.Read(m, c.PC)
		c.PC++
		return c.executeIndexedCB(b, m, ix, d, sub) + 8
	}

	switch opcode {
	case 0x21: // LD ix,nn
		*ix = fetch16(c, b, m)
		return 14
	case 0x22: // LD (nn),ix
		addr := fetch16(c, b, m)
		b.Write(m, addr, uint8(*ix))
		b.Write(m, addr+1, uint8(*ix>>8))
		c.MEMPTR = addr + 1
		return 20
	case 0x2A: // LD ix,(nn)
		addr := fetch16(c, b, m)
		lo := b.Read(m, addr)
		hi := b.Read(m, addr+1)
		*ix = uint16(hi)<<8 | uint16(lo)
		c.MEMPTR = addr + 1
		return 20
	case 0x23:
		*ix++
		return 10
	case 0x2B:
		*ix--
		return 10
	case 0x09, 0x19, 0x39:
		var operand uint16
		switch opcode {
		case 0x09:
			operand = c.getBC()
		case 0x19:
			operand = c.getDE()
		case 0x39:
			operand = c.SP
		}
		c.MEMPTR = *ix + 1
		*ix = c.addHL16(*ix, operand)
		return 15
	case 0x29:
		c.MEMPTR = *ix + 1
		*ix = c.addHL16(*ix, *ix)
		return 15
	case 0x34: // INC (ix+d)
		addr := c.indexedAddr(ix, b, m)
		v := b.Read(m, addr)
		b.Write(m, addr, c.inc8(v))
		return 23
	case 0x35: // DEC (ix+d)
		addr := c.indexedAddr(ix, b, m)
		v := b.Read(m, addr)
		b.Write(m, addr, c.dec8(v))
		return 23
	case 0x36: // LD (ix+d),n
		addr := c.indexedAddr(ix, b, m)
		n := b.Read(m, c.PC)
		c.PC++
		b.Write(m, addr, n)
		return 19
	case 0xE1: // POP ix
		*ix = pop16(c, b, m)
		return 14
	case 0xE5: // PUSH ix
		push16(c, b, m, *ix)
		return 15
	case 0xE3: // EX (SP),ix
		lo := b.Read(m, c.SP)
		hi := b.Read(m, c.SP+1)
		b.Write(m, c.SP, uint8(*ix))
		b.Write(m, c.SP+1, uint8(*ix>>8))
		*ix = uint16(hi)<<8 | uint16(lo)
		c.MEMPTR = *ix
		return 23
	case 0xE9: // JP (ix)
		c.PC = *ix
		return 8
	case 0xF9: // LD SP,ix
		c.SP = *ix
		return 10
	}

	// LD r,(ix+d) / LD (ix+d),r / ALU A,(ix+d): any opcode in the LD or
	// ALU blocks whose register field selects the (HL) slot operates on
	// (ix+d) instead, at a 5-cycle premium for the displacement fetch.
	if opcode >= 0x40 && opcode <= 0x7F && opcode != 0x76 {
		dst := (opcode >> 3) & 0x07
		src := opcode & 0x07
		if dst == 6 || src == 6 {
			addr := c.indexedAddr(ix, b, m)
			var v uint8
			if src == 6 {
				v = b.Read(m, addr)
			} else {
				v = reg8Get(c, b, m, src)
			}
			if dst == 6 {
				b.Write(m, addr, v)
			} else {
				reg8Set(c, b, m, dst, v)
			}
			return 19
		}
	}
	if opcode >= 0x80 && opcode <= 0xBF {
		src := opcode & 0x07
		if src == 6 {
			addr := c.indexedAddr(ix, b, m)
			v := b.Read(m, addr)
			c.A = c.aluOp((opcode>>3)&0x07, v)
			return 19
		}
	}

	return c.execute(b, m, opcode) + 4
}

// indexedAddr reads the displacement byte following the current opcode
// and returns ix+d, latching MEMPTR the way the real part does for every
// (ix+d)-form instruction.
func (c *CPU) indexedAddr(ix *uint16, b bus.Bus, m bus.Master) uint16 {
	d := int8(b.Read(m, c.PC))
	c.PC++
	addr := uint16(int32(*ix) + int32(d))
	c.MEMPTR = addr
	return addr
}

// executeIndexedCB implements the DDCB/FDCB plane: displacement d has
// already been consumed by the caller, sub is the trailing opcode byte.
// The operand is always (ix+d); when the register field doesn't select
// (HL) the result is additionally copied into that register, matching
// the well-documented undocumented behavior of this plane.
func (c *CPU) executeIndexedCB(b bus.Bus, m bus.Master, ix *uint16, d int8, sub uint8) int {
	addr := uint16(int32(*ix) + int32(d))
	c.MEMPTR = addr
	group := sub >> 6
	reg := sub & 0x07
	v := b.Read(m, addr)

	switch group {
	case 0:
		op := (sub >> 3) & 0x07
		result := c.rotateShift(op, v)
		b.Write(m, addr, result)
		if reg != 6 {
			reg8Set(c, b, m, reg, result)
		}
	case 1:
		bit := (sub >> 3) & 0x07
		c.bitTest(bit, v, true)
	case 2:
		bit := (sub >> 3) & 0x07
		result := v &^ (1 << bit)
		b.Write(m, addr, result)
		if reg != 6 {
			reg8Set(c, b, m, reg, result)
		}
	case 3:
		bit := (sub >> 3) & 0x07
		result := v | (1 << bit)
		b.Write(m, addr, result)
		if reg != 6 {
			reg8Set(c, b, m, reg, result)
		}
	}
	if group == 1 {
		return 16
	}
	return 19
}
