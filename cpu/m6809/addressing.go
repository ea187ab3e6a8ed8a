package m6809

import "github.com/mvandenberg/sc1emu/bus"

// indexedRegister returns the pointer register selected by the two
// register-select bits (6:5) of an indexed-mode postbyte.
func (c *CPU) indexedRegister(sel uint8) *uint16 {
	switch sel {
	case 0:
		return &c.X
	case 1:
		return &c.Y
	case 2:
		return &c.U
	default:
		return &c.S
	}
}

// effectiveAddressDirect reads one postbyte and combines it with DP to
// form a direct-page address.
func (c *CPU) effectiveAddressDirect(b bus.Bus, m bus.Master) uint16 {
	lo := b.Read(m, c.PC)
	c.PC++
	return uint16(c.DP)<<8 | uint16(lo)
}

// effectiveAddressExtended reads a 16-bit absolute address.
func (c *CPU) effectiveAddressExtended(b bus.Bus, m bus.Master) uint16 {
	hi := b.Read(m, c.PC)
	c.PC++
	lo := b.Read(m, c.PC)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// effectiveAddressIndexed decodes one indexed-addressing postbyte and any
// additional offset bytes it names, returning the effective address and
// the number of extra bus cycles consumed beyond the postbyte read
// itself (used by callers to add to the opcode's base cycle count).
//
// Covers the postbyte encodings actually used across the Joust ROM set
// and the reference cores in this corpus: 5-bit constant offset, the
// four auto increment/decrement forms, accumulator offset (A, B and D),
// 8- and 16-bit constant offset, 8- and 16-bit program-counter-relative
// offset, and extended indirect. Any indirect form (postbyte bit 4 set)
// performs one additional 16-bit pointer read at the computed address.
func (c *CPU) effectiveAddressIndexed(b bus.Bus, m bus.Master) (uint16, int) {
	post := b.Read(m, c.PC)
	c.PC++

	if post&0x80 == 0 {
		reg := c.indexedRegister((post >> 5) & 0x03)
		offset := int32(int8(post<<3)) >> 3
		return uint16(int32(*reg) + offset), 1
	}

	reg := c.indexedRegister((post >> 5) & 0x03)
	mode := post & 0x0F
	indirect := post&0x10 != 0

	var addr uint16
	extra := 0

	switch mode {
	case 0x0: // ,R+
		addr = *reg
		*reg++
		extra = 2
	case 0x1: // ,R++
		addr = *reg
		*reg += 2
		extra = 3
	case 0x2: // ,-R
		*reg--
		addr = *reg
		extra = 2
	case 0x3: // ,--R
		*reg -= 2
		addr = *reg
		extra = 3
	case 0x4: // ,R
		addr = *reg
		extra = 0
	case 0x5: // B,R
		addr = uint16(int32(*reg) + int32(int8(c.B)))
		extra = 1
	case 0x6: // A,R
		addr = uint16(int32(*reg) + int32(int8(c.A)))
		extra = 1
	case 0x8: // 8-bit offset,R
		off := b.Read(m, c.PC)
		c.PC++
		addr = uint16(int32(*reg) + int32(int8(off)))
		extra = 1
	case 0x9: // 16-bit offset,R
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		off := int16(uint16(hi)<<8 | uint16(lo))
		addr = uint16(int32(*reg) + int32(off))
		extra = 4
	case 0xB: // D,R
		addr = uint16(int32(*reg) + int32(int16(c.D())))
		extra = 4
	case 0xC: // 8-bit offset,PC
		off := b.Read(m, c.PC)
		c.PC++
		addr = uint16(int32(c.PC) + int32(int8(off)))
		extra = 1
	case 0xD: // 16-bit offset,PC
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		off := int16(uint16(hi)<<8 | uint16(lo))
		addr = uint16(int32(c.PC) + int32(off))
		extra = 5
	case 0xF: // [,,Address] - only meaningful in its indirect form
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		addr = uint16(hi)<<8 | uint16(lo)
		extra = 2
	default:
		addr = *reg
	}

	if indirect {
		hi := b.Read(m, addr)
		lo := b.Read(m, addr+1)
		addr = uint16(hi)<<8 | uint16(lo)
		extra += 3
	}

	return addr, extra
}
