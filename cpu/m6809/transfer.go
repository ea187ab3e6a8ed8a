package m6809

import "github.com/mvandenberg/sc1emu/bus"

// tfrRegister reads a TFR/EXG postbyte nibble and returns its current
// 16-bit value (8-bit registers are returned zero-extended in the low
// byte) along with whether the register is 8 bits wide and whether the
// nibble names a defined register at all.
func (c *CPU) tfrRegisterGet(code uint8) (value uint16, is8 bool, valid bool) {
	switch code {
	case 0x0:
		return c.D(), false, true
	case 0x1:
		return c.X, false, true
	case 0x2:
		return c.Y, false, true
	case 0x3:
		return c.U, false, true
	case 0x4:
		return c.S, false, true
	case 0x5:
		return c.PC, false, true
	case 0x8:
		return uint16(c.A), true, true
	case 0x9:
		return uint16(c.B), true, true
	case 0xA:
		return uint16(c.CC.Value()), true, true
	case 0xB:
		return uint16(c.DP), true, true
	}
	return 0, false, false
}

func (c *CPU) tfrRegisterSet(code uint8, value uint16) {
	switch code {
	case 0x0:
		c.SetD(value)
	case 0x1:
		c.X = value
	case 0x2:
		c.Y = value
	case 0x3:
		c.U = value
	case 0x4:
		c.S = value
		c.nmiArmed = true
	case 0x5:
		c.PC = value
	case 0x8:
		c.A = uint8(value)
	case 0x9:
		c.B = uint8(value)
	case 0xA:
		c.CC.FromValue(uint8(value))
	case 0xB:
		c.DP = uint8(value)
	}
}

func opTFR(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	srcCode, dstCode := post>>4, post&0x0F
	srcVal, srcIs8, srcValid := c.tfrRegisterGet(srcCode)
	_, dstIs8, dstValid := c.tfrRegisterGet(dstCode)
	if !srcValid || !dstValid || srcIs8 != dstIs8 {
		return 6 // undefined combination: NOP at datasheet cycle count
	}
	c.tfrRegisterSet(dstCode, srcVal)
	return 6
}

func opEXG(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	aCode, bCode := post>>4, post&0x0F
	aVal, aIs8, aValid := c.tfrRegisterGet(aCode)
	bVal, bIs8, bValid := c.tfrRegisterGet(bCode)
	if !aValid || !bValid || aIs8 != bIs8 {
		return 8
	}
	c.tfrRegisterSet(aCode, bVal)
	c.tfrRegisterSet(bCode, aVal)
	return 8
}

// leaIndexed builds a LEAX/LEAY/LEAU/LEAS handler. selectReg picks the
// destination register from the live CPU instance at call time (LEA runs
// long after init() populates the opcode table, so the table can't cache
// a pointer into any particular CPU's fields). armsNMI is set for LEAS
// only, matching regS's write path.
func leaIndexed(selectReg func(c *CPU) *uint16, setZ, armsNMI bool) opcodeFunc {
	return func(c *CPU, b bus.Bus, m bus.Master) int {
		addr, extra := c.effectiveAddressIndexed(b, m)
		*selectReg(c) = addr
		if armsNMI {
			c.nmiArmed = true
		}
		if setZ {
			c.CC.Zero = addr == 0
		}
		return 4 + extra
	}
}

func opABX(c *CPU, b bus.Bus, m bus.Master) int {
	c.X += uint16(c.B)
	return 3
}

func opDAA(c *CPU, b bus.Bus, m bus.Master) int {
	// Binary-coded-decimal correction following the 6809 datasheet's
	// half-carry/carry-driven nibble adjustment table.
	correction := uint8(0)
	carry := c.CC.Carry

	lowNibble := c.A & 0x0F
	highNibble := c.A >> 4

	if c.CC.HalfCarry || lowNibble > 9 {
		correction |= 0x06
	}
	if carry || highNibble > 9 || (highNibble >= 9 && lowNibble > 9) {
		correction |= 0x60
		carry = true
	}

	wide := uint16(c.A) + uint16(correction)
	c.A = uint8(wide)
	c.CC.Negative = c.A&0x80 != 0
	c.CC.Zero = c.A == 0
	c.CC.Overflow = false
	c.CC.Carry = carry || wide > 0xFF
	return 2
}

func opSEX(c *CPU, b bus.Bus, m bus.Master) int {
	c.SetD(uint16(int16(int8(c.B))))
	c.CC.Negative = c.B&0x80 != 0
	c.CC.Zero = c.D() == 0
	return 2
}

func opMUL(c *CPU, b bus.Bus, m bus.Master) int {
	result := uint16(c.A) * uint16(c.B)
	c.SetD(result)
	c.CC.Zero = result == 0
	c.CC.Carry = result&0x80 != 0
	return 11
}

func opNOP(c *CPU, b bus.Bus, m bus.Master) int {
	return 2
}

func opJMPDirect(c *CPU, b bus.Bus, m bus.Master) int {
	c.PC = c.effectiveAddressDirect(b, m)
	return 3
}

func opJMPIndexed(c *CPU, b bus.Bus, m bus.Master) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	c.PC = addr
	return 3 + extra
}

func opJMPExtended(c *CPU, b bus.Bus, m bus.Master) int {
	c.PC = c.effectiveAddressExtended(b, m)
	return 4
}

func opJSRDirect(c *CPU, b bus.Bus, m bus.Master) int {
	addr := c.effectiveAddressDirect(b, m)
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.PC = addr
	return 7
}

func opJSRIndexed(c *CPU, b bus.Bus, m bus.Master) int {
	addr, extra := c.effectiveAddressIndexed(b, m)
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.PC = addr
	return 7 + extra
}

func opJSRExtended(c *CPU, b bus.Bus, m bus.Master) int {
	addr := c.effectiveAddressExtended(b, m)
	c.S--
	b.Write(m, c.S, uint8(c.PC))
	c.S--
	b.Write(m, c.S, uint8(c.PC>>8))
	c.PC = addr
	return 8
}

func opRTS(c *CPU, b bus.Bus, m bus.Master) int {
	hi := b.Read(m, c.S)
	c.S++
	lo := b.Read(m, c.S)
	c.S++
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 5
}
