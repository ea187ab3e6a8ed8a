package m6502

import "github.com/mvandenberg/sc1emu/cpu/flags"

func setNZ(c *CPU, v uint8) {
	c.Negative = v&0x80 != 0
	c.Zero = v == 0
}

func opLDA(c *CPU, v uint8) { c.A = v; setNZ(c, v) }
func opLDX(c *CPU, v uint8) { c.X = v; setNZ(c, v) }
func opLDY(c *CPU, v uint8) { c.Y = v; setNZ(c, v) }

func opAND(c *CPU, v uint8) { c.A &= v; setNZ(c, c.A) }
func opORA(c *CPU, v uint8) { c.A |= v; setNZ(c, c.A) }
func opEOR(c *CPU, v uint8) { c.A ^= v; setNZ(c, c.A) }

func opBIT(c *CPU, v uint8) {
	c.Zero = c.A&v == 0
	c.Negative = v&0x80 != 0
	c.Overflow = v&0x40 != 0
}

// opADC implements binary-mode addition; decimal-mode correction, while
// architecturally present on this family, is out of scope (the board this
// core exists to validate against never enables it).
func opADC(c *CPU, v uint8) {
	r := flags.AddCarry8(c.A, v, c.Carry)
	c.A = r.Value
	c.Carry = r.Carry
	c.Overflow = r.Overflow
	setNZ(c, c.A)
}

func opSBC(c *CPU, v uint8) {
	r := flags.SubBorrow8(c.A, v, !c.Carry)
	c.A = r.Value
	c.Carry = !r.Carry
	c.Overflow = r.Overflow
	setNZ(c, c.A)
}

func compare(c *CPU, reg, v uint8) {
	r := flags.SubBorrow8(reg, v, false)
	c.Carry = !r.Carry
	setNZ(c, r.Value)
}

func opCMP(c *CPU, v uint8) { compare(c, c.A, v) }
func opCPX(c *CPU, v uint8) { compare(c, c.X, v) }
func opCPY(c *CPU, v uint8) { compare(c, c.Y, v) }

func opASL(c *CPU, v uint8) uint8 {
	carry := v&0x80 != 0
	r := v << 1
	c.Carry = carry
	setNZ(c, r)
	return r
}

func opLSR(c *CPU, v uint8) uint8 {
	carry := v&0x01 != 0
	r := v >> 1
	c.Carry = carry
	setNZ(c, r)
	return r
}

func opROL(c *CPU, v uint8) uint8 {
	carry := v&0x80 != 0
	r := v << 1
	if c.Carry {
		r |= 0x01
	}
	c.Carry = carry
	setNZ(c, r)
	return r
}

func opROR(c *CPU, v uint8) uint8 {
	carry := v&0x01 != 0
	r := v >> 1
	if c.Carry {
		r |= 0x80
	}
	c.Carry = carry
	setNZ(c, r)
	return r
}

func opINC(c *CPU, v uint8) uint8 { r := v + 1; setNZ(c, r); return r }
func opDEC(c *CPU, v uint8) uint8 { r := v - 1; setNZ(c, r); return r }
