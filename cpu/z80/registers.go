package z80

import "github.com/mvandenberg/sc1emu/bus"

// reg8Get/reg8Set implement the Z80's regular 3-bit register code: 0=B,
// 1=C, 2=D, 3=E, 4=H, 5=L, 6=(HL), 7=A. This mapping is what makes the
// CB-prefixed bit/rotate/shift plane a dense, algorithmic decode rather
// than 256 individually hand-wired opcodes.
func reg8Get(c *CPU, b bus.Bus, m bus.Master, code uint8) uint8 {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return b.Read(m, c.getHL())
	case 7:
		return c.A
	}
	return 0
}

func reg8Set(c *CPU, b bus.Bus, m bus.Master, code uint8, v uint8) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		b.Write(m, c.getHL(), v)
	case 7:
		c.A = v
	}
}

// reg16Get/reg16Set implement the 2-bit "dd"/"qq" register-pair code used
// by 16-bit loads, INC/DEC and ADD HL,ss: 0=BC, 1=DE, 2=HL, 3=SP (or AF
// for PUSH/POP, handled by the caller since the encoding is context-
// dependent on the real part too).
func reg16Get(c *CPU, code uint8) uint16 {
	switch code {
	case 0:
		return c.getBC()
	case 1:
		return c.getDE()
	case 2:
		return c.getHL()
	case 3:
		return c.SP
	}
	return 0
}

func reg16Set(c *CPU, code uint8, v uint16) {
	switch code {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	case 3:
		c.SP = v
	}
}
