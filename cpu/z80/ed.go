package z80

import "github.com/mvandenberg/sc1emu/bus"

var edTable = map[uint8]func(c *CPU, b bus.Bus, m bus.Master) int{}

func init() {
	edTable[0x44] = func(c *CPU, b bus.Bus, m bus.Master) int { // NEG
		old := c.A
		c.A = c.sub8(0, old, false)
		if old == 0x80 {
			c.F |= flagPV
		} else {
			c.F &^= flagPV
		}
		return 8
	}
	edTable[0x46] = func(c *CPU, b bus.Bus, m bus.Master) int { c.IM = 0; return 8 }
	edTable[0x56] = func(c *CPU, b bus.Bus, m bus.Master) int { c.IM = 1; return 8 }
	edTable[0x5E] = func(c *CPU, b bus.Bus, m bus.Master) int { c.IM = 2; return 8 }
	edTable[0x45] = func(c *CPU, b bus.Bus, m bus.Master) int { // RETN
		c.PC = pop16(c, b, m)
		c.IFF1 = c.IFF2
		return 14
	}
	edTable[0x4D] = func(c *CPU, b bus.Bus, m bus.Master) int { // RETI
		c.PC = pop16(c, b, m)
		return 14
	}
	edTable[0x47] = func(c *CPU, b bus.Bus, m bus.Master) int { c.I = c.A; return 9 }
	edTable[0x4F] = func(c *CPU, b bus.Bus, m bus.Master) int { c.R = c.A; return 9 }
	edTable[0x57] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD A,I
		c.A = c.I
		f := sz53(c.A) & (flagS | flagZ | flagY | flagX)
		if c.IFF2 {
			f |= flagPV
		}
		f |= c.F & flagC
		c.F = f
		c.setQ()
		return 9
	}
	edTable[0x5F] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD A,R
		c.A = c.R
		f := sz53(c.A) & (flagS | flagZ | flagY | flagX)
		if c.IFF2 {
			f |= flagPV
		}
		f |= c.F & flagC
		c.F = f
		c.setQ()
		return 9
	}

	wireSbcAdc := func(adcOp, sbcOp uint8, code uint8) {
		edTable[adcOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			c.setHL(c.adc16(c.getHL(), reg16Get(c, code)))
			return 15
		}
		edTable[sbcOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			c.setHL(c.sbc16(c.getHL(), reg16Get(c, code)))
			return 15
		}
	}
	wireSbcAdc(0x4A, 0x42, 0)
	wireSbcAdc(0x5A, 0x52, 1)
	wireSbcAdc(0x6A, 0x62, 2)
	wireSbcAdc(0x7A, 0x72, 3)

	wireLdNN := func(store, load uint8, code uint8) {
		edTable[store] = func(c *CPU, b bus.Bus, m bus.Master) int {
			addr := fetch16(c, b, m)
			v := reg16Get(c, code)
			b.Write(m, addr, uint8(v))
			b.Write(m, addr+1, uint8(v>>8))
			c.MEMPTR = addr + 1
			return 20
		}
		edTable[load] = func(c *CPU, b bus.Bus, m bus.Master) int {
			addr := fetch16(c, b, m)
			lo := b.Read(m, addr)
			hi := b.Read(m, addr+1)
			reg16Set(c, code, uint16(hi)<<8|uint16(lo))
			c.MEMPTR = addr + 1
			return 20
		}
	}
	wireLdNN(0x43, 0x4B, 0)
	wireLdNN(0x53, 0x5B, 1)
	wireLdNN(0x73, 0x7B, 3)

	edTable[0x6F] = func(c *CPU, b bus.Bus, m bus.Master) int { // RLD
		addr := c.getHL()
		mem := b.Read(m, addr)
		newMem := mem<<4 | c.A&0x0F
		c.A = c.A&0xF0 | mem>>4
		b.Write(m, addr, newMem)
		c.F = sz53(c.A) | c.F&flagC
		if parity(c.A) {
			c.F |= flagPV
		}
		c.MEMPTR = addr + 1
		c.setQ()
		return 18
	}
	edTable[0x67] = func(c *CPU, b bus.Bus, m bus.Master) int { // RRD
		addr := c.getHL()
		mem := b.Read(m, addr)
		newMem := mem>>4 | (c.A&0x0F)<<4
		c.A = c.A&0xF0 | mem&0x0F
		b.Write(m, addr, newMem)
		c.F = sz53(c.A) | c.F&flagC
		if parity(c.A) {
			c.F |= flagPV
		}
		c.MEMPTR = addr + 1
		c.setQ()
		return 18
	}

	edTable[0xA0] = func(c *CPU, b bus.Bus, m bus.Master) int { return ldi(c, b, m, 1) }
	edTable[0xA8] = func(c *CPU, b bus.Bus, m bus.Master) int { return ldi(c, b, m, -1) }
	edTable[0xB0] = func(c *CPU, b bus.Bus, m bus.Master) int {
		cycles := ldi(c, b, m, 1)
		if c.getBC() != 0 {
			c.PC -= 2
			c.MEMPTR = c.PC + 1
			return 21
		}
		return cycles
	}
	edTable[0xB8] = func(c *CPU, b bus.Bus, m bus.Master) int {
		cycles := ldi(c, b, m, -1)
		if c.getBC() != 0 {
			c.PC -= 2
			c.MEMPTR = c.PC + 1
			return 21
		}
		return cycles
	}
	edTable[0xA1] = func(c *CPU, b bus.Bus, m bus.Master) int { return cpi(c, b, m, 1) }
	edTable[0xA9] = func(c *CPU, b bus.Bus, m bus.Master) int { return cpi(c, b, m, -1) }
	edTable[0xB1] = func(c *CPU, b bus.Bus, m bus.Master) int {
		cycles := cpi(c, b, m, 1)
		if c.getBC() != 0 && c.F&flagZ == 0 {
			c.PC -= 2
			c.MEMPTR = c.PC + 1
			return 21
		}
		return cycles
	}
	edTable[0xB9] = func(c *CPU, b bus.Bus, m bus.Master) int {
		cycles := cpi(c, b, m, -1)
		if c.getBC() != 0 && c.F&flagZ == 0 {
			c.PC -= 2
			c.MEMPTR = c.PC + 1
			return 21
		}
		return cycles
	}
}

func fetch16(c *CPU, b bus.Bus, m bus.Master) uint16 {
	lo := b.Read(m, c.PC)
	c.PC++
	hi := b.Read(m, c.PC)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// ldi implements LDI (dir=1) and LDD (dir=-1): copy (HL) to (DE), step
// both pointers, decrement BC. The undocumented Y/X flags come from
// A plus the transferred byte, per the documented quirk.
func ldi(c *CPU, b bus.Bus, m bus.Master, dir int16) int {
	hl, de := c.getHL(), c.getDE()
	v := b.Read(m, hl)
	b.Write(m, de, v)
	c.setHL(uint16(int32(hl) + int32(dir)))
	c.setDE(uint16(int32(de) + int32(dir)))
	bc := c.getBC() - 1
	c.setBC(bc)

	n := v + c.A
	f := c.F &^ (flagN | flagH | flagPV | flagY | flagX)
	if bc != 0 {
		f |= flagPV
	}
	if n&0x02 != 0 {
		f |= flagY
	}
	if n&0x08 != 0 {
		f |= flagX
	}
	c.F = f
	c.setQ()
	return 16
}

// cpi implements CPI (dir=1) and CPD (dir=-1): compare A against (HL)
// like CP, then step HL and decrement BC, without writing A.
func cpi(c *CPU, b bus.Bus, m bus.Master, dir int16) int {
	hl := c.getHL()
	v := b.Read(m, hl)
	result := c.A - v
	halfCarry := (c.A & 0x0F) < (v & 0x0F)
	c.setHL(uint16(int32(hl) + int32(dir)))
	bc := c.getBC() - 1
	c.setBC(bc)

	n := result
	if halfCarry {
		n--
	}
	f := sz53(result)&(flagS|flagZ) | flagN
	if halfCarry {
		f |= flagH
	}
	if bc != 0 {
		f |= flagPV
	}
	if n&0x02 != 0 {
		f |= flagY
	}
	if n&0x08 != 0 {
		f |= flagX
	}
	f |= c.F & flagC
	c.F = f
	c.setQ()
	return 16
}
