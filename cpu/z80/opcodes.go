package z80

import "github.com/mvandenberg/sc1emu/bus"

// pairGet/pairSet implement the PUSH/POP "qq" register-pair code, which
// swaps in AF where the "dd"/"ss" code used elsewhere swaps in SP.
func pairGet(c *CPU, code uint8) uint16 {
	if code == 3 {
		return c.getAF()
	}
	return reg16Get(c, code)
}

func pairSet(c *CPU, code uint8, v uint16) {
	if code == 3 {
		c.setAF(v)
		return
	}
	reg16Set(c, code, v)
}

// condTrue evaluates the 3-bit condition code used by JP/CALL/RET cc:
// 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) condTrue(cc uint8) bool {
	switch cc {
	case 0:
		return c.F&flagZ == 0
	case 1:
		return c.F&flagZ != 0
	case 2:
		return c.F&flagC == 0
	case 3:
		return c.F&flagC != 0
	case 4:
		return c.F&flagPV == 0
	case 5:
		return c.F&flagPV != 0
	case 6:
		return c.F&flagS == 0
	case 7:
		return c.F&flagS != 0
	}
	return false
}

var baseTable = map[uint8]func(c *CPU, b bus.Bus, m bus.Master) int{}

func init() {
	baseTable[0x00] = func(c *CPU, b bus.Bus, m bus.Master) int { return 4 }

	baseTable[0x08] = func(c *CPU, b bus.Bus, m bus.Master) int { // EX AF,AF'
		c.A, c.A2 = c.A2, c.A
		c.F, c.F2 = c.F2, c.F
		return 4
	}
	baseTable[0xD9] = func(c *CPU, b bus.Bus, m bus.Master) int { // EXX
		c.B, c.B2 = c.B2, c.B
		c.C, c.C2 = c.C2, c.C
		c.D, c.D2 = c.D2, c.D
		c.E, c.E2 = c.E2, c.E
		c.H, c.H2 = c.H2, c.H
		c.L, c.L2 = c.L2, c.L
		return 4
	}
	baseTable[0xEB] = func(c *CPU, b bus.Bus, m bus.Master) int { // EX DE,HL
		c.D, c.H = c.H, c.D
		c.E, c.L = c.L, c.E
		return 4
	}
	baseTable[0xE3] = func(c *CPU, b bus.Bus, m bus.Master) int { // EX (SP),HL
		lo := b.Read(m, c.SP)
		hi := b.Read(m, c.SP+1)
		b.Write(m, c.SP, c.L)
		b.Write(m, c.SP+1, c.H)
		c.L, c.H = lo, hi
		c.MEMPTR = c.getHL()
		return 19
	}

	baseTable[0x76] = func(c *CPU, b bus.Bus, m bus.Master) int { c.halted = true; return 4 } // HALT
	baseTable[0xF3] = func(c *CPU, b bus.Bus, m bus.Master) int { c.IFF1, c.IFF2 = false, false; return 4 }
	baseTable[0xFB] = func(c *CPU, b bus.Bus, m bus.Master) int { c.IFF1, c.IFF2 = true, true; return 4 }

	baseTable[0x07] = func(c *CPU, b bus.Bus, m bus.Master) int { // RLCA
		carry := c.A&0x80 != 0
		c.A = c.A<<1 | c.A>>7
		f := c.F&(flagS|flagZ|flagPV) | sz53(c.A)&(flagY|flagX)
		if carry {
			f |= flagC
		}
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x0F] = func(c *CPU, b bus.Bus, m bus.Master) int { // RRCA
		carry := c.A&0x01 != 0
		c.A = c.A>>1 | c.A<<7
		f := c.F&(flagS|flagZ|flagPV) | c.A&(flagY|flagX)
		if carry {
			f |= flagC
		}
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x17] = func(c *CPU, b bus.Bus, m bus.Master) int { // RLA
		carry := c.A&0x80 != 0
		r := c.A << 1
		if c.F&flagC != 0 {
			r |= 0x01
		}
		c.A = r
		f := c.F&(flagS|flagZ|flagPV) | c.A&(flagY|flagX)
		if carry {
			f |= flagC
		}
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x1F] = func(c *CPU, b bus.Bus, m bus.Master) int { // RRA
		carry := c.A&0x01 != 0
		r := c.A >> 1
		if c.F&flagC != 0 {
			r |= 0x80
		}
		c.A = r
		f := c.F&(flagS|flagZ|flagPV) | c.A&(flagY|flagX)
		if carry {
			f |= flagC
		}
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x2F] = func(c *CPU, b bus.Bus, m bus.Master) int { // CPL
		c.A = ^c.A
		c.F = c.F&(flagS|flagZ|flagPV|flagC) | flagN | flagH | c.A&(flagY|flagX)
		c.setQ()
		return 4
	}
	baseTable[0x37] = func(c *CPU, b bus.Bus, m bus.Master) int { // SCF
		f := c.F&(flagS|flagZ|flagPV) | flagC
		if c.Q != 0 {
			f |= c.F & (flagY | flagX)
		}
		f |= c.A & (flagY | flagX)
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x3F] = func(c *CPU, b bus.Bus, m bus.Master) int { // CCF
		wasCarry := c.F&flagC != 0
		f := c.F & (flagS | flagZ | flagPV)
		if wasCarry {
			f |= flagH
		} else {
			f |= flagC
		}
		if c.Q != 0 {
			f |= c.F & (flagY | flagX)
		}
		f |= c.A & (flagY | flagX)
		c.F = f
		c.setQ()
		return 4
	}
	baseTable[0x27] = func(c *CPU, b bus.Bus, m bus.Master) int { return daa(c) }

	baseTable[0x10] = func(c *CPU, b bus.Bus, m bus.Master) int { // DJNZ e
		e := int8(b.Read(m, c.PC))
		c.PC++
		c.B--
		if c.B != 0 {
			c.PC = uint16(int32(c.PC) + int32(e))
			c.MEMPTR = c.PC
			return 13
		}
		return 8
	}
	baseTable[0x18] = func(c *CPU, b bus.Bus, m bus.Master) int { // JR e
		e := int8(b.Read(m, c.PC))
		c.PC++
		c.PC = uint16(int32(c.PC) + int32(e))
		c.MEMPTR = c.PC
		return 12
	}
	wireJR := func(op uint8, cc uint8) {
		baseTable[op] = func(c *CPU, b bus.Bus, m bus.Master) int {
			e := int8(b.Read(m, c.PC))
			c.PC++
			if c.condTrue(cc) {
				c.PC = uint16(int32(c.PC) + int32(e))
				c.MEMPTR = c.PC
				return 12
			}
			return 7
		}
	}
	wireJR(0x20, 0)
	wireJR(0x28, 1)
	wireJR(0x30, 2)
	wireJR(0x38, 3)

	wire16 := func(ldOp, incOp, decOp, addOp uint8, code uint8) {
		baseTable[ldOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			reg16Set(c, code, fetch16(c, b, m))
			return 10
		}
		baseTable[incOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			reg16Set(c, code, reg16Get(c, code)+1)
			return 6
		}
		baseTable[decOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			reg16Set(c, code, reg16Get(c, code)-1)
			return 6
		}
		baseTable[addOp] = func(c *CPU, b bus.Bus, m bus.Master) int {
			c.MEMPTR = c.getHL() + 1
			c.setHL(c.addHL16(c.getHL(), reg16Get(c, code)))
			return 11
		}
	}
	wire16(0x01, 0x03, 0x0B, 0x09, 0)
	wire16(0x11, 0x13, 0x1B, 0x19, 1)
	wire16(0x21, 0x23, 0x2B, 0x29, 2)
	wire16(0x31, 0x33, 0x3B, 0x39, 3)

	baseTable[0x02] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD (BC),A
		b.Write(m, c.getBC(), c.A)
		c.MEMPTR = uint16(c.A)<<8 | (c.getBC()+1)&0xFF
		return 7
	}
	baseTable[0x12] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD (DE),A
		b.Write(m, c.getDE(), c.A)
		c.MEMPTR = uint16(c.A)<<8 | (c.getDE()+1)&0xFF
		return 7
	}
	baseTable[0x0A] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD A,(BC)
		addr := c.getBC()
		c.A = b.Read(m, addr)
		c.MEMPTR = addr + 1
		return 7
	}
	baseTable[0x1A] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD A,(DE)
		addr := c.getDE()
		c.A = b.Read(m, addr)
		c.MEMPTR = addr + 1
		return 7
	}
	baseTable[0x22] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD (nn),HL
		addr := fetch16(c, b, m)
		b.Write(m, addr, c.L)
		b.Write(m, addr+1, c.H)
		c.MEMPTR = addr + 1
		return 16
	}
	baseTable[0x2A] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD HL,(nn)
		addr := fetch16(c, b, m)
		lo := b.Read(m, addr)
		hi := b.Read(m, addr+1)
		c.setHL(uint16(hi)<<8 | uint16(lo))
		c.MEMPTR = addr + 1
		return 16
	}
	baseTable[0x32] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD (nn),A
		addr := fetch16(c, b, m)
		b.Write(m, addr, c.A)
		c.MEMPTR = (addr + 1) & 0xFF
		c.MEMPTR |= uint16(c.A) << 8
		return 13
	}
	baseTable[0x3A] = func(c *CPU, b bus.Bus, m bus.Master) int { // LD A,(nn)
		addr := fetch16(c, b, m)
		c.A = b.Read(m, addr)
		c.MEMPTR = addr + 1
		return 13
	}

	incReg := func(op uint8, code uint8) {
		baseTable[op] = func(c *CPU, b bus.Bus, m bus.Master) int {
			v := reg8Get(c, b, m, code)
			reg8Set(c, b, m, code, c.inc8(v))
			if code == 6 {
				return 11
			}
			return 4
		}
	}
	decReg := func(op uint8, code uint8) {
		baseTable[op] = func(c *CPU, b bus.Bus, m bus.Master) int {
			v := reg8Get(c, b, m, code)
			reg8Set(c, b, m, code, c.dec8(v))
			if code == 6 {
				return 11
			}
			return 4
		}
	}
	ldImm := func(op uint8, code uint8) {
		baseTable[op] = func(c *CPU, b bus.Bus, m bus.Master) int {
			n := b.Read(m, c.PC)
			c.PC++
			reg8Set(c, b, m, code, n)
			if code == 6 {
				return 10
			}
			return 7
		}
	}
	for code := uint8(0); code <= 7; code++ {
		base := code * 8
		incReg(base+0x04, code)
		decReg(base+0x05, code)
		ldImm(base+0x06, code)
	}

	// LD r,r' block, 0x40-0x7F, with 0x76 (HALT) carved out above.
	for dst := uint8(0); dst <= 7; dst++ {
		for src := uint8(0); src <= 7; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			d, s := dst, src
			baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
				v := reg8Get(c, b, m, s)
				reg8Set(c, b, m, d, v)
				if d == 6 || s == 6 {
					return 7
				}
				return 4
			}
		}
	}

	// ALU A,r block, 0x80-0xBF.
	for op := uint8(0); op <= 7; op++ {
		for src := uint8(0); src <= 7; src++ {
			opcode := 0x80 | op<<3 | src
			aluCode, s := op, src
			baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
				v := reg8Get(c, b, m, s)
				c.A = c.aluOp(aluCode, v)
				if s == 6 {
					return 7
				}
				return 4
			}
		}
	}
	// ALU A,n block, 0xC6/CE/D6/DE/E6/EE/F6/FE.
	for op := uint8(0); op <= 7; op++ {
		opcode := 0xC6 | op<<3
		aluCode := op
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			n := b.Read(m, c.PC)
			c.PC++
			c.A = c.aluOp(aluCode, n)
			return 7
		}
	}

	baseTable[0xC9] = func(c *CPU, b bus.Bus, m bus.Master) int { // RET
		c.PC = pop16(c, b, m)
		c.MEMPTR = c.PC
		return 10
	}
	for cc := uint8(0); cc <= 7; cc++ {
		opcode := 0xC0 | cc<<3
		cond := cc
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			if c.condTrue(cond) {
				c.PC = pop16(c, b, m)
				c.MEMPTR = c.PC
				return 11
			}
			return 5
		}
	}
	for cc := uint8(0); cc <= 7; cc++ {
		opcode := 0xC2 | cc<<3
		cond := cc
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			addr := fetch16(c, b, m)
			c.MEMPTR = addr
			if c.condTrue(cond) {
				c.PC = addr
			}
			return 10
		}
	}
	baseTable[0xC3] = func(c *CPU, b bus.Bus, m bus.Master) int { // JP nn
		addr := fetch16(c, b, m)
		c.PC = addr
		c.MEMPTR = addr
		return 10
	}
	for cc := uint8(0); cc <= 7; cc++ {
		opcode := 0xC4 | cc<<3
		cond := cc
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			addr := fetch16(c, b, m)
			c.MEMPTR = addr
			if c.condTrue(cond) {
				push16(c, b, m, c.PC)
				c.PC = addr
				return 17
			}
			return 10
		}
	}
	baseTable[0xCD] = func(c *CPU, b bus.Bus, m bus.Master) int { // CALL nn
		addr := fetch16(c, b, m)
		c.MEMPTR = addr
		push16(c, b, m, c.PC)
		c.PC = addr
		return 17
	}
	for code := uint8(0); code <= 3; code++ {
		opcode := 0xC1 | code<<4
		pc := code
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			pairSet(c, pc, pop16(c, b, m))
			return 10
		}
	}
	for code := uint8(0); code <= 3; code++ {
		opcode := 0xC5 | code<<4
		pc := code
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			push16(c, b, m, pairGet(c, pc))
			return 11
		}
	}
	for n := uint8(0); n <= 7; n++ {
		opcode := 0xC7 | n<<3
		target := uint16(n) * 8
		baseTable[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
			push16(c, b, m, c.PC)
			c.PC = target
			c.MEMPTR = target
			return 11
		}
	}
	baseTable[0xE9] = func(c *CPU, b bus.Bus, m bus.Master) int { c.PC = c.getHL(); return 4 } // JP (HL)
	baseTable[0xF9] = func(c *CPU, b bus.Bus, m bus.Master) int { c.SP = c.getHL(); return 6 }  // LD SP,HL

	// Base-plane opcodes for port I/O (IN A,(n) / OUT (n),A) have no
	// backing peripheral bus in this design; they consume the operand
	// byte and cycle cost but never touch A or any device.
	baseTable[0xD3] = func(c *CPU, b bus.Bus, m bus.Master) int { c.PC++; return 11 }
	baseTable[0xDB] = func(c *CPU, b bus.Bus, m bus.Master) int { c.PC++; return 11 }
}

// daa implements DAA's documented BCD-correction table, driven off the
// N/C/H flags left by the previous ALU operation.
func daa(c *CPU) int {
	a := c.A
	correction := uint8(0)
	carry := c.F&flagC != 0
	halfCarry := c.F&flagH != 0
	subtract := c.F&flagN != 0

	if halfCarry || a&0x0F > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}
	var result uint8
	if subtract {
		result = a - correction
	} else {
		result = a + correction
	}

	f := sz53(result) | c.F&flagN
	if carry {
		f |= flagC
	}
	if subtract {
		if halfCarry && a&0x0F < 6 {
			f |= flagH
		}
	} else {
		if a&0x0F > 9 {
			f |= flagH
		}
	}
	if parity(result) {
		f |= flagPV
	}
	c.A = result
	c.F = f
	c.setQ()
	return 4
}

// execute decodes and runs a single instruction (opcode already fetched
// and PC already advanced past it), returning its T-state cost including
// any prefix bytes it consumed.
func (c *CPU) execute(b bus.Bus, m bus.Master, opcode uint8) int {
	switch opcode {
	case 0xCB:
		op2 := b.Read(m, c.PC)
		c.PC++
		return executeCB(c, b, m, op2) + 4
	case 0xED:
		op2 := b.Read(m, c.PC)
		c.PC++
		c.bumpR()
		if fn, ok := edTable[op2]; ok {
			return fn(c, b, m)
		}
		return 8
	case 0xDD:
		return c.executeIndexed(b, m, &c.IX)
	case 0xFD:
		return c.executeIndexed(b, m, &c.IY)
	}
	if fn, ok := baseTable[opcode]; ok {
		return fn(c, b, m)
	}
	return 4
}
