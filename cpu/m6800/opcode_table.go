package m6800

import "github.com/mvandenberg/sc1emu/bus"

type opcodeFunc func(c *CPU, b bus.Bus, m bus.Master) int

var table = map[uint8]opcodeFunc{}

func selectA(c *CPU) *uint8 { return &c.A }
func selectB(c *CPU) *uint8 { return &c.B }

func wireAccum(imm, dir, idx, ext uint8, selectReg func(c *CPU) *uint8, op accumOp) {
	table[imm] = func(c *CPU, b bus.Bus, m bus.Master) int { return accumImmediate(c, b, m, selectReg(c), op, 2) }
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int { return accumDirect(c, b, m, selectReg(c), op, 3) }
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int { return accumIndexed(c, b, m, selectReg(c), op, 5) }
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int { return accumExtended(c, b, m, selectReg(c), op, 4) }
}

func wireStore(dir, idx, ext uint8, selectReg func(c *CPU) *uint8) {
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeDirect(c, b, m, selectReg(c), 4) }
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeIndexed(c, b, m, selectReg(c), 6) }
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeExtended(c, b, m, selectReg(c), 5) }
}

func dispatch(c *CPU, b bus.Bus, m bus.Master, opcode uint8) int {
	if fn, ok := table[opcode]; ok {
		return fn(c, b, m)
	}
	return 2 // reserved encoding, execute as datasheet-timed NOP
}

func init() {
	table[0x01] = func(c *CPU, b bus.Bus, m bus.Master) int { return 2 } // NOP
	table[0x06] = func(c *CPU, b bus.Bus, m bus.Master) int { // TAP
		c.CC.FromValue(c.A)
		return 2
	}
	table[0x07] = func(c *CPU, b bus.Bus, m bus.Master) int { // TPA
		c.A = c.CC.Value() | 0xC0
		return 2
	}
	table[0x08] = func(c *CPU, b bus.Bus, m bus.Master) int { c.X++; return 4 }  // INX
	table[0x09] = func(c *CPU, b bus.Bus, m bus.Master) int { c.X--; return 4 }  // DEX
	table[0x0A] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.Overflow = false; return 2 } // CLV
	table[0x0B] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.Overflow = true; return 2 }  // SEV
	table[0x0C] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.Carry = false; return 2 }    // CLC
	table[0x0D] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.Carry = true; return 2 }     // SEC
	table[0x0E] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.IRQMask = false; return 2 }  // CLI
	table[0x0F] = func(c *CPU, b bus.Bus, m bus.Master) int { c.CC.IRQMask = true; return 2 }   // SEI

	table[0x10] = func(c *CPU, b bus.Bus, m bus.Master) int { // SBA
		opSUB(&c.CC, &c.A, c.B)
		return 2
	}
	table[0x11] = func(c *CPU, b bus.Bus, m bus.Master) int { // CBA
		opCMP(&c.CC, &c.A, c.B)
		return 2
	}
	table[0x19] = func(c *CPU, b bus.Bus, m bus.Master) int { // DAA
		correction := uint8(0)
		carry := c.CC.Carry
		lo, hi := c.A&0x0F, c.A>>4
		if c.CC.HalfCarry || lo > 9 {
			correction |= 0x06
		}
		if carry || hi > 9 || (hi >= 9 && lo > 9) {
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
	table[0x1B] = func(c *CPU, b bus.Bus, m bus.Master) int { // ABA
		opADD(&c.CC, &c.A, c.B)
		return 2
	}

	conds := []condCode{
		condAlways, condNever, condHigher, condLowerOrSame,
		condCarryClear, condCarrySet, condNotEqual, condEqual,
		condOverflowClear, condOverflowSet, condPlus, condMinus,
		condGreaterOrEqual, condLessThan, condGreaterThan, condLessOrEqual,
	}
	for i, cond := range conds {
		table[uint8(0x20+i)] = branch(cond)
	}

	table[0x8D] = opBSR
	table[0xAD] = opJSRIndexed
	table[0xBD] = opJSRExtended

	table[0x30] = func(c *CPU, b bus.Bus, m bus.Master) int { c.X = c.SP + 1; return 4 } // TSX
	table[0x31] = func(c *CPU, b bus.Bus, m bus.Master) int { c.SP = c.X - 1; return 4 } // TXS
	table[0x32] = opPULA
	table[0x33] = opPULB
	table[0x34] = func(c *CPU, b bus.Bus, m bus.Master) int { c.SP--; return 4 } // DES
	table[0x35] = func(c *CPU, b bus.Bus, m bus.Master) int { c.SP++; return 4 } // INS
	table[0x36] = opPSHA
	table[0x37] = opPSHB
	table[0x39] = opRTS
	table[0x3B] = opRTI
	table[0x3E] = opWAI
	table[0x3F] = opSWI

	wireInherentPair := func(aOp, bOp, idxOp, extOp uint8, rmwFn rmwOp) {
		table[aOp] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwInherent(c, &c.A, rmwFn, 2) }
		table[bOp] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwInherent(c, &c.B, rmwFn, 2) }
		table[idxOp] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwIndexed(c, b, m, rmwFn, 7) }
		table[extOp] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwExtended(c, b, m, rmwFn, 6) }
	}
	wireInherentPair(0x40, 0x50, 0x60, 0x70, opNEG)
	wireInherentPair(0x43, 0x53, 0x63, 0x73, opCOM)
	wireInherentPair(0x44, 0x54, 0x64, 0x74, opLSR)
	wireInherentPair(0x46, 0x56, 0x66, 0x76, opROR)
	wireInherentPair(0x47, 0x57, 0x67, 0x77, opASR)
	wireInherentPair(0x48, 0x58, 0x68, 0x78, opASL)
	wireInherentPair(0x49, 0x59, 0x69, 0x79, opROL)
	wireInherentPair(0x4A, 0x5A, 0x6A, 0x7A, opDEC)
	wireInherentPair(0x4C, 0x5C, 0x6C, 0x7C, opINC)
	wireInherentPair(0x4D, 0x5D, 0x6D, 0x7D, opTST)
	wireInherentPair(0x4F, 0x5F, 0x6F, 0x7F, opCLR)
	table[0x6E] = func(c *CPU, b bus.Bus, m bus.Master) int { c.PC = indexed(c, b, m); return 4 }  // JMP indexed
	table[0x7E] = func(c *CPU, b bus.Bus, m bus.Master) int { c.PC = extended(c, b, m); return 3 } // JMP extended

	wireAccum(0x80, 0x90, 0xA0, 0xB0, selectA, opSUB)
	wireAccum(0x81, 0x91, 0xA1, 0xB1, selectA, opCMP)
	wireAccum(0x82, 0x92, 0xA2, 0xB2, selectA, opSBC)
	wireAccum(0x84, 0x94, 0xA4, 0xB4, selectA, opAND)
	wireAccum(0x85, 0x95, 0xA5, 0xB5, selectA, opBIT)
	wireAccum(0x86, 0x96, 0xA6, 0xB6, selectA, opLD)
	wireStore(0x97, 0xA7, 0xB7, selectA)
	wireAccum(0x88, 0x98, 0xA8, 0xB8, selectA, opEOR)
	wireAccum(0x89, 0x99, 0xA9, 0xB9, selectA, opADC)
	wireAccum(0x8A, 0x9A, 0xAA, 0xBA, selectA, opORA)
	wireAccum(0x8B, 0x9B, 0xAB, 0xBB, selectA, opADD)

	wireAccum(0xC0, 0xD0, 0xE0, 0xF0, selectB, opSUB)
	wireAccum(0xC1, 0xD1, 0xE1, 0xF1, selectB, opCMP)
	wireAccum(0xC2, 0xD2, 0xE2, 0xF2, selectB, opSBC)
	wireAccum(0xC4, 0xD4, 0xE4, 0xF4, selectB, opAND)
	wireAccum(0xC5, 0xD5, 0xE5, 0xF5, selectB, opBIT)
	wireAccum(0xC6, 0xD6, 0xE6, 0xF6, selectB, opLD)
	wireStore(0xD7, 0xE7, 0xF7, selectB)
	wireAccum(0xC8, 0xD8, 0xE8, 0xF8, selectB, opEOR)
	wireAccum(0xC9, 0xD9, 0xE9, 0xF9, selectB, opADC)
	wireAccum(0xCA, 0xDA, 0xEA, 0xFA, selectB, opORA)
	wireAccum(0xCB, 0xDB, 0xEB, 0xFB, selectB, opADD)

	table[0x8C] = func(c *CPU, b bus.Bus, m bus.Master) int { // CPX immediate
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		operand := uint16(hi)<<8 | uint16(lo)
		r := c.X - operand
		c.CC.Negative = r&0x8000 != 0
		c.CC.Zero = r == 0
		c.CC.Overflow = (c.X^operand)&0x8000 != 0 && (c.X^r)&0x8000 != 0
		return 3
	}
	table[0xCE] = func(c *CPU, b bus.Bus, m bus.Master) int { // LDX immediate
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		c.X = uint16(hi)<<8 | uint16(lo)
		c.CC.Negative = c.X&0x8000 != 0
		c.CC.Zero = c.X == 0
		c.CC.Overflow = false
		return 3
	}
	table[0xDE] = func(c *CPU, b bus.Bus, m bus.Master) int { // LDX direct
		addr := direct(c, b, m)
		hi := b.Read(m, addr)
		lo := b.Read(m, addr+1)
		c.X = uint16(hi)<<8 | uint16(lo)
		c.CC.Negative = c.X&0x8000 != 0
		c.CC.Zero = c.X == 0
		c.CC.Overflow = false
		return 4
	}
	table[0xDF] = func(c *CPU, b bus.Bus, m bus.Master) int { // STX direct
		addr := direct(c, b, m)
		b.Write(m, addr, uint8(c.X>>8))
		b.Write(m, addr+1, uint8(c.X))
		c.CC.Negative = c.X&0x8000 != 0
		c.CC.Zero = c.X == 0
		c.CC.Overflow = false
		return 5
	}
}
