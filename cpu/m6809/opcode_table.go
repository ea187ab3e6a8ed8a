package m6809

import "github.com/mvandenberg/sc1emu/bus"

// opcodeFunc executes one fully-decoded instruction (including any
// operand-fetch bus traffic) and returns its total datasheet cycle
// count, which the caller (TickWithBus) spends across subsequent ticks.
type opcodeFunc func(c *CPU, b bus.Bus, m bus.Master) int

var page1Table = map[uint8]opcodeFunc{}
var page2Table = map[uint8]opcodeFunc{}
var page3Table = map[uint8]opcodeFunc{}

func store8(table map[uint8]opcodeFunc, dir, idx, ext uint8, selectReg func(c *CPU) *uint8) {
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeDirect8(c, b, m, selectReg(c), 4) }
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeIndexed8(c, b, m, selectReg(c), 4) }
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeExtended8(c, b, m, selectReg(c), 5) }
}

func accum16(table map[uint8]opcodeFunc, imm, dir, idx, ext uint8, r reg16, op accum16Op, cImm, cDir, cIdx, cExt int) {
	table[imm] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerImmediate16(c, b, m, r, op, cImm)
	}
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerDirect16(c, b, m, r, op, cDir)
	}
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerIndexed16(c, b, m, r, op, cIdx)
	}
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerExtended16(c, b, m, r, op, cExt)
	}
}

func store16(table map[uint8]opcodeFunc, dir, idx, ext uint8, r reg16, cDir, cIdx, cExt int) {
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeDirect16(c, b, m, r, cDir) }
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeIndexed16(c, b, m, r, cIdx) }
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int { return storeExtended16(c, b, m, r, cExt) }
}

// wireAccum wires one 8-bit ALU/load operation across its four addressing
// modes into table, selecting the accumulator (A or B) at call time since
// the table is built once in init(), long before any CPU exists.
func wireAccum(table map[uint8]opcodeFunc, imm, dir, idx, ext uint8, selectReg func(c *CPU) *uint8, op accum8Op, cImm, cDir, cIdx, cExt int) {
	table[imm] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerImmediate8(c, b, m, selectReg(c), op, cImm)
	}
	table[dir] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerDirect8(c, b, m, selectReg(c), op, cDir)
	}
	table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerIndexed8(c, b, m, selectReg(c), op, cIdx)
	}
	table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return registerExtended8(c, b, m, selectReg(c), op, cExt)
	}
}

func selectA(c *CPU) *uint8 { return &c.A }
func selectB(c *CPU) *uint8 { return &c.B }
func selectX(c *CPU) *uint16 { return &c.X }
func selectY(c *CPU) *uint16 { return &c.Y }
func selectU(c *CPU) *uint16 { return &c.U }
func selectS(c *CPU) *uint16 { return &c.S }

// wireRMWPair wires one read-modify-write operation's indexed and
// extended opcode bytes (the pair always shares cIdx=6/cExt=7 on the
// real part, so only the op and byte values vary per call).
func wireRMWPair(idx, ext uint8, op rmwOp) {
	page1Table[idx] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwIndexed(c, b, m, op, 6) }
	page1Table[ext] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwExtended(c, b, m, op, 7) }
}

// wireRMWInherent wires one read-modify-write operation against a single
// accumulator (inherent addressing only, 2 cycles on the real part).
func wireRMWInherent(opcode uint8, selectReg func(c *CPU) *uint8, op rmwOp) {
	page1Table[opcode] = func(c *CPU, b bus.Bus, m bus.Master) int {
		return rmwInherent(c, selectReg(c), op, 2)
	}
}

func init() {
	// --- Direct-page read-modify-write and JMP/CLR, 0x00-0x0F ---
	page1Table[0x00] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opNEG, 6) }
	page1Table[0x03] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opCOM, 6) }
	page1Table[0x04] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opLSR, 6) }
	page1Table[0x06] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opROR, 6) }
	page1Table[0x07] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opASR, 6) }
	page1Table[0x08] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opASL, 6) }
	page1Table[0x09] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opROL, 6) }
	page1Table[0x0A] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opDEC, 6) }
	page1Table[0x0C] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opINC, 6) }
	page1Table[0x0D] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opTST, 6) }
	page1Table[0x0E] = opJMPDirect
	page1Table[0x0F] = func(c *CPU, b bus.Bus, m bus.Master) int { return rmwDirect(c, b, m, opCLR, 6) }

	// --- Inherent misc, 0x12-0x1F ---
	page1Table[0x12] = opNOP
	page1Table[0x13] = opSYNC
	page1Table[0x16] = func(c *CPU, b bus.Bus, m bus.Master) int { // LBRA
		hi := b.Read(m, c.PC)
		c.PC++
		lo := b.Read(m, c.PC)
		c.PC++
		off := int16(uint16(hi)<<8 | uint16(lo))
		c.PC = uint16(int32(c.PC) + int32(off))
		return 5
	}
	page1Table[0x17] = opLBSR
	page1Table[0x19] = opDAA
	page1Table[0x1A] = func(c *CPU, b bus.Bus, m bus.Master) int { // ORCC
		v := b.Read(m, c.PC)
		c.PC++
		c.CC.FromValue(c.CC.Value() | v)
		return 3
	}
	page1Table[0x1C] = func(c *CPU, b bus.Bus, m bus.Master) int { // ANDCC
		v := b.Read(m, c.PC)
		c.PC++
		c.CC.FromValue(c.CC.Value() & v)
		return 3
	}
	page1Table[0x1D] = opSEX
	page1Table[0x1E] = opEXG
	page1Table[0x1F] = opTFR

	// --- Short branches, 0x20-0x2F ---
	conds := []condCode{
		condAlways, condNever, condHigher, condLowerOrSame,
		condCarryClear, condCarrySet, condNotEqual, condEqual,
		condOverflowClear, condOverflowSet, condPlus, condMinus,
		condGreaterOrEqual, condLessThan, condGreaterThan, condLessOrEqual,
	}
	for i, cond := range conds {
		page1Table[uint8(0x20+i)] = shortBranch(cond)
	}

	// --- LEA / stack / misc, 0x30-0x3F ---
	page1Table[0x30] = leaIndexed(selectX, true, false)
	page1Table[0x31] = leaIndexed(selectY, true, false)
	page1Table[0x32] = leaIndexed(selectS, false, true)
	page1Table[0x33] = leaIndexed(selectU, false, false)
	page1Table[0x34] = opPSHS
	page1Table[0x35] = opPULS
	page1Table[0x36] = opPSHU
	page1Table[0x37] = opPULU
	page1Table[0x39] = opRTS
	page1Table[0x3A] = opABX
	page1Table[0x3B] = opRTI
	page1Table[0x3C] = opCWAI
	page1Table[0x3D] = opMUL
	page1Table[0x3F] = opSWI

	// --- Inherent A/B read-modify-write, 0x40-0x5F ---
	wireRMWInherent(0x40, selectA, opNEG)
	wireRMWInherent(0x43, selectA, opCOM)
	wireRMWInherent(0x44, selectA, opLSR)
	wireRMWInherent(0x46, selectA, opROR)
	wireRMWInherent(0x47, selectA, opASR)
	wireRMWInherent(0x48, selectA, opASL)
	wireRMWInherent(0x49, selectA, opROL)
	wireRMWInherent(0x4A, selectA, opDEC)
	wireRMWInherent(0x4C, selectA, opINC)
	wireRMWInherent(0x4D, selectA, opTST)
	wireRMWInherent(0x4F, selectA, opCLR)

	wireRMWInherent(0x50, selectB, opNEG)
	wireRMWInherent(0x53, selectB, opCOM)
	wireRMWInherent(0x54, selectB, opLSR)
	wireRMWInherent(0x56, selectB, opROR)
	wireRMWInherent(0x57, selectB, opASR)
	wireRMWInherent(0x58, selectB, opASL)
	wireRMWInherent(0x59, selectB, opROL)
	wireRMWInherent(0x5A, selectB, opDEC)
	wireRMWInherent(0x5C, selectB, opINC)
	wireRMWInherent(0x5D, selectB, opTST)
	wireRMWInherent(0x5F, selectB, opCLR)

	// --- Indexed/extended read-modify-write + JMP, 0x60-0x7F ---
	wireRMWPair(0x60, 0x70, opNEG)
	wireRMWPair(0x63, 0x73, opCOM)
	wireRMWPair(0x64, 0x74, opLSR)
	wireRMWPair(0x66, 0x76, opROR)
	wireRMWPair(0x67, 0x77, opASR)
	wireRMWPair(0x68, 0x78, opASL)
	wireRMWPair(0x69, 0x79, opROL)
	wireRMWPair(0x6A, 0x7A, opDEC)
	wireRMWPair(0x6C, 0x7C, opINC)
	wireRMWPair(0x6D, 0x7D, opTST)
	wireRMWPair(0x6F, 0x7F, opCLR)
	page1Table[0x6E] = opJMPIndexed
	page1Table[0x7E] = opJMPExtended

	// --- A-accumulator ALU + JSR/LDX/STX, 0x80-0xBF ---
	wireAccum(page1Table, 0x80, 0x90, 0xA0, 0xB0, selectA, opSUB, 2, 4, 4, 5)
	wireAccum(page1Table, 0x81, 0x91, 0xA1, 0xB1, selectA, opCMP, 2, 4, 4, 5)
	wireAccum(page1Table, 0x82, 0x92, 0xA2, 0xB2, selectA, opSBC, 2, 4, 4, 5)
	wireAccum(page1Table, 0x84, 0x94, 0xA4, 0xB4, selectA, opAND, 2, 4, 4, 5)
	wireAccum(page1Table, 0x85, 0x95, 0xA5, 0xB5, selectA, opBIT, 2, 4, 4, 5)
	wireAccum(page1Table, 0x86, 0x96, 0xA6, 0xB6, selectA, opLD, 2, 4, 4, 5)
	wireAccum(page1Table, 0x88, 0x98, 0xA8, 0xB8, selectA, opEOR, 2, 4, 4, 5)
	wireAccum(page1Table, 0x89, 0x99, 0xA9, 0xB9, selectA, opADC, 2, 4, 4, 5)
	wireAccum(page1Table, 0x8A, 0x9A, 0xAA, 0xBA, selectA, opORA, 2, 4, 4, 5)
	wireAccum(page1Table, 0x8B, 0x9B, 0xAB, 0xBB, selectA, opADD, 2, 4, 4, 5)
	store8(page1Table, 0x97, 0xA7, 0xB7, selectA)

	accum16(page1Table, 0x8C, 0x9C, 0xAC, 0xBC, regX, opCMP16, 4, 6, 6, 7)
	page1Table[0x8D] = opBSR
	page1Table[0x9D] = opJSRDirect
	page1Table[0xAD] = opJSRIndexed
	page1Table[0xBD] = opJSRExtended
	accum16(page1Table, 0x8E, 0x9E, 0xAE, 0xBE, regX, opLD16, 3, 5, 5, 6)
	store16(page1Table, 0x9F, 0xAF, 0xBF, regX, 5, 5, 6)

	// --- B-accumulator ALU + D/U ops, 0xC0-0xFF ---
	wireAccum(page1Table, 0xC0, 0xD0, 0xE0, 0xF0, selectB, opSUB, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC1, 0xD1, 0xE1, 0xF1, selectB, opCMP, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC2, 0xD2, 0xE2, 0xF2, selectB, opSBC, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC4, 0xD4, 0xE4, 0xF4, selectB, opAND, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC5, 0xD5, 0xE5, 0xF5, selectB, opBIT, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC6, 0xD6, 0xE6, 0xF6, selectB, opLD, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC8, 0xD8, 0xE8, 0xF8, selectB, opEOR, 2, 4, 4, 5)
	wireAccum(page1Table, 0xC9, 0xD9, 0xE9, 0xF9, selectB, opADC, 2, 4, 4, 5)
	wireAccum(page1Table, 0xCA, 0xDA, 0xEA, 0xFA, selectB, opORA, 2, 4, 4, 5)
	wireAccum(page1Table, 0xCB, 0xDB, 0xEB, 0xFB, selectB, opADD, 2, 4, 4, 5)
	store8(page1Table, 0xD7, 0xE7, 0xF7, selectB)

	accum16(page1Table, 0x83, 0x93, 0xA3, 0xB3, regD, opSUB16, 4, 6, 6, 7)
	accum16(page1Table, 0xC3, 0xD3, 0xE3, 0xF3, regD, opADD16, 4, 6, 6, 7)
	accum16(page1Table, 0xCC, 0xDC, 0xEC, 0xFC, regD, opLD16, 3, 5, 5, 6)
	store16(page1Table, 0xDD, 0xED, 0xFD, regD, 5, 5, 6)
	accum16(page1Table, 0xCE, 0xDE, 0xEE, 0xFE, regU, opLD16, 3, 5, 5, 6)
	store16(page1Table, 0xDF, 0xEF, 0xFF, regU, 5, 5, 6)

	// --- Page 2 (prefix 0x10): long branches, SWI2, CMPD/CMPY, LDY/STY, LDS/STS ---
	for i, cond := range conds {
		if cond == condAlways {
			continue // 0x1021 is LBRN; plain LBRA lives at page1 0x16
		}
		page2Table[uint8(0x20+i)] = longBranch(cond)
	}
	page2Table[0x3F] = opSWI2
	accum16(page2Table, 0x83, 0x93, 0xA3, 0xB3, regD, opCMP16, 5, 7, 7, 8)
	accum16(page2Table, 0x8C, 0x9C, 0xAC, 0xBC, regY, opCMP16, 5, 7, 7, 8)
	accum16(page2Table, 0x8E, 0x9E, 0xAE, 0xBE, regY, opLD16, 4, 6, 6, 7)
	store16(page2Table, 0x9F, 0xAF, 0xBF, regY, 6, 6, 7)
	accum16(page2Table, 0xCE, 0xDE, 0xEE, 0xFE, regS, opLD16, 4, 6, 6, 7)
	store16(page2Table, 0xDF, 0xEF, 0xFF, regS, 6, 6, 7)

	// --- Page 3 (prefix 0x11): SWI3, CMPU/CMPS ---
	page3Table[0x3F] = opSWI3
	accum16(page3Table, 0x83, 0x93, 0xA3, 0xB3, regU, opCMP16, 5, 7, 7, 8)
	accum16(page3Table, 0x8C, 0x9C, 0xAC, 0xBC, regS, opCMP16, 5, 7, 7, 8)
}
