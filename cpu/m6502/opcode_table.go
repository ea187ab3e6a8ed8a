package m6502

import "github.com/mvandenberg/sc1emu/bus"

var table = map[uint8][]microOp{}

// dispatch looks up the micro-op queue for opcode; an unassigned byte
// (an illegal/undocumented opcode this core does not model) executes as
// a single-cycle NOP rather than panicking, per the reserved-encoding
// policy shared with the other cores.
func dispatch(opcode uint8) []microOp {
	if ops, ok := table[opcode]; ok {
		return ops
	}
	return nil
}

func inherent(fn func(c *CPU)) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC); fn(c) },
	}
}

func wireReadFamily(imm, zp, zpx, abs, absx, absy, indx, indy uint8, op readOp) {
	if imm != 0 {
		table[imm] = readImmediate(op)
	}
	table[zp] = readZeroPage(op)
	if zpx != 0 {
		table[zpx] = readZeroPageIndexed(indexX, op)
	}
	table[abs] = readAbsolute(op)
	if absx != 0 {
		table[absx] = readAbsoluteIndexed(indexX, op)
	}
	if absy != 0 {
		table[absy] = readAbsoluteIndexed(indexY, op)
	}
	if indx != 0 {
		table[indx] = readIndirectX(op)
	}
	if indy != 0 {
		table[indy] = readIndirectY(op)
	}
}

func wireRMWFamily(zp, zpx, abs, absx uint8, op rmwOp) {
	table[zp] = rmwZeroPage(op)
	table[zpx] = rmwZeroPageIndexed(indexX, op)
	table[abs] = rmwAbsolute(op)
	table[absx] = rmwAbsoluteIndexed(indexX, op)
}

func init() {
	// Loads.
	wireReadFamily(0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1, opLDA)
	wireReadFamily(0xA2, 0xA6, 0, 0xAE, 0, 0xBE, 0, 0, opLDX)
	table[0xB6] = readZeroPageIndexed(indexY, opLDX) // LDX zp,Y - the one load indexed by the other register
	wireReadFamily(0xA0, 0xA4, 0xB4, 0xAC, 0xBC, 0, 0, 0, opLDY)

	// Stores - implemented directly as writeOp closures rather than
	// reusing the read family's accumulator/X/Y selection, since STX/STY
	// have no immediate form and STA has no index-register variant.
	table[0x85] = writeZeroPage(func(c *CPU) uint8 { return c.A })
	table[0x95] = writeZeroPageIndexed(indexX, func(c *CPU) uint8 { return c.A })
	table[0x8D] = writeAbsolute(func(c *CPU) uint8 { return c.A })
	table[0x9D] = writeAbsoluteIndexed(indexX, func(c *CPU) uint8 { return c.A })
	table[0x99] = writeAbsoluteIndexed(indexY, func(c *CPU) uint8 { return c.A })
	table[0x81] = writeIndirectX(func(c *CPU) uint8 { return c.A })
	table[0x91] = writeIndirectY(func(c *CPU) uint8 { return c.A })
	table[0x86] = writeZeroPage(func(c *CPU) uint8 { return c.X })
	table[0x96] = writeZeroPageIndexed(indexY, func(c *CPU) uint8 { return c.X })
	table[0x8E] = writeAbsolute(func(c *CPU) uint8 { return c.X })
	table[0x84] = writeZeroPage(func(c *CPU) uint8 { return c.Y })
	table[0x94] = writeZeroPageIndexed(indexX, func(c *CPU) uint8 { return c.Y })
	table[0x8C] = writeAbsolute(func(c *CPU) uint8 { return c.Y })

	// ALU.
	wireReadFamily(0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71, opADC)
	wireReadFamily(0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1, opSBC)
	wireReadFamily(0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31, opAND)
	wireReadFamily(0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11, opORA)
	wireReadFamily(0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51, opEOR)
	wireReadFamily(0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1, opCMP)
	wireReadFamily(0xE0, 0xE4, 0, 0xEC, 0, 0, 0, 0, opCPX)
	wireReadFamily(0xC0, 0xC4, 0, 0xCC, 0, 0, 0, 0, opCPY)
	table[0x24] = readZeroPage(opBIT)
	table[0x2C] = readAbsolute(opBIT)

	// Shifts/increments/decrements (read-modify-write memory forms, plus
	// the accumulator and inherent X/Y forms).
	wireRMWFamily(0x06, 0x16, 0x0E, 0x1E, opASL)
	wireRMWFamily(0x46, 0x56, 0x4E, 0x5E, opLSR)
	wireRMWFamily(0x26, 0x36, 0x2E, 0x3E, opROL)
	wireRMWFamily(0x66, 0x76, 0x6E, 0x7E, opROR)
	wireRMWFamily(0xC6, 0xD6, 0xCE, 0xDE, opDEC)
	wireRMWFamily(0xE6, 0xF6, 0xEE, 0xFE, opINC)
	table[0x0A] = inherent(func(c *CPU) { c.A = opASL(c, c.A) })
	table[0x4A] = inherent(func(c *CPU) { c.A = opLSR(c, c.A) })
	table[0x2A] = inherent(func(c *CPU) { c.A = opROL(c, c.A) })
	table[0x6A] = inherent(func(c *CPU) { c.A = opROR(c, c.A) })
	table[0xE8] = inherent(func(c *CPU) { c.X++; setNZ(c, c.X) })
	table[0xCA] = inherent(func(c *CPU) { c.X--; setNZ(c, c.X) })
	table[0xC8] = inherent(func(c *CPU) { c.Y++; setNZ(c, c.Y) })
	table[0x88] = inherent(func(c *CPU) { c.Y--; setNZ(c, c.Y) })

	// Transfers and flag ops.
	table[0xAA] = inherent(func(c *CPU) { c.X = c.A; setNZ(c, c.X) })
	table[0x8A] = inherent(func(c *CPU) { c.A = c.X; setNZ(c, c.A) })
	table[0xA8] = inherent(func(c *CPU) { c.Y = c.A; setNZ(c, c.Y) })
	table[0x98] = inherent(func(c *CPU) { c.A = c.Y; setNZ(c, c.A) })
	table[0xBA] = inherent(func(c *CPU) { c.X = c.SP; setNZ(c, c.X) })
	table[0x9A] = inherent(func(c *CPU) { c.SP = c.X })
	table[0x18] = inherent(func(c *CPU) { c.Carry = false })
	table[0x38] = inherent(func(c *CPU) { c.Carry = true })
	table[0x58] = inherent(func(c *CPU) { c.IRQMask = false })
	table[0x78] = inherent(func(c *CPU) { c.IRQMask = true })
	table[0xB8] = inherent(func(c *CPU) { c.Overflow = false })
	table[0xD8] = inherent(func(c *CPU) { c.Decimal = false })
	table[0xF8] = inherent(func(c *CPU) { c.Decimal = true })
	table[0xEA] = inherent(func(c *CPU) {})

	// Stack, subroutine and control flow.
	table[0x48] = pha()
	table[0x08] = php()
	table[0x68] = pla()
	table[0x28] = plp()
	table[0x20] = jsr()
	table[0x60] = rts()
	table[0x40] = rti()
	table[0x00] = brk()
	table[0x4C] = jmpAbsolute()
	table[0x6C] = jmpIndirect()

	table[0x10] = branch(condPlus)
	table[0x30] = branch(condMinus)
	table[0x50] = branch(condOverflowClear)
	table[0x70] = branch(condOverflowSet)
	table[0x90] = branch(condCarryClear)
	table[0xB0] = branch(condCarrySet)
	table[0xD0] = branch(condNotEqual)
	table[0xF0] = branch(condEqual)
}
