package m6502

import "github.com/mvandenberg/sc1emu/bus"

type readOp func(c *CPU, v uint8)
type writeOp func(c *CPU) uint8
type rmwOp func(c *CPU, v uint8) uint8
type indexSelect func(c *CPU) uint8

func indexX(c *CPU) uint8 { return c.X }
func indexY(c *CPU) uint8 { return c.Y }

// readImmediate reads the operand byte directly from the instruction
// stream: one cycle, no address calculation.
func readImmediate(op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) {
			v := b.Read(m, c.PC)
			c.PC++
			op(c, v)
		},
	}
}

func readZeroPage(op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) },
	}
}

func readZeroPageIndexed(idx indexSelect, op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			b.Read(m, c.tmpAddr) // dummy read at the unindexed zero-page address
			c.tmpAddr = uint16(uint8(c.tmpAddr) + idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) },
	}
}

func readAbsolute(op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmpAddr |= uint16(hi) << 8
		},
		func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) },
	}
}

// readAbsoluteIndexed is 3 cycles when the index does not carry into the
// high byte, 4 when it does - the classic "indexed page cross" penalty.
// The extra cycle is spent re-reading at the address formed from the
// unmodified high byte, matching the datasheet's documented dummy access.
func readAbsoluteIndexed(idx indexSelect, op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmp8 = hi
			lo := uint8(c.tmpAddr) + idx(c)
			c.pageCrossed = uint16(lo) < uint16(uint8(c.tmpAddr))
			c.tmpAddr = (uint16(hi)<<8 | c.tmpAddr) + uint16(idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) {
			if c.pageCrossed {
				wrong := uint16(c.tmp8)<<8 | (c.tmpAddr & 0x00FF)
				b.Read(m, wrong)
				c.queue = append(c.queue, func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) })
				return
			}
			op(c, b.Read(m, c.tmpAddr))
		},
	}
}

func readIndirectX(op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			b.Read(m, c.tmpAddr) // dummy read at the unindexed pointer address
			c.tmpAddr = uint16(uint8(c.tmpAddr) + c.X)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) }, // low byte, stashed
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, uint16(uint8(c.tmpAddr)+1))
			c.tmpAddr = uint16(hi)<<8 | uint16(c.tmp8)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) },
	}
}

func readIndirectY(op readOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) }, // low byte of pointer
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, uint16(uint8(c.tmpAddr)+1))
			lo := c.tmp8 + c.Y
			c.pageCrossed = uint16(lo) < uint16(c.tmp8)
			c.tmpAddr = (uint16(hi)<<8 | uint16(c.tmp8)) + uint16(c.Y)
			c.tmp8 = hi
		},
		func(c *CPU, b bus.Bus, m bus.Master) {
			if c.pageCrossed {
				wrong := uint16(c.tmp8)<<8 | (c.tmpAddr & 0x00FF)
				b.Read(m, wrong)
				c.queue = append(c.queue, func(c *CPU, b bus.Bus, m bus.Master) { op(c, b.Read(m, c.tmpAddr)) })
				return
			}
			op(c, b.Read(m, c.tmpAddr))
		},
	}
}

func writeZeroPage(op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

func writeZeroPageIndexed(idx indexSelect, op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			b.Read(m, c.tmpAddr)
			c.tmpAddr = uint16(uint8(c.tmpAddr) + idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

func writeAbsolute(op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmpAddr |= uint16(hi) << 8
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

// writeAbsoluteIndexed always spends the page-cross cycle: a store must
// land on the correct final address every time, so there is no early-exit
// the way there is for a read.
func writeAbsoluteIndexed(idx indexSelect, op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmp8 = hi
			c.tmpAddr = (uint16(hi)<<8 | c.tmpAddr) + uint16(idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) {
			wrong := uint16(c.tmp8)<<8 | (c.tmpAddr & 0x00FF)
			b.Read(m, wrong)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

func writeIndirectX(op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			b.Read(m, c.tmpAddr)
			c.tmpAddr = uint16(uint8(c.tmpAddr) + c.X)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, uint16(uint8(c.tmpAddr)+1))
			c.tmpAddr = uint16(hi)<<8 | uint16(c.tmp8)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

func writeIndirectY(op writeOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, uint16(uint8(c.tmpAddr)+1))
			c.tmpAddr = (uint16(hi)<<8 | uint16(c.tmp8)) + uint16(c.Y)
			c.tmp8 = hi
		},
		func(c *CPU, b bus.Bus, m bus.Master) {
			wrong := uint16(c.tmp8)<<8 | (c.tmpAddr & 0x00FF)
			b.Read(m, wrong)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c)) },
	}
}

// rmwZeroPage/rmwAbsolute/rmwZeroPageIndexed/rmwAbsoluteIndexed all read
// the operand, write the unmodified value back (the real chip's dummy
// write - RMW instructions are never a single atomic bus cycle), then
// write the modified value.
func rmwZeroPage(op rmwOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, c.tmp8) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c, c.tmp8)) },
	}
}

func rmwZeroPageIndexed(idx indexSelect, op rmwOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			b.Read(m, c.tmpAddr)
			c.tmpAddr = uint16(uint8(c.tmpAddr) + idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, c.tmp8) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c, c.tmp8)) },
	}
}

func rmwAbsolute(op rmwOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmpAddr |= uint16(hi) << 8
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, c.tmp8) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c, c.tmp8)) },
	}
}

func rmwAbsoluteIndexed(idx indexSelect, op rmwOp) []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmp8 = hi
			c.tmpAddr = (uint16(hi)<<8 | c.tmpAddr) + uint16(idx(c))
		},
		func(c *CPU, b bus.Bus, m bus.Master) {
			wrong := uint16(c.tmp8)<<8 | (c.tmpAddr & 0x00FF)
			b.Read(m, wrong)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, c.tmp8) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, c.tmpAddr, op(c, c.tmp8)) },
	}
}
