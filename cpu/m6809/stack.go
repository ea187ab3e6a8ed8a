package m6809

import "github.com/mvandenberg/sc1emu/bus"

// pushPull implements PSHS/PULS/PSHU/PULU. sp is the stack pointer being
// adjusted (S for the S-stack instructions, U for the U-stack ones);
// other is the *other* stack pointer, which is what postbyte bit 6
// refers to (PSHS can push U onto S, PSHU can push S onto U - a register
// can never push/pull itself).
func push(c *CPU, b bus.Bus, m bus.Master, sp *uint16, other *uint16, postbyte uint8) int {
	cycles := 5
	if postbyte&0x80 != 0 { // PC
		*sp--
		b.Write(m, *sp, uint8(c.PC))
		*sp--
		b.Write(m, *sp, uint8(c.PC>>8))
		cycles += 2
	}
	if postbyte&0x40 != 0 { // U or S
		*sp--
		b.Write(m, *sp, uint8(*other))
		*sp--
		b.Write(m, *sp, uint8(*other>>8))
		cycles += 2
	}
	if postbyte&0x20 != 0 { // Y
		*sp--
		b.Write(m, *sp, uint8(c.Y))
		*sp--
		b.Write(m, *sp, uint8(c.Y>>8))
		cycles += 2
	}
	if postbyte&0x10 != 0 { // X
		*sp--
		b.Write(m, *sp, uint8(c.X))
		*sp--
		b.Write(m, *sp, uint8(c.X>>8))
		cycles += 2
	}
	if postbyte&0x08 != 0 { // DP
		*sp--
		b.Write(m, *sp, c.DP)
		cycles++
	}
	if postbyte&0x04 != 0 { // B
		*sp--
		b.Write(m, *sp, c.B)
		cycles++
	}
	if postbyte&0x02 != 0 { // A
		*sp--
		b.Write(m, *sp, c.A)
		cycles++
	}
	if postbyte&0x01 != 0 { // CC
		*sp--
		b.Write(m, *sp, c.CC.Value())
		cycles++
	}
	return cycles
}

func pull(c *CPU, b bus.Bus, m bus.Master, sp *uint16, other *uint16, postbyte uint8) int {
	cycles := 5
	if postbyte&0x01 != 0 { // CC
		c.CC.FromValue(b.Read(m, *sp))
		*sp++
		cycles++
	}
	if postbyte&0x02 != 0 { // A
		c.A = b.Read(m, *sp)
		*sp++
		cycles++
	}
	if postbyte&0x04 != 0 { // B
		c.B = b.Read(m, *sp)
		*sp++
		cycles++
	}
	if postbyte&0x08 != 0 { // DP
		c.DP = b.Read(m, *sp)
		*sp++
		cycles++
	}
	if postbyte&0x10 != 0 { // X
		hi := b.Read(m, *sp)
		*sp++
		lo := b.Read(m, *sp)
		*sp++
		c.X = uint16(hi)<<8 | uint16(lo)
		cycles += 2
	}
	if postbyte&0x20 != 0 { // Y
		hi := b.Read(m, *sp)
		*sp++
		lo := b.Read(m, *sp)
		*sp++
		c.Y = uint16(hi)<<8 | uint16(lo)
		cycles += 2
	}
	if postbyte&0x40 != 0 { // U or S
		hi := b.Read(m, *sp)
		*sp++
		lo := b.Read(m, *sp)
		*sp++
		*other = uint16(hi)<<8 | uint16(lo)
		cycles += 2
	}
	if postbyte&0x80 != 0 { // PC
		hi := b.Read(m, *sp)
		*sp++
		lo := b.Read(m, *sp)
		*sp++
		c.PC = uint16(hi)<<8 | uint16(lo)
		cycles += 2
	}
	return cycles
}

func opPSHS(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	return push(c, b, m, &c.S, &c.U, post)
}

func opPULS(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	return pull(c, b, m, &c.S, &c.U, post)
}

func opPSHU(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	return push(c, b, m, &c.U, &c.S, post)
}

func opPULU(c *CPU, b bus.Bus, m bus.Master) int {
	post := b.Read(m, c.PC)
	c.PC++
	return pull(c, b, m, &c.U, &c.S, post)
}
