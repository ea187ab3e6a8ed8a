package m6502

import "github.com/mvandenberg/sc1emu/bus"

func pha() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), c.A); c.SP-- },
	}
}

func php() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), c.Status(true)); c.SP-- },
	}
}

func pla() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			c.SP++
			c.A = b.Read(m, 0x0100+uint16(c.SP))
			setNZ(c, c.A)
		},
	}
}

func plp() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			c.SP++
			c.SetStatus(b.Read(m, 0x0100+uint16(c.SP)))
		},
	}
}

func jsr() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.PC); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC>>8)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC = uint16(hi)<<8 | uint16(c.tmp8)
		},
	}
}

func rts() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) { c.SP++; c.tmp8 = b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			c.SP++
			hi := b.Read(m, 0x0100+uint16(c.SP))
			c.tmpAddr = uint16(hi)<<8 | uint16(c.tmp8)
		},
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.tmpAddr); c.PC = c.tmpAddr + 1 },
	}
}

func rti() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC) },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) { c.SP++; c.SetStatus(b.Read(m, 0x0100+uint16(c.SP))) },
		func(c *CPU, b bus.Bus, m bus.Master) { c.SP++; c.tmp8 = b.Read(m, 0x0100+uint16(c.SP)) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			c.SP++
			hi := b.Read(m, 0x0100+uint16(c.SP))
			c.PC = uint16(hi)<<8 | uint16(c.tmp8)
		},
	}
}

func brk() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { b.Read(m, c.PC); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC>>8)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), uint8(c.PC)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { b.Write(m, 0x0100+uint16(c.SP), c.Status(true)); c.SP-- },
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, 0xFFFE) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, 0xFFFF)
			c.PC = uint16(hi)<<8 | uint16(c.tmp8)
			c.IRQMask = true
		},
	}
}

func jmpAbsolute() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.PC); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC = uint16(hi)<<8 | uint16(c.tmp8)
		},
	}
}

// jmpIndirect reproduces the famous page-wrap bug: when the pointer's low
// byte is $FF, the high byte is fetched from the start of the same page
// rather than the start of the next one.
func jmpIndirect() []microOp {
	return []microOp{
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmpAddr = uint16(b.Read(m, c.PC)); c.PC++ },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hi := b.Read(m, c.PC)
			c.PC++
			c.tmpAddr |= uint16(hi) << 8
		},
		func(c *CPU, b bus.Bus, m bus.Master) { c.tmp8 = b.Read(m, c.tmpAddr) },
		func(c *CPU, b bus.Bus, m bus.Master) {
			hiAddr := (c.tmpAddr & 0xFF00) | uint16(uint8(c.tmpAddr)+1)
			hi := b.Read(m, hiAddr)
			c.PC = uint16(hi)<<8 | uint16(c.tmp8)
		},
	}
}
