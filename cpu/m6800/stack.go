package m6800

import "github.com/mvandenberg/sc1emu/bus"

func opPSHA(c *CPU, b bus.Bus, m bus.Master) int {
	b.Write(m, c.SP, c.A)
	c.SP--
	return 4
}

func opPSHB(c *CPU, b bus.Bus, m bus.Master) int {
	b.Write(m, c.SP, c.B)
	c.SP--
	return 4
}

func opPULA(c *CPU, b bus.Bus, m bus.Master) int {
	c.SP++
	c.A = b.Read(m, c.SP)
	return 4
}

func opPULB(c *CPU, b bus.Bus, m bus.Master) int {
	c.SP++
	c.B = b.Read(m, c.SP)
	return 4
}

func opJSRIndexed(c *CPU, b bus.Bus, m bus.Master) int {
	addr := indexed(c, b, m)
	b.Write(m, c.SP, uint8(c.PC))
	c.SP--
	b.Write(m, c.SP, uint8(c.PC>>8))
	c.SP--
	c.PC = addr
	return 8
}

func opJSRExtended(c *CPU, b bus.Bus, m bus.Master) int {
	addr := extended(c, b, m)
	b.Write(m, c.SP, uint8(c.PC))
	c.SP--
	b.Write(m, c.SP, uint8(c.PC>>8))
	c.SP--
	c.PC = addr
	return 9
}

func opRTS(c *CPU, b bus.Bus, m bus.Master) int {
	c.SP++
	hi := b.Read(m, c.SP)
	c.SP++
	lo := b.Read(m, c.SP)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 5
}

func opRTI(c *CPU, b bus.Bus, m bus.Master) int {
	c.SP++
	c.CC.FromValue(b.Read(m, c.SP))
	c.SP++
	c.B = b.Read(m, c.SP)
	c.SP++
	c.A = b.Read(m, c.SP)
	c.SP++
	xHi := b.Read(m, c.SP)
	c.SP++
	xLo := b.Read(m, c.SP)
	c.X = uint16(xHi)<<8 | uint16(xLo)
	c.SP++
	pcHi := b.Read(m, c.SP)
	c.SP++
	pcLo := b.Read(m, c.SP)
	c.PC = uint16(pcHi)<<8 | uint16(pcLo)
	return 10
}

func opSWI(c *CPU, b bus.Bus, m bus.Master) int {
	c.stackEntire(b, m)
	c.CC.IRQMask = true
	hi := b.Read(m, 0xFFFA)
	lo := b.Read(m, 0xFFFB)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 12
}

func opWAI(c *CPU, b bus.Bus, m bus.Master) int {
	c.stackEntire(b, m)
	c.state = stateWaitForInterrupt
	return 9
}
