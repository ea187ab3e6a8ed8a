package m6800

import "github.com/mvandenberg/sc1emu/bus"

// direct reads one postbyte and forms a zero-page address (the 6800 has
// no direct-page register - direct addressing is always page zero).
func direct(c *CPU, b bus.Bus, m bus.Master) uint16 {
	lo := b.Read(m, c.PC)
	c.PC++
	return uint16(lo)
}

func extended(c *CPU, b bus.Bus, m bus.Master) uint16 {
	hi := b.Read(m, c.PC)
	c.PC++
	lo := b.Read(m, c.PC)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// indexed adds an unsigned 8-bit offset to X - the 6800's only indexed
// addressing form.
func indexed(c *CPU, b bus.Bus, m bus.Master) uint16 {
	off := b.Read(m, c.PC)
	c.PC++
	return c.X + uint16(off)
}
