package machine

import "github.com/mvandenberg/sc1emu/bus"

// secondaryBus is the secondary CPU's own isolated address space: a small
// RAM at the bottom and its ROM mirrored across the remainder of the map
// via incomplete address decoding, the way the real sound board's address
// decode worked. It carries no peripherals of its own - audio synthesis
// is out of scope, so the secondary CPU's presence here is structural
// (fetch/execute on its own bus) rather than functional.
type secondaryBus struct {
	ram [0x100]byte
	rom [secondaryROMSize]byte
}

func newSecondaryBus(rom []byte) *secondaryBus {
	s := &secondaryBus{}
	copy(s.rom[:], rom)
	return s
}

func (s *secondaryBus) Read(master bus.Master, addr uint16) uint8 {
	if addr < 0x100 {
		return s.ram[addr]
	}
	return s.rom[addr&(secondaryROMSize-1)]
}

func (s *secondaryBus) Write(master bus.Master, addr uint16, data uint8) {
	if addr < 0x100 {
		s.ram[addr] = data
	}
	// everything above is ROM-mirrored and ignores writes
}

func (s *secondaryBus) IsHaltedFor(master bus.Master) bool {
	return false
}

func (s *secondaryBus) CheckInterrupts(master bus.Master) bus.InterruptState {
	return bus.InterruptState{}
}
