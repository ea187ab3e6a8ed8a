// Package machine assembles the Joust arcade board from the cores and
// peripherals built elsewhere in this module: a primary 6809 CPU, an
// optional secondary 6800 CPU on its own isolated bus, the Williams SC1
// blitter, two PIAs and battery-backed configuration memory. It owns the
// board's memory map, reset sequencing and frame-paced tick loop.
package machine

import (
	"github.com/mvandenberg/sc1emu/blitter"
	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cmos"
	"github.com/mvandenberg/sc1emu/cpu/m6800"
	"github.com/mvandenberg/sc1emu/cpu/m6809"
	"github.com/mvandenberg/sc1emu/environment"
	"github.com/mvandenberg/sc1emu/errors"
	"github.com/mvandenberg/sc1emu/logger"
	"github.com/mvandenberg/sc1emu/peripheral/pia"
)

// cyclesPerFrame is the Joust board's nominal 1 MHz CPU clock divided
// against its 60 Hz refresh rate: 260 scanlines of 64 cycles each.
const cyclesPerFrame = 260 * 64

// programROMSize is the fixed size of the primary CPU's masked program
// ROM, occupying $D000-$FFFF.
const programROMSize = 0x3000

// secondaryROMSize is the fixed size of the secondary CPU's ROM, mirrored
// across the top of its isolated address space the way real incomplete
// address decoding does.
const secondaryROMSize = 0x1000

// Board is the assembled Joust hardware: the bus.Bus the primary CPU
// runs against, plus everything attached to it.
type Board struct {
	env *environment.Environment

	primary   *m6809.CPU
	secondary *m6800.CPU // nil when no "program 1" ROM was supplied
	snd       *secondaryBus

	blit *blitter.Blitter
	pia0 *pia.PIA // $C000-$C003
	pia1 *pia.PIA // $C004-$C007
	cfg  *cmos.RAM

	ram [0xC000]byte       // $0000-$BFFF: video/work RAM
	rom [programROMSize]byte // $D000-$FFFF: masked program ROM

	pia0InputA, pia1InputA uint8

	clock uint64
}

// NewJoustBoard assembles a Joust board from host-supplied ROM images
// keyed by role. "program 0" (exactly 12 KiB) is required; "program 1"
// (exactly 4 KiB) is optional and, when present, brings the secondary
// sound-board CPU online on its own isolated bus. Any other role, or a
// wrong-sized ROM, is a categorized setup error and no partial board is
// returned.
func NewJoustBoard(roms map[string][]byte, env *environment.Environment) (*Board, error) {
	for role := range roms {
		if role != "program 0" && role != "program 1" {
			return nil, errors.New(errors.UnknownROMRole, role)
		}
	}

	program, ok := roms["program 0"]
	if !ok {
		return nil, errors.New(errors.RequiredROMMissing, "program 0")
	}
	if len(program) != programROMSize {
		return nil, errors.New(errors.ROMSizeMismatch, "program 0", len(program), programROMSize)
	}

	b := &Board{
		env:     env,
		primary: m6809.New(),
		blit:    blitter.New(),
		pia0:    pia.New(),
		pia1:    pia.New(),
		cfg:     cmos.New(),
	}
	copy(b.rom[:], program)

	if sound, ok := roms["program 1"]; ok {
		if len(sound) != secondaryROMSize {
			return nil, errors.New(errors.ROMSizeMismatch, "program 1", len(sound), secondaryROMSize)
		}
		b.secondary = m6800.New()
		b.snd = newSecondaryBus(sound)
	}

	b.Reset()
	return b, nil
}

// Reset fetches the reset vector for each attached CPU from its own bus
// view of $FFFE/$FFFF, big-endian, and sets PC before the first fetch.
// The peripherals and work RAM are left as they are: configuration
// memory is battery-backed and survives resets on real hardware, and the
// video/work RAM above it is not cleared by the reset line either.
func (b *Board) Reset() {
	hi := b.Read(bus.Primary, 0xFFFE)
	lo := b.Read(bus.Primary, 0xFFFF)
	b.primary.SetPC(uint16(hi)<<8 | uint16(lo))

	if b.secondary != nil {
		hi := b.snd.Read(bus.Secondary, 0xFFFE)
		lo := b.snd.Read(bus.Secondary, 0xFFFF)
		b.secondary.SetPC(uint16(hi)<<8 | uint16(lo))
	}

	b.clock = 0
}

// TickFrame advances the board by one frame's worth of cycles.
func (b *Board) TickFrame() {
	for i := 0; i < cyclesPerFrame; i++ {
		b.tick()
	}
}

func (b *Board) tick() {
	if b.blit.Active() {
		b.blit.DoDMACycle(b.ram[:])
	} else {
		b.primary.TickWithBus(b, bus.Primary)
	}

	// The secondary CPU runs on its own isolated bus and is not stalled
	// by the primary's blitter hold line.
	if b.secondary != nil {
		b.secondary.TickWithBus(b.snd, bus.Secondary)
	}

	b.clock++
}

// Read implements bus.Bus for the primary CPU. The blitter does not go
// through this decode: tick hands it video RAM directly.
func (b *Board) Read(master bus.Master, addr uint16) uint8 {
	switch {
	case addr < 0xC000:
		return b.ram[addr]
	case addr >= 0xC000 && addr <= 0xC003:
		return b.pia0.Read(uint8(addr - 0xC000))
	case addr >= 0xC004 && addr <= 0xC007:
		return b.pia1.Read(uint8(addr - 0xC004))
	case addr >= 0xC008 && addr <= 0xC00F:
		return b.blit.ReadRegister(uint8(addr - 0xC008))
	case addr == 0xC010:
		if b.blit.Active() {
			return 1
		}
		return 0
	case addr >= 0xCC00 && addr <= 0xCFFF:
		return b.cfg.Read(addr - 0xCC00)
	case addr >= 0xD000:
		return b.rom[addr-0xD000]
	default:
		return 0xFF
	}
}

// Write implements bus.Bus for the primary CPU.
func (b *Board) Write(master bus.Master, addr uint16, data uint8) {
	switch {
	case addr < 0xC000:
		b.ram[addr] = data
	case addr >= 0xC000 && addr <= 0xC003:
		b.pia0.Write(uint8(addr-0xC000), data)
	case addr >= 0xC004 && addr <= 0xC007:
		b.pia1.Write(uint8(addr-0xC004), data)
	case addr >= 0xC008 && addr <= 0xC00F:
		b.blit.WriteRegister(uint8(addr-0xC008), data)
	case addr == 0xC010:
		b.blit.SetControl(data)
	case addr >= 0xCC00 && addr <= 0xCFFF:
		b.cfg.Write(addr-0xCC00, data)
	case addr >= 0xD000:
		// ROM: ignored
	default:
		logger.Logf(logger.Allow, "machine", "write to unmapped address %#04x", addr)
	}
}

// IsHaltedFor reports that the primary CPU is halted while the blitter
// holds the bus; nothing else on this board is ever halted.
func (b *Board) IsHaltedFor(master bus.Master) bool {
	return master == bus.Primary && b.blit.Active()
}

// CheckInterrupts reports IRQ asserted on the primary CPU whenever
// either PIA's latched, enabled interrupt flags are set; FIRQ and NMI
// are not wired to anything on this board.
func (b *Board) CheckInterrupts(master bus.Master) bus.InterruptState {
	if master == bus.Primary {
		return bus.InterruptState{
			IRQ: b.pia0.IRQA() || b.pia0.IRQB() || b.pia1.IRQA() || b.pia1.IRQB(),
		}
	}
	return bus.InterruptState{}
}

// SnapshotConfig returns a copy of the battery-backed configuration
// memory for host-side persistence.
func (b *Board) SnapshotConfig() []byte {
	return b.cfg.Snapshot()
}

// RestoreConfig replaces the configuration memory's contents from data.
func (b *Board) RestoreConfig(data []byte) {
	b.cfg.Restore(data)
}
