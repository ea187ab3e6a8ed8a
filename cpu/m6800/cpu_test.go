package m6800_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/m6800"
	"github.com/mvandenberg/sc1emu/test"
	"github.com/mvandenberg/sc1emu/testbus"
)

func runOne(t *testing.T, c *m6800.CPU, b *testbus.Bus) {
	t.Helper()
	c.TickWithBus(b, bus.Primary)
	for !c.State() {
		c.TickWithBus(b, bus.Primary)
	}
}

func TestImmediateLoadSetsFlags(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x86, 0x00}) // LDAA #$00
	c := m6800.New()
	c.SetPC(0x0000)

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0))
	test.DemandEquality(t, c.CC.Zero, true)
}

func TestStoreDirectWritesZeroPage(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x97, 0x20}) // STAA <$20
	c := m6800.New()
	c.SetPC(0x0000)
	c.A = 0x7F

	runOne(t, c, b)

	test.DemandEquality(t, b.Mem[0x0020], uint8(0x7F))
}

func TestIndexedAddressingUsesXPlusOffset(t *testing.T) {
	b := testbus.New()
	b.Mem[0x2010] = 0x99
	b.LoadBytes(0x0000, []uint8{0xA6, 0x10}) // LDAA $10,X
	c := m6800.New()
	c.SetPC(0x0000)
	c.X = 0x2000

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x99))
}

func TestBranchAlwaysSelfLoopChargesFourCycles(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x20, 0xFE}) // BRA *
	c := m6800.New()
	c.SetPC(0x0000)

	cycles := 0
	c.TickWithBus(b, bus.Primary)
	cycles++
	for !c.State() {
		c.TickWithBus(b, bus.Primary)
		cycles++
	}

	test.DemandEquality(t, c.PC, uint16(0x0000))
	test.DemandEquality(t, cycles, 4)
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0xBD, 0x10, 0x00}) // JSR $1000
	b.LoadBytes(0x1000, []uint8{0x39})             // RTS
	c := m6800.New()
	c.SetPC(0x0000)
	c.SP = 0x00FF

	runOne(t, c, b)
	test.DemandEquality(t, c.PC, uint16(0x1000))

	runOne(t, c, b)
	test.DemandEquality(t, c.PC, uint16(0x0003))
	test.DemandEquality(t, c.SP, uint16(0x00FF))
}

func TestABAAddsBIntoA(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x1B}) // ABA
	c := m6800.New()
	c.SetPC(0x0000)
	c.A = 0x10
	c.B = 0x05

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x15))
}

func TestIRQEntryVectorsAndMasksFurtherIRQ(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0xFFF8, []uint8{0x90, 0x00}) // IRQ vector -> $9000
	c := m6800.New()
	c.SetPC(0x0000)
	c.SP = 0x00FF
	c.CC.IRQMask = false

	b.SetInterrupts(bus.InterruptState{IRQ: true})
	runOne(t, c, b)

	test.DemandEquality(t, c.PC, uint16(0x9000))
	test.DemandEquality(t, c.CC.IRQMask, true)
}
