package m6502_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/m6502"
	"github.com/mvandenberg/sc1emu/test"
	"github.com/mvandenberg/sc1emu/testbus"
)

func runOne(t *testing.T, c *m6502.CPU, b *testbus.Bus) {
	t.Helper()
	c.TickWithBus(b, bus.Primary)
	for !c.State() {
		c.TickWithBus(b, bus.Primary)
	}
}

func TestImmediateLoadSetsFlags(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0xA9, 0x00}) // LDA #$00
	c := m6502.New()
	c.SetPC(0x0000)

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0))
	test.DemandEquality(t, c.Zero, true)
}

func TestStoreZeroPageWritesThrough(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x85, 0x20}) // STA $20
	c := m6502.New()
	c.SetPC(0x0000)
	c.A = 0x5A

	runOne(t, c, b)

	test.DemandEquality(t, b.Mem[0x0020], uint8(0x5A))
}

func TestRMWAbsoluteWritesBackTwice(t *testing.T) {
	b := testbus.New()
	b.Tracing = true
	b.Mem[0x3000] = 0x41
	b.LoadBytes(0x0000, []uint8{0xEE, 0x00, 0x30}) // INC $3000

	c := m6502.New()
	c.SetPC(0x0000)

	runOne(t, c, b)

	test.DemandEquality(t, b.Mem[0x3000], uint8(0x42))

	writes := 0
	for _, tr := range b.Trace {
		if tr.Direction == testbus.Write && tr.Addr == 0x3000 {
			writes++
		}
	}
	test.DemandEquality(t, writes, 2) // dummy write-back of the unmodified value, then the real write
}

func TestIndexedAbsoluteReadPageCrossCostsAnExtraCycle(t *testing.T) {
	b := testbus.New()
	b.Mem[0x2101] = 0x77
	b.LoadBytes(0x0000, []uint8{0xBD, 0xFF, 0x20}) // LDA $20FF,X
	c := m6502.New()
	c.SetPC(0x0000)
	c.X = 0x02 // 0x20FF + 0x02 = 0x2101, crosses into the next page

	cycles := 0
	c.TickWithBus(b, bus.Primary)
	cycles++
	for !c.State() {
		c.TickWithBus(b, bus.Primary)
		cycles++
	}

	test.DemandEquality(t, c.A, uint8(0x77))
	test.DemandEquality(t, cycles, 5)
}

func TestIndexedAbsoluteReadSamePageIsFourCycles(t *testing.T) {
	b := testbus.New()
	b.Mem[0x2002] = 0x99
	b.LoadBytes(0x0000, []uint8{0xBD, 0x00, 0x20}) // LDA $2000,X
	c := m6502.New()
	c.SetPC(0x0000)
	c.X = 0x02

	cycles := 0
	c.TickWithBus(b, bus.Primary)
	cycles++
	for !c.State() {
		c.TickWithBus(b, bus.Primary)
		cycles++
	}

	test.DemandEquality(t, c.A, uint8(0x99))
	test.DemandEquality(t, cycles, 4)
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x20, 0x00, 0x10}) // JSR $1000
	b.LoadBytes(0x1000, []uint8{0x60})             // RTS
	c := m6502.New()
	c.SetPC(0x0000)
	c.SP = 0xFF

	runOne(t, c, b)
	test.DemandEquality(t, c.PC, uint16(0x1000))

	runOne(t, c, b)
	test.DemandEquality(t, c.PC, uint16(0x0003))
	test.DemandEquality(t, c.SP, uint8(0xFF))
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0xF0, 0x10}) // BEQ +16
	c := m6502.New()
	c.SetPC(0x0000)
	c.Zero = false

	runOne(t, c, b)

	test.DemandEquality(t, c.PC, uint16(0x0002))
}
