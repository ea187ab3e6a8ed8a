package m6809_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/bus"
	"github.com/mvandenberg/sc1emu/cpu/m6809"
	"github.com/mvandenberg/sc1emu/test"
	"github.com/mvandenberg/sc1emu/testbus"
)

// runOne ticks the CPU until it returns to Fetch having executed exactly
// one instruction from Fetch, then returns the cycle count spent.
func runOne(t *testing.T, c *m6809.CPU, b *testbus.Bus) int {
	t.Helper()
	cycles := 0
	// first tick consumes the opcode fetch and leaves state != Fetch
	// unless the instruction took a single cycle.
	c.TickWithBus(b, bus.Primary)
	cycles++
	for c.State() != m6809.StateFetch {
		c.TickWithBus(b, bus.Primary)
		cycles++
	}
	return cycles
}

func TestImmediateLoadSetsAccumulatorAndFlags(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x86, 0x00}) // LDA #$00
	c := m6809.New()
	c.SetPC(0x0000)

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0))
	test.DemandEquality(t, c.CC.Zero, true)
	test.DemandEquality(t, c.CC.Negative, false)
}

func TestImmediateLoadNegativeSetsNegativeFlag(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x86, 0x80}) // LDA #$80
	c := m6809.New()
	c.SetPC(0x0000)

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x80))
	test.DemandEquality(t, c.CC.Negative, true)
	test.DemandEquality(t, c.CC.Zero, false)
}

func TestStoreDirectWritesThroughDPAndDoesNotAlterA(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x97, 0x50}) // STA <$50
	c := m6809.New()
	c.SetPC(0x0000)
	c.DP = 0x00
	c.A = 0x42

	runOne(t, c, b)

	test.DemandEquality(t, b.Mem[0x0050], uint8(0x42))
	test.DemandEquality(t, c.A, uint8(0x42))
}

func TestAddWithCarryRespectsIncomingCarry(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x89, 0x01}) // ADCA #$01
	c := m6809.New()
	c.SetPC(0x0000)
	c.A = 0x01
	c.CC.Carry = true

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x03))
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x27, 0x10}) // BEQ +16
	c := m6809.New()
	c.SetPC(0x0000)
	c.CC.Zero = false

	runOne(t, c, b)

	test.DemandEquality(t, c.PC, uint16(0x0002))
}

func TestBranchTakenAddsSignedOffset(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x27, 0x10}) // BEQ +16
	c := m6809.New()
	c.SetPC(0x0000)
	c.CC.Zero = true

	runOne(t, c, b)

	test.DemandEquality(t, c.PC, uint16(0x0012))
}

func TestIndexedPostIncrementAdvancesRegister(t *testing.T) {
	b := testbus.New()
	b.Mem[0x2000] = 0x55
	b.LoadBytes(0x0000, []uint8{0xA6, 0x80}) // LDA ,X+
	c := m6809.New()
	c.SetPC(0x0000)
	c.X = 0x2000

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x55))
	test.DemandEquality(t, c.X, uint16(0x2001))
}

func TestIndexedPlainRegisterTakesFourCycles(t *testing.T) {
	b := testbus.New()
	b.Mem[0x2000] = 0x55
	b.LoadBytes(0x0000, []uint8{0xA6, 0x84}) // LDA ,X
	c := m6809.New()
	c.SetPC(0x0000)
	c.X = 0x2000

	cycles := runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x55))
	test.DemandEquality(t, c.X, uint16(0x2000)) // ,R does not advance the register
	test.DemandEquality(t, cycles, 4)
}

func TestIndexedExtendedIndirectTakesNineCycles(t *testing.T) {
	b := testbus.New()
	b.Mem[0x3000] = 0x20 // pointer at $3000: $2000
	b.Mem[0x3001] = 0x00
	b.Mem[0x2000] = 0x55
	b.LoadBytes(0x0000, []uint8{0xA6, 0x9F, 0x30, 0x00}) // LDA [$3000]
	c := m6809.New()
	c.SetPC(0x0000)

	cycles := runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x55))
	test.DemandEquality(t, cycles, 9)
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0xBD, 0x10, 0x00}) // JSR $1000
	b.LoadBytes(0x1000, []uint8{0x39})             // RTS
	c := m6809.New()
	c.SetPC(0x0000)
	c.S = 0x8000

	runOne(t, c, b) // JSR
	test.DemandEquality(t, c.PC, uint16(0x1000))
	test.DemandEquality(t, c.S, uint16(0x7FFE))

	runOne(t, c, b) // RTS
	test.DemandEquality(t, c.PC, uint16(0x0003))
	test.DemandEquality(t, c.S, uint16(0x8000))
}

func TestPSHSThenPULSRoundTrips(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x34, 0x06, 0x35, 0x06}) // PSHS A,B / PULS A,B
	c := m6809.New()
	c.SetPC(0x0000)
	c.S = 0x8000
	c.A = 0x11
	c.B = 0x22

	runOne(t, c, b) // PSHS
	test.DemandEquality(t, c.S, uint16(0x7FFE))

	c.A = 0
	c.B = 0

	runOne(t, c, b) // PULS
	test.DemandEquality(t, c.A, uint8(0x11))
	test.DemandEquality(t, c.B, uint8(0x22))
	test.DemandEquality(t, c.S, uint16(0x8000))
}

func TestIRQEntryVectorsAndStacksEntireFile(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0xFFF8, []uint8{0x90, 0x00}) // IRQ vector -> $9000
	c := m6809.New()
	c.SetPC(0x0000)
	c.S = 0x8000
	c.CC.IRQMask = false // unmask IRQ

	b.SetInterrupts(bus.InterruptState{IRQ: true})
	runOne(t, c, b)

	test.DemandEquality(t, c.PC, uint16(0x9000))
	test.DemandEquality(t, c.CC.IRQMask, true)
	test.DemandEquality(t, c.CC.Entire, true)
	test.DemandEquality(t, c.S, uint16(0x8000-12))
}

func TestRTIPopsEntireFileWhenEntireSet(t *testing.T) {
	b := testbus.New()
	c := m6809.New()
	c.SetPC(0x0000)
	c.S = 0x8000
	c.A = 0x11
	c.B = 0x22
	c.DP = 0x33
	c.X = 0x4444
	c.Y = 0x5555
	c.U = 0x6666
	c.PC = 0x7777

	// Manually stack an "entire" frame the way IRQ entry would, then point
	// PC at an RTI and confirm the pop restores every register.
	save := c.PC
	c.CC.Entire = true
	c.S--
	b.Write(bus.Primary, c.S, uint8(save))
	c.S--
	b.Write(bus.Primary, c.S, uint8(save>>8))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.U))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.U>>8))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.Y))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.Y>>8))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.X))
	c.S--
	b.Write(bus.Primary, c.S, uint8(c.X>>8))
	c.S--
	b.Write(bus.Primary, c.S, c.DP)
	c.S--
	b.Write(bus.Primary, c.S, c.B)
	c.S--
	b.Write(bus.Primary, c.S, c.A)
	c.S--
	b.Write(bus.Primary, c.S, c.CC.Value())

	b.LoadBytes(0x9000, []uint8{0x3B}) // RTI
	c.SetPC(0x9000)
	c.A, c.B, c.DP, c.X, c.Y, c.U = 0, 0, 0, 0, 0, 0

	runOne(t, c, b)

	test.DemandEquality(t, c.A, uint8(0x11))
	test.DemandEquality(t, c.B, uint8(0x22))
	test.DemandEquality(t, c.DP, uint8(0x33))
	test.DemandEquality(t, c.X, uint16(0x4444))
	test.DemandEquality(t, c.Y, uint16(0x5555))
	test.DemandEquality(t, c.U, uint16(0x6666))
	test.DemandEquality(t, c.PC, save)
	test.DemandEquality(t, c.S, uint16(0x8000))
}

func TestNMIIgnoredUntilStackPointerLoaded(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0x0000, []uint8{0x12}) // NOP
	b.LoadBytes(0xFFFC, []uint8{0x90, 0x00})
	c := m6809.New()
	c.SetPC(0x0000)

	b.SetInterrupts(bus.InterruptState{NMI: true})
	runOne(t, c, b)

	// S has never been loaded: NMI must not have been taken.
	test.DemandEquality(t, c.PC, uint16(0x0001))
}

func TestNMITakenAfterStackPointerLoaded(t *testing.T) {
	b := testbus.New()
	b.LoadBytes(0xFFFC, []uint8{0x90, 0x00}) // NMI vector -> $9000
	b.LoadBytes(0x0000, []uint8{0x10, 0xCE, 0x80, 0x00}) // LDS #$8000

	c := m6809.New()
	c.SetPC(0x0000)

	runOne(t, c, b) // LDS arms NMI as a side effect of loading S

	b.SetInterrupts(bus.InterruptState{NMI: true})
	runOne(t, c, b) // NMI should now be recognised

	test.DemandEquality(t, c.PC, uint16(0x9000))
}
