package blitter_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/blitter"
	"github.com/mvandenberg/sc1emu/test"
)

func runToCompletion(b *blitter.Blitter, vram []byte) int {
	cycles := 0
	for b.Active() {
		b.DoDMACycle(vram)
		cycles++
		if cycles > 100_000 {
			panic("blit did not complete")
		}
	}
	return cycles
}

func TestNotActiveInitially(t *testing.T) {
	b := blitter.New()
	test.DemandEquality(t, b.Active(), false)
}

func TestWriteHeightTriggersBlit(t *testing.T) {
	b := blitter.New()
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)
	test.DemandEquality(t, b.Active(), true)
}

func TestWriteWidthAloneDoesNotTrigger(t *testing.T) {
	b := blitter.New()
	b.WriteRegister(blitter.RegWidth, 3)
	test.DemandEquality(t, b.Active(), false)
}

func TestCopy1x1(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0xAB

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)

	cycles := runToCompletion(b, vram)
	test.DemandEquality(t, cycles, 1)
	test.DemandEquality(t, vram[0x0200], uint8(0xAB))
}

func TestCopy4x1Linear(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0x11
	vram[0x0101] = 0x22
	vram[0x0102] = 0x33
	vram[0x0103] = 0x44

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 3) // width is 0-based: 4 columns
	b.WriteRegister(blitter.RegHeight, 0)

	cycles := runToCompletion(b, vram)
	test.DemandEquality(t, cycles, 4)
	test.DemandEquality(t, vram[0x0200], uint8(0x11))
	test.DemandEquality(t, vram[0x0201], uint8(0x22))
	test.DemandEquality(t, vram[0x0202], uint8(0x33))
	test.DemandEquality(t, vram[0x0203], uint8(0x44))
}

func TestRowStrideAdvance(t *testing.T) {
	// Each destination row starts rowStride (256) bytes after the last
	// row's start, regardless of column count.
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0x11
	vram[0x0101] = 0x22
	vram[0x0102] = 0x33

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x20)
	b.WriteRegister(blitter.RegDestLo, 0xFE)
	b.WriteRegister(blitter.RegWidth, 0)  // 1 column
	b.WriteRegister(blitter.RegHeight, 2) // 3 rows

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x20FE], uint8(0x11))
	test.DemandEquality(t, vram[0x21FE], uint8(0x22))
	test.DemandEquality(t, vram[0x22FE], uint8(0x33))
}

func TestSolidFill(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSolidColor, 0x77)
	b.WriteRegister(blitter.RegDestHi, 0x10)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 2)
	b.WriteRegister(blitter.RegHeight, 0)
	b.SetControl(blitter.FlagSolid)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x1000], uint8(0x77))
	test.DemandEquality(t, vram[0x1001], uint8(0x77))
	test.DemandEquality(t, vram[0x1002], uint8(0x77))
}

func TestSolidSourceStillAdvances(t *testing.T) {
	// In the reference hardware the source address always advances even
	// in solid mode. The source pointer is internal state, so this test
	// checks only that the fill colour, not the source bytes, is written.
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0xFF
	vram[0x0101] = 0xEE

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSolidColor, 0x42)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 1)
	b.WriteRegister(blitter.RegHeight, 0)
	b.SetControl(blitter.FlagSolid)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x0200], uint8(0x42))
	test.DemandEquality(t, vram[0x0201], uint8(0x42))
}

func TestForegroundOnlyZeroSourceSkipsWrite(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0x00
	vram[0x0200] = 0xCC

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)
	b.SetControl(blitter.FlagForegroundOnly)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x0200], uint8(0xCC))
}

func TestForegroundOnlyNonzeroSourceWrites(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0x42
	vram[0x0200] = 0xCC

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)
	b.SetControl(blitter.FlagForegroundOnly)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x0200], uint8(0x42))
}

func TestMask(t *testing.T) {
	// Only the masked bits of the source replace the destination; the
	// remaining bits keep their old value.
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0xFF
	vram[0x0200] = 0x0F

	b.WriteRegister(blitter.RegMask, 0xF0)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x0200], uint8(0xFF))
}

func TestShiftMode(t *testing.T) {
	// Shift mode right-shifts the source data by one pixel (4 bits); a
	// shift register carries the previous raw byte across the transfer.
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0xAB
	vram[0x0101] = 0xCD

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 1)
	b.WriteRegister(blitter.RegHeight, 0)
	b.SetControl(blitter.FlagShift)

	runToCompletion(b, vram)

	test.DemandEquality(t, vram[0x0200], uint8(0x0A))
	test.DemandEquality(t, vram[0x0201], uint8(0xBC))
}

func TestCompletionClearsActive(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)

	test.DemandEquality(t, b.Active(), true)
	b.DoDMACycle(vram)
	test.DemandEquality(t, b.Active(), false)
}

func TestRetriggerAfterCompletion(t *testing.T) {
	// Registers retain their values across blits; a later trigger can
	// reuse a width/height set earlier.
	b := blitter.New()
	vram := make([]byte, 0x10000)
	vram[0x0100] = 0xAA

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x02)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)

	runToCompletion(b, vram)
	test.DemandEquality(t, vram[0x0200], uint8(0xAA))
	test.DemandEquality(t, b.Active(), false)

	vram[0x0300] = 0xBB
	b.WriteRegister(blitter.RegSourceHi, 0x03)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x04)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegHeight, 0) // re-trigger, reusing width

	runToCompletion(b, vram)
	test.DemandEquality(t, vram[0x0400], uint8(0xBB))
}

func TestInactiveDMACycleIsNoOp(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)
	b.DoDMACycle(vram) // must not panic
	test.DemandEquality(t, b.Active(), false)
}

func TestOutOfBoundsSafe(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 256) // tiny memory

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0xFF) // src = 0xFF00, beyond memory
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0xFE) // dst = 0xFE00, beyond memory
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 0)
	b.WriteRegister(blitter.RegHeight, 0)

	runToCompletion(b, vram) // must not panic
}

func Test1BasedWidthCounting(t *testing.T) {
	b := blitter.New()
	vram := make([]byte, 0x10000)

	b.WriteRegister(blitter.RegMask, 0xFF)
	b.WriteRegister(blitter.RegSourceHi, 0x01)
	b.WriteRegister(blitter.RegSourceLo, 0x00)
	b.WriteRegister(blitter.RegDestHi, 0x20)
	b.WriteRegister(blitter.RegDestLo, 0x00)
	b.WriteRegister(blitter.RegWidth, 4) // 5 columns
	b.WriteRegister(blitter.RegHeight, 2) // 3 rows

	cycles := runToCompletion(b, vram)
	test.DemandEquality(t, cycles, 15)
}
