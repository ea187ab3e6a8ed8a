package pia_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/peripheral/pia"
	"github.com/mvandenberg/sc1emu/test"
)

func TestEdgeDetectionRisingSetsFlagAndReadClears(t *testing.T) {
	p := pia.New()

	// select data register on side A, enable IRQA1, rising-edge sense
	p.Write(1, 0x02) // CRA bit1=1 (rising edge), bit2=0 selects DDR
	p.Write(0, 0xFF) // DDRA = all output, doesn't matter for this test
	p.Write(1, 0x07) // CRA: bit0 (irq enable) | bit1 (rising) | bit2 (data register select)

	test.DemandEquality(t, p.IRQA(), false)

	p.SetCA1(false)
	p.SetCA1(true) // rising edge
	test.DemandEquality(t, p.IRQA(), true)

	_ = p.Read(0) // read of data port clears the sticky flag
	test.DemandEquality(t, p.IRQA(), false)
}

func TestEdgeDetectionFallingIgnoredWhenRisingConfigured(t *testing.T) {
	p := pia.New()
	p.Write(1, 0x07)
	p.SetCA1(true)
	test.DemandEquality(t, p.IRQA(), true)

	_ = p.Read(0)
	p.SetCA1(false) // falling edge, not the configured sense
	test.DemandEquality(t, p.IRQA(), false)
}

func TestDataDirectionWindow(t *testing.T) {
	p := pia.New()
	p.Write(1, 0x00) // CRA.2=0 -> offset 0 addresses DDRA
	p.Write(0, 0x0F) // DDRA = lower nibble output
	p.Write(1, 0x04) // CRA.2=1 -> offset 0 now addresses data register
	p.Write(0, 0xFF) // ORA = all bits set

	p.SetPortAInput(0xF0)
	got := p.Read(0)
	test.DemandEquality(t, got, uint8(0xFF)) // upper nibble from input, lower from output
}

func TestPortBWrittenNotification(t *testing.T) {
	p := pia.New()
	test.DemandEquality(t, p.TakePortBWritten(), false)

	p.Write(3, 0x04) // CRB.2=1 selects data register
	p.Write(2, 0x55)
	test.DemandEquality(t, p.TakePortBWritten(), true)
	test.DemandEquality(t, p.TakePortBWritten(), false) // one-shot
}
