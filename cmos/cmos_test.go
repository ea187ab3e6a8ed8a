package cmos_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/cmos"
	"github.com/mvandenberg/sc1emu/test"
)

func TestNewIsZeroed(t *testing.T) {
	r := cmos.New()
	for i := 0; i < cmos.Size; i++ {
		test.DemandEquality(t, r.Read(uint16(i)), uint8(0))
	}
}

func TestReadWriteBasic(t *testing.T) {
	r := cmos.New()
	r.Write(0x00, 0x42)
	test.DemandEquality(t, r.Read(0x00), uint8(0x42))
	r.Write(0x1FF, 0xAB)
	test.DemandEquality(t, r.Read(0x1FF), uint8(0xAB))
}

func TestOffsetMaskingWrapsAt1024(t *testing.T) {
	r := cmos.New()
	r.Write(0, 0xDE)
	test.DemandEquality(t, r.Read(0x400), uint8(0xDE))
}

func TestOffsetMaskingHighBits(t *testing.T) {
	r := cmos.New()
	r.Write(0x3FF, 0xBE)
	test.DemandEquality(t, r.Read(0xFFFF), uint8(0xBE))
}

func TestRestoreShortSlicePreservesTail(t *testing.T) {
	r := cmos.New()
	r.Write(512, 0xFF)
	src := make([]byte, 512)
	for i := range src {
		src[i] = 0xBB
	}
	r.Restore(src)
	test.DemandEquality(t, r.Read(0), uint8(0xBB))
	test.DemandEquality(t, r.Read(511), uint8(0xBB))
	test.DemandEquality(t, r.Read(512), uint8(0xFF))
}

func TestSnapshotRoundtrip(t *testing.T) {
	r1 := cmos.New()
	r1.Write(0, 0x11)
	r1.Write(100, 0x22)
	r1.Write(0x3FF, 0x33)

	saved := r1.Snapshot()
	r2 := cmos.New()
	r2.Restore(saved)

	test.DemandEquality(t, r2.Read(0), uint8(0x11))
	test.DemandEquality(t, r2.Read(100), uint8(0x22))
	test.DemandEquality(t, r2.Read(0x3FF), uint8(0x33))
}
