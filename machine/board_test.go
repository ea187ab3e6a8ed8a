package machine_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/environment"
	"github.com/mvandenberg/sc1emu/errors"
	"github.com/mvandenberg/sc1emu/machine"
	"github.com/mvandenberg/sc1emu/test"
)

// program builds a 12 KiB "program 0" image with a reset vector pointing
// at the start of ROM ($D000).
func program() []byte {
	p := make([]byte, 0x3000)
	p[0x2FFE] = 0xD0
	p[0x2FFF] = 0x00
	return p
}

func soundProgram() []byte {
	p := make([]byte, 0x1000)
	p[0xFFE] = 0xF0
	p[0xFFF] = 0x00
	return p
}

func TestNewJoustBoardRequiresProgramZero(t *testing.T) {
	_, err := machine.NewJoustBoard(map[string][]byte{}, environment.NewEnvironment(""))
	if err == nil {
		t.Fatalf("expected an error for a missing program 0 ROM")
	}
	e, ok := err.(errors.Error)
	if !ok || !e.Is(errors.RequiredROMMissing) {
		t.Errorf("expected a RequiredROMMissing error, got %v", err)
	}
}

func TestNewJoustBoardRejectsWrongSizedROM(t *testing.T) {
	_, err := machine.NewJoustBoard(map[string][]byte{"program 0": make([]byte, 16)}, environment.NewEnvironment(""))
	e, ok := err.(errors.Error)
	if !ok || !e.Is(errors.ROMSizeMismatch) {
		t.Errorf("expected a ROMSizeMismatch error, got %v", err)
	}
}

func TestNewJoustBoardRejectsUnknownRole(t *testing.T) {
	_, err := machine.NewJoustBoard(map[string][]byte{"program 0": program(), "bogus": {0x00}}, environment.NewEnvironment(""))
	e, ok := err.(errors.Error)
	if !ok || !e.Is(errors.UnknownROMRole) {
		t.Errorf("expected an UnknownROMRole error, got %v", err)
	}
}

func TestNewJoustBoardSucceedsWithOnlyProgramZero(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)
	if b == nil {
		t.Fatalf("expected a non-nil board")
	}
}

func TestNewJoustBoardBringsUpSecondaryCPUWhenProgramOneSupplied(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{
		"program 0": program(),
		"program 1": soundProgram(),
	}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)

	// TickFrame must not panic with the secondary CPU attached.
	b.TickFrame()
}

func TestTickFrameAdvancesWithoutPanicking(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)
	b.TickFrame()
}

func TestFramebufferHasTheDocumentedDimensions(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)

	fb := b.Framebuffer()
	test.DemandEquality(t, fb.Width, machine.DisplayWidth)
	test.DemandEquality(t, fb.Height, machine.DisplayHeight)
	test.DemandEquality(t, len(fb.Pixels), machine.DisplayWidth*machine.DisplayHeight)
}

func TestInputMapListsEveryInputWithALabel(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)

	m := b.InputMap()
	if len(m) == 0 {
		t.Fatalf("expected a non-empty input map")
	}
	for id, label := range m {
		if label == "" {
			t.Errorf("input %v has an empty label", id)
		}
	}
}

func TestSetInputDoesNotPanicForAnyMappedControl(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)

	for id := range b.InputMap() {
		b.SetInput(id, true)
		b.SetInput(id, false)
	}
}

func TestConfigMemoryRoundTripsThroughSnapshotAndRestore(t *testing.T) {
	b, err := machine.NewJoustBoard(map[string][]byte{"program 0": program()}, environment.NewEnvironment(""))
	test.DemandSuccess(t, err)

	data := make([]byte, 1024)
	data[0] = 0x42
	data[1023] = 0x99
	b.RestoreConfig(data)

	snap := b.SnapshotConfig()
	test.DemandEquality(t, snap[0], byte(0x42))
	test.DemandEquality(t, snap[1023], byte(0x99))
}
