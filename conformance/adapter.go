package conformance

import "github.com/mvandenberg/sc1emu/testbus"

// Adapter lets Suite drive an arbitrary CPU core through the generic
// vector schema without needing to know that family's register layout.
// Each CPU package gets its own Adapter implementation (see
// m6809_adapter.go, m6800_adapter.go, m6502_adapter.go, z80_adapter.go).
type Adapter interface {
	// Load seeds a fresh core's registers and a fresh bus's RAM from
	// initial, enables bus tracing, and returns the bus.
	Load(initial State) *testbus.Bus

	// RunOne ticks the core through exactly one instruction, from Fetch
	// back to Fetch.
	RunOne(b *testbus.Bus)

	// Snapshot reads the core's current register state back out.
	Snapshot() State
}
