// Package bus defines the generic arbitrated bus abstraction shared by
// every CPU core and bus-attached device in this module.
package bus

// Master identifies the owner of a bus transaction. It is required on
// every read/write so that arbitration and device-side effects can be
// partitioned per master.
type Master struct {
	// Kind distinguishes a CPU master from a DMA master.
	Kind MasterKind

	// Index names which CPU this is, when Kind is CPU. Ignored otherwise.
	Index int
}

// MasterKind enumerates the shapes of bus master this module attaches.
type MasterKind int

const (
	// CPU identifies a processor core, numbered by Index.
	CPU MasterKind = iota

	// DMA identifies the blitter reading/writing through the normal bus
	// decode (bank overlays, I/O windows, and all).
	DMA

	// DMAVideo identifies a blitter access that reads destination video
	// memory directly, bypassing any bank overlay a board might apply.
	// The Joust board has no bank overlay, so DMA and DMAVideo behave
	// identically here; the distinct tag exists so a banked board can
	// differentiate them later without changing this interface.
	DMAVideo
)

// CPUMaster returns the master identity for CPU n.
func CPUMaster(n int) Master { return Master{Kind: CPU, Index: n} }

// Primary is the conventional identity of the board's main CPU.
var Primary = CPUMaster(0)

// Secondary is the conventional identity of a board's secondary CPU, if any.
var Secondary = CPUMaster(1)

// DMAMaster is the blitter's normal bus-decode identity.
var DMAMaster = Master{Kind: DMA}

// DMAVideoMaster is the blitter's direct-video-RAM identity.
var DMAVideoMaster = Master{Kind: DMAVideo}

// InterruptState is the snapshot of interrupt lines a CPU polls at
// instruction boundaries.
type InterruptState struct {
	NMI  bool
	IRQ  bool
	FIRQ bool // 6809-specific; ignored by other cores
}

// Any reports whether any line in the state is asserted.
func (s InterruptState) Any() bool {
	return s.NMI || s.IRQ || s.FIRQ
}

// Bus is the generic bus contract. Address and data widths are fixed at
// 16 and 8 bits for every device in this module (see DESIGN.md for why
// this is an interface rather than a generic type).
type Bus interface {
	// Read returns the byte at addr for master. May have side effects on
	// I/O devices. Unmapped addresses return an implementation-defined
	// open-bus value.
	Read(master Master, addr uint16) uint8

	// Write stores data at addr on behalf of master. Side effects are
	// device-defined; unmapped addresses may silently drop the write.
	Write(master Master, addr uint16, data uint8)

	// IsHaltedFor reports whether master must not advance this cycle.
	// This is the arbitration mechanism the blitter uses to stall the CPU.
	IsHaltedFor(master Master) bool

	// CheckInterrupts returns the current interrupt snapshot visible to
	// master. Queried by CPUs only at instruction boundaries.
	CheckInterrupts(master Master) InterruptState
}

// IOBus is implemented by buses that expose a separate I/O address space
// (the Z80's IN/OUT ports). Boards without a separate I/O space need not
// implement it; the IORead/IOWrite helpers fall back to Read/Write when a
// bus does not implement IOBus. No bus in this module implements it, and
// the Z80 core's IN/OUT opcodes do not call the helpers.
type IOBus interface {
	Bus
	IORead(master Master, addr uint16) uint8
	IOWrite(master Master, addr uint16, data uint8)
}

// IORead reads from b's I/O space if it implements IOBus, otherwise
// delegates to the memory space. This mirrors the reference bus trait's
// default method body for CPUs that have no separate I/O space.
func IORead(b Bus, master Master, addr uint16) uint8 {
	if iob, ok := b.(IOBus); ok {
		return iob.IORead(master, addr)
	}
	return b.Read(master, addr)
}

// IOWrite writes to b's I/O space if it implements IOBus, otherwise
// delegates to the memory space.
func IOWrite(b Bus, master Master, addr uint16, data uint8) {
	if iob, ok := b.(IOBus); ok {
		iob.IOWrite(master, addr, data)
		return
	}
	b.Write(master, addr, data)
}

// Component is the contract for a clocked device without bus access:
// advance one clock and report whether a notable event (interrupt edge,
// transfer complete) occurred. No device in this module implements it;
// the CPU cores implement BusComponent.
type Component interface {
	Tick() bool
}

// BusComponent is implemented by devices that must access the bus during
// their own clock (the CPU cores; the board drives the blitter through
// DoDMACycle instead).
type BusComponent interface {
	TickWithBus(b Bus, master Master) bool
}

// ClockDivider is implemented by devices that tick less often than the
// fastest clock in the system. Every core in this module reports 1, and
// the board's frame loop does not consult the value: it ticks each device
// once per system cycle.
type ClockDivider interface {
	ClockDivider() int
}
