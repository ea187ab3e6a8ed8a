// Package conformance replays Tom Harte-style single-step JSON test
// vectors against this module's CPU cores and reports per-vector
// mismatches in register, RAM and bus-cycle-trace state. It is host-side
// batch tooling: nothing here runs on a board's own tick path, so its
// use of goroutines for fan-out does not conflict with the
// single-threaded, cooperatively-scheduled emulation core itself.
package conformance

import (
	"encoding/json"
	"fmt"
)

// RAMEntry is one address/value pair from a vector's "ram" list.
type RAMEntry struct {
	Address uint16
	Value   uint8
}

// UnmarshalJSON decodes the vector schema's `[address, value]` pair form.
func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

// CycleDirection names one entry in a vector's "cycles" bus trace.
type CycleDirection string

const (
	CycleRead     CycleDirection = "read"
	CycleWrite    CycleDirection = "write"
	CycleInternal CycleDirection = "internal"
)

// Cycle is one bus-visible (or internal) event in a vector's expected
// cycle-by-cycle trace.
type Cycle struct {
	Address   uint16
	Data      uint8
	Direction CycleDirection
}

// UnmarshalJSON decodes the vector schema's `[address, data, direction]`
// triple form.
func (c *Cycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	dir, _ := raw[2].(string)

	c.Address = uint16(addr)
	c.Data = uint8(dat)
	c.Direction = CycleDirection(dir)

	switch c.Direction {
	case CycleRead, CycleWrite, CycleInternal:
	default:
		return fmt.Errorf("unexpected cycle direction: %q", c.Direction)
	}
	return nil
}

// State is one "initial"/"final" register/memory snapshot. Fields cover
// the primary 6809-shaped schema (§6) plus the Z80 extension fields; a
// family that has no equivalent register simply leaves that field zero
// on both sides of a comparison, so one State shape serves every core.
type State struct {
	PC, X, Y, U, S uint16
	A, B, DP, CC   uint8
	RAM            []RAMEntry

	// Z80-only extension fields (§6).
	MEMPTR     uint16
	R          uint8
	IFF1, IFF2 bool
	Q          uint8
}

type jsonState struct {
	PC     uint16     `json:"pc"`
	A      uint8      `json:"a"`
	B      uint8      `json:"b"`
	DP     uint8      `json:"dp"`
	X      uint16     `json:"x"`
	Y      uint16     `json:"y"`
	U      uint16     `json:"u"`
	S      uint16     `json:"s"`
	CC     uint8      `json:"cc"`
	RAM    []RAMEntry `json:"ram"`
	MEMPTR uint16     `json:"memptr"`
	R      uint8      `json:"r"`
	IFF1   bool       `json:"iff1"`
	IFF2   bool       `json:"iff2"`
	Q      uint8      `json:"q"`
}

// UnmarshalJSON decodes a State from the wire schema, keeping the
// exported field names free of json struct tags for use elsewhere in
// this package.
func (s *State) UnmarshalJSON(data []byte) error {
	var j jsonState
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*s = State{
		PC: j.PC, A: j.A, B: j.B, DP: j.DP,
		X: j.X, Y: j.Y, U: j.U, S: j.S, CC: j.CC,
		RAM:    j.RAM,
		MEMPTR: j.MEMPTR, R: j.R, IFF1: j.IFF1, IFF2: j.IFF2, Q: j.Q,
	}
	return nil
}

// Vector is one single-step test case: an instruction's starting state,
// its expected ending state, and the bus cycles it should generate along
// the way.
type Vector struct {
	Name    string  `json:"name"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
}
