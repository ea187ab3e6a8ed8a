package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mvandenberg/sc1emu/assert"
	"github.com/mvandenberg/sc1emu/errors"
	"github.com/mvandenberg/sc1emu/logger"
	"github.com/mvandenberg/sc1emu/testbus"
)

// Mismatch describes one register, RAM or cycle-trace disagreement
// between a vector's expected final state and what the core produced.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

// Result is one vector's outcome.
type Result struct {
	Vector     string
	Mismatches []Mismatch
}

// Passed reports whether the vector matched on every tracked field.
func (r Result) Passed() bool { return len(r.Mismatches) == 0 }

// Suite replays vector files against fresh cores built by NewAdapter,
// reporting per-vector mismatches.
type Suite struct {
	NewAdapter func() Adapter
}

// NewSuite returns a Suite that drives cores built by newAdapter - one
// of NewM6809Adapter, NewM6800Adapter, NewM6502Adapter or NewZ80Adapter,
// or a caller-supplied Adapter for another core.
func NewSuite(newAdapter func() Adapter) *Suite {
	return &Suite{NewAdapter: newAdapter}
}

// RunFile replays every vector in a single JSON vector file, as found in
// a Tom Harte-style per-opcode test set.
func (s *Suite) RunFile(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.VectorFileCannotOpen, path)
	}
	defer f.Close()

	var vectors []Vector
	if err := json.NewDecoder(f).Decode(&vectors); err != nil {
		return nil, errors.New(errors.VectorFileMalformed, path)
	}

	results := make([]Result, len(vectors))
	for i, v := range vectors {
		results[i] = s.runOne(v)
	}
	return results, nil
}

// RunDir replays every regular file in dir as a vector file (one file
// per opcode, conventionally), fanning the per-file work out across
// goroutines with golang.org/x/sync/errgroup. This is host-side batch
// tooling, not the cooperatively-scheduled core itself (§5).
func (s *Suite) RunDir(dir string) (map[string][]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New(errors.VectorFileCannotOpen, dir)
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	results := make(map[string][]Result, len(entries))

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)

		g.Go(func() error {
			logger.Logf(logger.Allow, "conformance", "goroutine %d running %s", assert.GetGoRoutineID(), name)
			r, err := s.RunFile(path)
			if err != nil {
				logger.Logf(logger.Allow, "conformance", "skipping %s: %s", name, err)
				return nil
			}
			mu.Lock()
			results[name] = r
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Suite) runOne(v Vector) Result {
	a := s.NewAdapter()
	b := a.Load(v.Initial)
	a.RunOne(b)
	got := a.Snapshot()

	res := Result{Vector: v.Name}
	res.Mismatches = append(res.Mismatches, compareState(v.Final, got)...)
	res.Mismatches = append(res.Mismatches, compareRAM(v.Final.RAM, b)...)
	res.Mismatches = append(res.Mismatches, compareCycles(v.Cycles, b.Trace)...)
	return res
}

func compareState(want, got State) []Mismatch {
	var out []Mismatch
	add := func(field string, want, got uint64) {
		if want != got {
			out = append(out, Mismatch{Field: field, Want: fmt.Sprintf("%#x", want), Got: fmt.Sprintf("%#x", got)})
		}
	}
	add("pc", uint64(want.PC), uint64(got.PC))
	add("a", uint64(want.A), uint64(got.A))
	add("b", uint64(want.B), uint64(got.B))
	add("dp", uint64(want.DP), uint64(got.DP))
	add("x", uint64(want.X), uint64(got.X))
	add("y", uint64(want.Y), uint64(got.Y))
	add("u", uint64(want.U), uint64(got.U))
	add("s", uint64(want.S), uint64(got.S))
	add("cc", uint64(want.CC), uint64(got.CC))
	add("memptr", uint64(want.MEMPTR), uint64(got.MEMPTR))
	add("r", uint64(want.R), uint64(got.R))
	add("q", uint64(want.Q), uint64(got.Q))
	if want.IFF1 != got.IFF1 {
		out = append(out, Mismatch{Field: "iff1", Want: fmt.Sprint(want.IFF1), Got: fmt.Sprint(got.IFF1)})
	}
	if want.IFF2 != got.IFF2 {
		out = append(out, Mismatch{Field: "iff2", Want: fmt.Sprint(want.IFF2), Got: fmt.Sprint(got.IFF2)})
	}
	return out
}

func compareRAM(want []RAMEntry, b *testbus.Bus) []Mismatch {
	var out []Mismatch
	for _, r := range want {
		if got := b.Mem[r.Address]; got != r.Value {
			out = append(out, Mismatch{
				Field: fmt.Sprintf("ram[%#04x]", r.Address),
				Want:  fmt.Sprintf("%#02x", r.Value),
				Got:   fmt.Sprintf("%#02x", got),
			})
		}
	}
	return out
}

// compareCycles compares a vector's expected cycle trace against the
// bus's recorded transactions. "internal" entries carry no bus
// transaction (§6: no read or write occurs), so they are filtered out
// before comparing against testbus's read/write-only trace.
func compareCycles(want []Cycle, trace []testbus.Transaction) []Mismatch {
	var out []Mismatch

	filtered := make([]Cycle, 0, len(want))
	for _, c := range want {
		if c.Direction != CycleInternal {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) != len(trace) {
		out = append(out, Mismatch{
			Field: "cycle count",
			Want:  fmt.Sprint(len(filtered)),
			Got:   fmt.Sprint(len(trace)),
		})
		return out
	}

	for i, c := range filtered {
		t := trace[i]
		gotDir := CycleRead
		if t.Direction == testbus.Write {
			gotDir = CycleWrite
		}
		if c.Address != t.Addr || c.Data != t.Data || c.Direction != gotDir {
			out = append(out, Mismatch{
				Field: fmt.Sprintf("cycle %d", i),
				Want:  fmt.Sprintf("%#04x=%#02x %s", c.Address, c.Data, c.Direction),
				Got:   fmt.Sprintf("%#04x=%#02x %s", t.Addr, t.Data, gotDir),
			})
		}
	}
	return out
}
