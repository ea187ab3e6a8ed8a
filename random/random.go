// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator that is sensitive to the number of
// cycles already emulated. Required for conformance runs and parallel
// emulations, where two instances fed the same inputs must draw the same
// sequence of "random" values.
type Random struct {
	cycles int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Step advances the generator's internal cycle count. Call once per bus
// cycle so that Intn draws are reproducible across runs given the same
// instruction stream.
func (rnd *Random) Step(cycles int64) {
	rnd.cycles += cycles
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.cycles))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.cycles))
}

func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
