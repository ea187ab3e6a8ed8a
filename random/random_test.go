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

package random_test

import (
	"testing"

	"github.com/mvandenberg/sc1emu/random"
	"github.com/mvandenberg/sc1emu/test"
)

func TestZeroSeedIsReproducible(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := int64(1); i < 256; i++ {
		a.Step(1)
		b.Step(1)
		test.DemandEquality(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestDifferentCycleCountsCanDiverge(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	a.Step(1)
	b.Step(2)

	diverged := false
	for i := 0; i < 100; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			diverged = true
			break
		}
	}
	test.DemandEquality(t, diverged, true)
}
