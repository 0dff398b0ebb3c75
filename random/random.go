// This file is part of Bambam.
//
// Bambam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bambam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bambam.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// every instance nudges the base seed so that two instances created in the
// same nanosecond do not produce the same sequence
var instanceCount int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator. Instances are independent of one
// another and of the global source in the math/rand package.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable. must be set
	// before the first call to any of the number functions
	ZeroSeed bool

	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		seed: baseSeed + atomic.AddInt64(&instanceCount, 1),
	}
}

// RNG from the standard library, created on first use.
func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewSource(0))
		} else {
			rnd.rnd = rand.New(rand.NewSource(rnd.seed))
		}
	}
	return rnd.rnd
}

// Intn returns a random number between 0 and n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
