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

package sdlcanvas

import "time"

// limiter paces the Service() loop. Without it the loop would spin flat
// out, which gains nothing except a warm laptop.
type limiter struct {
	period time.Duration
	last   time.Time
}

func newLimiter(hz int) *limiter {
	return &limiter{
		period: time.Second / time.Duration(hz),
		last:   time.Now(),
	}
}

// wait until the next frame is due.
func (lmtr *limiter) wait() {
	if d := lmtr.period - time.Since(lmtr.last); d > 0 {
		time.Sleep(d)
	}
	lmtr.last = time.Now()
}
