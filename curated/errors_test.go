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

package curated_test

import (
	"errors"
	"testing"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/test"
)

const testPattern = "test error: %s"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "some other pattern: %s"))

	// uncurated errors never match
	f := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Has(f, testPattern))

	// nil never matches
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestWrapping(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")
	f := curated.Errorf("outer: %v", e)

	// Is() only matches the outermost pattern
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, "outer: %v"))

	// Has() finds patterns anywhere in the chain
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, "outer: %v"))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are folded into one
	e := curated.Errorf("eventmap: %v", curated.Errorf("eventmap: %v", curated.Errorf("inner")))
	test.ExpectEquality(t, e.Error(), "eventmap: inner")

	// non-adjacent parts are left alone
	f := curated.Errorf("outer: %v", curated.Errorf("inner: %s", "detail"))
	test.ExpectEquality(t, f.Error(), "outer: inner: detail")
}
