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

package extension_test

import (
	"testing"

	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/test"
)

func TestTypeCheck(t *testing.T) {
	c := extension.TypeCheck{Type: extension.EventKeyDown}

	test.ExpectSuccess(t, c.Match(extension.Event{Type: extension.EventKeyDown, Char: 'a'}))
	test.ExpectSuccess(t, c.Match(extension.Event{Type: extension.EventKeyDown}))
	test.ExpectFailure(t, c.Match(extension.Event{Type: extension.EventGamepadButton}))
	test.ExpectFailure(t, c.Match(extension.Event{}))
}

func TestUnicodeValueCheck(t *testing.T) {
	c := extension.UnicodeValueCheck{Value: "0"}

	test.ExpectSuccess(t, c.Match(extension.Event{Type: extension.EventKeyDown, Char: '0'}))
	test.ExpectFailure(t, c.Match(extension.Event{Type: extension.EventKeyDown, Char: '1'}))

	// events without a character never match, whatever the wanted value
	test.ExpectFailure(t, c.Match(extension.Event{Type: extension.EventKeyDown}))
	test.ExpectFailure(t, extension.UnicodeValueCheck{}.Match(extension.Event{Type: extension.EventKeyDown}))

	// a value of more than one character can never match a single event
	c = extension.UnicodeValueCheck{Value: "00"}
	test.ExpectFailure(t, c.Match(extension.Event{Type: extension.EventKeyDown, Char: '0'}))
}

func TestUnicodeClassCheck(t *testing.T) {
	alpha := extension.UnicodeClassCheck{Class: extension.UnicodeAlpha, Expected: true}
	digit := extension.UnicodeClassCheck{Class: extension.UnicodeDigit, Expected: true}

	test.ExpectSuccess(t, alpha.Match(extension.Event{Char: 'a'}))
	test.ExpectSuccess(t, alpha.Match(extension.Event{Char: 'Z'}))
	test.ExpectFailure(t, alpha.Match(extension.Event{Char: '7'}))
	test.ExpectFailure(t, alpha.Match(extension.Event{Char: ' '}))
	test.ExpectFailure(t, alpha.Match(extension.Event{}))

	test.ExpectSuccess(t, digit.Match(extension.Event{Char: '7'}))
	test.ExpectFailure(t, digit.Match(extension.Event{Char: 'a'}))
	test.ExpectFailure(t, digit.Match(extension.Event{}))

	// the check tests for equality with the expected classification, so
	// expecting false matches characters outside the class
	notAlpha := extension.UnicodeClassCheck{Class: extension.UnicodeAlpha, Expected: false}
	test.ExpectSuccess(t, notAlpha.Match(extension.Event{Char: '7'}))
	test.ExpectFailure(t, notAlpha.Match(extension.Event{Char: 'a'}))

	// but an event with no character never matches either way
	test.ExpectFailure(t, notAlpha.Match(extension.Event{}))
}

func TestRuleMatch(t *testing.T) {
	// a rule with no checks matches any event at all
	r := extension.Rule{Policy: extension.PolicyRandom}
	test.ExpectSuccess(t, r.Match(extension.Event{Type: extension.EventKeyDown, Char: 'a'}))
	test.ExpectSuccess(t, r.Match(extension.Event{}))

	// all checks must match, not just one of them
	r = extension.Rule{
		Checks: []extension.Check{
			extension.TypeCheck{Type: extension.EventKeyDown},
			extension.UnicodeValueCheck{Value: "q"},
		},
		Policy: extension.PolicyRandom,
	}
	test.ExpectSuccess(t, r.Match(extension.Event{Type: extension.EventKeyDown, Char: 'q'}))
	test.ExpectFailure(t, r.Match(extension.Event{Type: extension.EventKeyDown, Char: 'r'}))
	test.ExpectFailure(t, r.Match(extension.Event{Type: extension.EventGamepadButton, Char: 'q'}))
}
