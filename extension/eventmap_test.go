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
	"strings"
	"testing"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/test"
)

func readMap(t *testing.T, doc string) (*extension.EventMap, error) {
	t.Helper()
	return extension.ReadEventMap(strings.NewReader(doc))
}

func TestReadEventMap(t *testing.T) {
	m, err := readMap(t, `apiVersion: 0
sound:
  - check:
      - type: KEYDOWN
      - unicode:
          value: "0"
    policy: named_file
    args:
      - "0.wav"
  - policy: random
image:
  - check:
      - unicode:
          isalpha: true
    policy: font
  - check:
      - unicode:
          isdigit: true
    policy: font
  - policy: random
`)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(m.Sound), 2)
	test.ExpectEquality(t, len(m.Image), 3)

	// declaration order must be preserved
	test.ExpectEquality(t, m.Sound[0].Policy, extension.PolicyNamedFile)
	test.ExpectEquality(t, m.Sound[1].Policy, extension.PolicyRandom)
	test.ExpectEquality(t, m.Image[0].Policy, extension.PolicyFont)
	test.ExpectEquality(t, m.Image[2].Policy, extension.PolicyRandom)

	test.ExpectEquality(t, len(m.Sound[0].Checks), 2)
	test.ExpectEquality(t, len(m.Sound[0].Args), 1)
	test.ExpectEquality(t, m.Sound[0].Args[0], "0.wav")
	test.ExpectEquality(t, len(m.Sound[1].Checks), 0)
}

func TestReadEventMapMissingCategories(t *testing.T) {
	// an event map need not mention either category. the categories simply
	// have no rules
	m, err := readMap(t, `apiVersion: 0
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m.Image), 0)
	test.ExpectEquality(t, len(m.Sound), 0)

	m, err = readMap(t, `apiVersion: 0
sound:
  - policy: random
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m.Image), 0)
	test.ExpectEquality(t, len(m.Sound), 1)
}

func TestVersionHandling(t *testing.T) {
	// future version
	_, err := readMap(t, `apiVersion: 1
sound:
  - policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, extension.UnsupportedVersion))

	// missing version
	_, err = readMap(t, `sound:
  - policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, extension.UnsupportedVersion))

	// version that isn't a number at all
	_, err = readMap(t, `apiVersion: zero
sound:
  - policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, extension.UnsupportedVersion))

	// version key present but with no value. yaml decodes the null into an
	// int as zero, so this would otherwise slip through as version 0
	_, err = readMap(t, `apiVersion:
sound:
  - policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, extension.UnsupportedVersion))

	// an explicit null is the same thing spelled out
	_, err = readMap(t, `apiVersion: null
sound:
  - policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, extension.UnsupportedVersion))
}

func TestUnknownChecks(t *testing.T) {
	// misspelled check key
	_, err := readMap(t, `apiVersion: 0
sound:
  - check:
      - tyep: KEYDOWN
    policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownCheck))

	// a check must be a mapping with a single key
	_, err = readMap(t, `apiVersion: 0
sound:
  - check:
      - type: KEYDOWN
        unicode:
          value: "0"
    policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownCheck))

	// a check that isn't a mapping at all
	_, err = readMap(t, `apiVersion: 0
sound:
  - check:
      - KEYDOWN
    policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownCheck))
}

func TestEventTypeNames(t *testing.T) {
	// both event types the application produces are accepted
	m, err := readMap(t, `apiVersion: 0
sound:
  - check:
      - type: KEYDOWN
    policy: random
  - check:
      - type: JOYBUTTONDOWN
    policy: random
`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(m.Sound), 2)

	// a name outside the fixed set is a load failure, not a rule that can
	// never fire
	_, err = readMap(t, `apiVersion: 0
sound:
  - check:
      - type: KEYDWON
    policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownCheck))

	// the vocabulary is case-sensitive
	_, err = readMap(t, `apiVersion: 0
sound:
  - check:
      - type: keydown
    policy: random
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownCheck))
}

func TestRuleErrorsNameTheCategory(t *testing.T) {
	// both lists can have a "rule 2". the error must say which list the
	// offending rule is in
	_, err := readMap(t, `apiVersion: 0
image:
  - policy: font
  - policy: random
sound:
  - policy: random
  - check:
      - tyep: KEYDOWN
    policy: random
`)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "sound rule 2"))

	_, err = readMap(t, `apiVersion: 0
image:
  - policy: fonts
`)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "image rule 1"))
}

func TestMalformedUnicodeChecks(t *testing.T) {
	// no condition
	_, err := readMap(t, `apiVersion: 0
image:
  - check:
      - unicode: {}
    policy: font
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.MalformedUnicodeCheck))

	// more than one condition
	_, err = readMap(t, `apiVersion: 0
image:
  - check:
      - unicode:
          value: "a"
          isalpha: true
    policy: font
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.MalformedUnicodeCheck))

	// unrecognised condition
	_, err = readMap(t, `apiVersion: 0
image:
  - check:
      - unicode:
          isupper: true
    policy: font
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.MalformedUnicodeCheck))

	// a class condition that isn't a boolean
	_, err = readMap(t, `apiVersion: 0
image:
  - check:
      - unicode:
          isalpha: sometimes
    policy: font
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.MalformedUnicodeCheck))
}

func TestNegatedClassChecks(t *testing.T) {
	// a class condition set to false is not malformed. it matches the
	// characters outside the class
	m, err := readMap(t, `apiVersion: 0
image:
  - check:
      - unicode:
          isalpha: false
    policy: random
`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(m.Image), 1)

	r := m.Image[0]
	test.ExpectSuccess(t, r.Match(extension.Event{Type: extension.EventKeyDown, Char: '7'}))
	test.ExpectFailure(t, r.Match(extension.Event{Type: extension.EventKeyDown, Char: 'a'}))

	// an event with no character still never matches a unicode check
	test.ExpectFailure(t, r.Match(extension.Event{Type: extension.EventKeyDown}))
}

func TestUnknownPolicies(t *testing.T) {
	// misspelled policy
	_, err := readMap(t, `apiVersion: 0
image:
  - policy: fonts
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownPolicy))

	// missing policy
	_, err = readMap(t, `apiVersion: 0
image:
  - check:
      - type: KEYDOWN
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownPolicy))

	// policies are only valid for the category they make sense for. font
	// requires something drawable and named_file expects a sound
	_, err = readMap(t, `apiVersion: 0
sound:
  - policy: font
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownPolicy))

	_, err = readMap(t, `apiVersion: 0
image:
  - policy: named_file
    args:
      - "0.wav"
`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, extension.UnknownPolicy))
}

func TestStrictDecoding(t *testing.T) {
	// unrecognised rule fields are an error, not something to skip
	_, err := readMap(t, `apiVersion: 0
sound:
  - polcy: random
`)
	test.ExpectFailure(t, err)

	// as are unrecognised top-level fields
	_, err = readMap(t, `apiVersion: 0
music:
  - policy: random
`)
	test.ExpectFailure(t, err)

	// an empty document is not an event map
	_, err = readMap(t, "")
	test.ExpectFailure(t, err)

	// and nor is something that isn't yaml
	_, err = readMap(t, "{{{{")
	test.ExpectFailure(t, err)
}
