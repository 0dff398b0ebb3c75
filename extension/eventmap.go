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

package extension

import (
	"io"
	"os"

	"github.com/porridge/bambam/curated"
	"gopkg.in/yaml.v3"
)

// the event map format understood by this version of the application.
const apiVersion = 0

// Sentinel errors returned when an event map cannot be loaded. An event map
// that fails to load in any of these ways is unusable and there is no
// recovery beyond choosing a different extension.
const (
	UnsupportedVersion    = "unsupported event map version: %v"
	UnknownCheck          = "unknown check: %v"
	MalformedUnicodeCheck = "malformed unicode check: %v"
	UnknownPolicy         = "unknown policy for %v rules: %v"
)

// Category differentiates the two reaction categories of an event map.
type Category string

// List of valid Category values.
const (
	CategoryImage Category = "image"
	CategorySound Category = "sound"
)

// Rule pairs a list of checks with the policy to apply when they all match.
type Rule struct {
	Checks []Check
	Policy Policy
	Args   []string
}

// Match returns true if every check in the rule matches the event. A rule
// with no checks matches unconditionally.
func (r Rule) Match(ev Event) bool {
	for _, c := range r.Checks {
		if !c.Match(ev) {
			return false
		}
	}
	return true
}

// EventMap is the rule program at the heart of an extension. The rule lists
// preserve the order in which the rules appear in the YAML document.
type EventMap struct {
	Image []Rule
	Sound []Rule
}

// Rules returns the rule list for the named category.
func (m *EventMap) Rules(cat Category) []Rule {
	switch cat {
	case CategoryImage:
		return m.Image
	case CategorySound:
		return m.Sound
	}
	return nil
}

// the types the YAML document is decoded into. checks are kept as raw yaml
// nodes because their shape is too loose for static struct decoding.
type ruleSpec struct {
	Check  []yaml.Node `yaml:"check"`
	Policy string      `yaml:"policy"`
	Args   []string    `yaml:"args"`
}

type eventMapSpec struct {
	APIVersion yaml.Node  `yaml:"apiVersion"`
	Image      []ruleSpec `yaml:"image"`
	Sound      []ruleSpec `yaml:"sound"`
}

// ReadEventMap loads an event map from an io.Reader. Decoding is strict:
// unrecognised fields are an error rather than something to skip over, on
// the principle that a typo in an event map should be noticed and not
// silently change which rules fire.
func ReadEventMap(r io.Reader) (*EventMap, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec eventMapSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, curated.Errorf("event map: %v", err)
	}

	// a version key with no value decodes into an int as zero without
	// complaint, so the null must be caught before the decode or it would
	// pass as version 0
	if spec.APIVersion.IsZero() || spec.APIVersion.Tag == "!!null" {
		return nil, curated.Errorf(UnsupportedVersion, "missing")
	}

	var ver int
	if err := spec.APIVersion.Decode(&ver); err != nil {
		return nil, curated.Errorf(UnsupportedVersion, spec.APIVersion.Value)
	}
	if ver != apiVersion {
		return nil, curated.Errorf(UnsupportedVersion, ver)
	}

	m := &EventMap{}

	var err error
	m.Image, err = parseRules(CategoryImage, spec.Image)
	if err != nil {
		return nil, err
	}
	m.Sound, err = parseRules(CategorySound, spec.Sound)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// LoadEventMap loads an event map from a file.
func LoadEventMap(pth string) (*EventMap, error) {
	f, err := os.Open(pth)
	if err != nil {
		return nil, curated.Errorf("event map: %v", err)
	}
	defer f.Close()

	return ReadEventMap(f)
}

// parseRules converts the decoded rule list for one category, validating
// each rule's checks and policy. A missing rule list is fine and simply
// means the category never reacts through the map.
//
// Errors are wrapped with the category and position of the offending rule.
// Event map authors are not programmers and "sound rule 3" is something
// they can count to, where a bare "rule 3" could be in either list.
func parseRules(cat Category, specs []ruleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))

	for i := range specs {
		var r Rule

		for j := range specs[i].Check {
			c, err := parseCheck(&specs[i].Check[j])
			if err != nil {
				return nil, curated.Errorf("%v rule %d: %v", cat, i+1, err)
			}
			r.Checks = append(r.Checks, c)
		}

		r.Policy = Policy(specs[i].Policy)
		if !r.Policy.allowed(cat) {
			return nil, curated.Errorf("%v rule %d: %v", cat, i+1, curated.Errorf(UnknownPolicy, cat, specs[i].Policy))
		}

		r.Args = append([]string(nil), specs[i].Args...)

		rules = append(rules, r)
	}

	return rules, nil
}
