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
	"fmt"
	"unicode"

	"github.com/porridge/bambam/curated"
	"gopkg.in/yaml.v3"
)

// Event is the engine's view of a single input event. It is deliberately
// small: the type tag says what kind of event occurred and Char carries the
// character the event produced, if it produced one at all.
type Event struct {
	// the type tag of the event. event maps refer to events by these tags
	Type string

	// the character produced by the event. zero if the event produced no
	// character
	Char rune
}

// List of event type tags produced by the application. A type check in an
// event map must name one of these.
const (
	EventKeyDown       = "KEYDOWN"
	EventGamepadButton = "JOYBUTTONDOWN"
)

// Check is a single predicate evaluated against an input event. A rule
// fires only if every one of its checks match.
type Check interface {
	// Match returns true if the event satisfies the check.
	Match(ev Event) bool
}

// TypeCheck matches events with a specific type tag.
type TypeCheck struct {
	Type string
}

// Match implements the Check interface.
func (c TypeCheck) Match(ev Event) bool {
	return ev.Type == c.Type
}

// UnicodeValueCheck matches events that produced a specific character.
// Events that produced no character never match.
type UnicodeValueCheck struct {
	Value string
}

// Match implements the Check interface.
func (c UnicodeValueCheck) Match(ev Event) bool {
	return ev.Char != 0 && string(ev.Char) == c.Value
}

// UnicodeClass identifies a class of characters that a UnicodeClassCheck
// can test for.
type UnicodeClass int

// List of supported unicode classes.
const (
	UnicodeAlpha UnicodeClass = iota
	UnicodeDigit
)

// UnicodeClassCheck matches events whose character's class membership
// equals the Expected field, so {isalpha: false} is a meaningful check that
// matches any character which is not a letter. Events that produced no
// character never match, whatever the value of Expected.
type UnicodeClassCheck struct {
	Class    UnicodeClass
	Expected bool
}

// Match implements the Check interface.
func (c UnicodeClassCheck) Match(ev Event) bool {
	if ev.Char == 0 {
		return false
	}
	switch c.Class {
	case UnicodeAlpha:
		return unicode.IsLetter(ev.Char) == c.Expected
	case UnicodeDigit:
		return unicode.IsDigit(ev.Char) == c.Expected
	}
	return false
}

// parseCheck converts one entry of a rule's check list into a Check
// implementation. Each entry must be a mapping with a single key naming the
// kind of check.
func parseCheck(node *yaml.Node) (Check, error) {
	if node.Kind != yaml.MappingNode {
		return nil, curated.Errorf(UnknownCheck, describeNode(node))
	}
	if len(node.Content) != 2 {
		return nil, curated.Errorf(UnknownCheck, describeNode(node))
	}

	key := node.Content[0].Value
	val := node.Content[1]

	switch key {
	case "type":
		var s string
		if err := val.Decode(&s); err != nil {
			return nil, curated.Errorf(UnknownCheck, key)
		}

		// a tag outside the fixed vocabulary would produce a rule that can
		// never fire. refuse it here rather than let the extension load and
		// silently do nothing
		switch s {
		case EventKeyDown, EventGamepadButton:
			return TypeCheck{Type: s}, nil
		}
		return nil, curated.Errorf(UnknownCheck, fmt.Sprintf("event type %v", s))
	case "unicode":
		return parseUnicodeCheck(val)
	}

	return nil, curated.Errorf(UnknownCheck, key)
}

// parseUnicodeCheck converts the value of a "unicode" check into the
// appropriate Check implementation. Exactly one of the recognised sub-keys
// must be present.
func parseUnicodeCheck(node *yaml.Node) (Check, error) {
	if node.Kind != yaml.MappingNode {
		return nil, curated.Errorf(MalformedUnicodeCheck, describeNode(node))
	}

	var chosen Check

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		var c Check

		switch key {
		case "value":
			var s string
			if err := val.Decode(&s); err != nil {
				return nil, curated.Errorf(MalformedUnicodeCheck, key)
			}
			c = UnicodeValueCheck{Value: s}
		case "isalpha":
			var b bool
			if err := val.Decode(&b); err != nil {
				return nil, curated.Errorf(MalformedUnicodeCheck, key)
			}
			c = UnicodeClassCheck{Class: UnicodeAlpha, Expected: b}
		case "isdigit":
			var b bool
			if err := val.Decode(&b); err != nil {
				return nil, curated.Errorf(MalformedUnicodeCheck, key)
			}
			c = UnicodeClassCheck{Class: UnicodeDigit, Expected: b}
		default:
			return nil, curated.Errorf(MalformedUnicodeCheck, key)
		}

		if chosen != nil {
			return nil, curated.Errorf(MalformedUnicodeCheck, "more than one condition")
		}
		chosen = c
	}

	if chosen == nil {
		return nil, curated.Errorf(MalformedUnicodeCheck, "no condition")
	}

	return chosen, nil
}

// describeNode summarises a yaml node for inclusion in an error message.
func describeNode(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		if len(node.Content) == 0 {
			return "empty mapping"
		}
		keys := make([]string, 0, len(node.Content)/2)
		for i := 0; i < len(node.Content); i += 2 {
			keys = append(keys, node.Content[i].Value)
		}
		return fmt.Sprintf("mapping with keys %v", keys)
	case yaml.ScalarNode:
		return node.Value
	case yaml.SequenceNode:
		return "sequence"
	}
	return "unexpected yaml"
}
