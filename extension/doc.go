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

// Package extension implements the rule engine that decides how the
// application reacts to an input event. An extension is a directory
// containing an event map and, optionally, its own media files. The event
// map is a YAML file describing, for each reaction category, an ordered
// list of rules:
//
//	apiVersion: 0
//	sound:
//	  - check:
//	    - type: KEYDOWN
//	    - unicode:
//	        value: "0"
//	    policy: named_file
//	    args: [zero.wav]
//	  - policy: random
//	image:
//	  - check:
//	    - unicode:
//	        isalpha: true
//	    policy: font
//	  - policy: random
//
// Every rule carries a list of checks and a policy. Event maps are
// interpreted very simply: for each category the rules are tried in the
// order they are written and the first rule whose checks all match the
// event is the rule that fires. The rule's policy then says what media the
// reaction should use. A rule with no checks matches every event, so a
// final check-less rule acts as the category's catch-all.
//
// The two halves of that interpretation are implemented by the Router and
// Dispatcher types. The Router walks the rule lists and the Dispatcher
// resolves a matched rule's policy into a Media value. Routing the two
// categories is entirely independent - an event may well find a sound and
// no image, or vice versa.
//
// Errors from this package are divided into two groups. Errors during
// loading (UnsupportedVersion, UnknownCheck, MalformedUnicodeCheck,
// UnknownPolicy) mean the event map is malformed and the extension cannot
// be used. Errors during routing (NoMatchingRule, NoMediaAvailable,
// MissingArgument, MediaNotFound, UnsupportedPolicy) relate to a single
// event only and the caller is expected to fall back to some default
// reaction and carry on.
package extension
