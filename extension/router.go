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
	"github.com/porridge/bambam/curated"
)

// Sentinel error returned by Route when no rule in the category matches the
// event. Like the dispatch errors it is recoverable.
const NoMatchingRule = "no matching %v rule"

// Router pairs an event map with the dispatcher that resolves its rules.
type Router struct {
	Map      *EventMap
	Dispatch *Dispatcher
}

// Route an event through the rules of a single category. Rules are tried in
// declaration order and the first rule whose checks all match is
// dispatched. Later rules are never considered, even if the dispatch of the
// winning rule fails.
func (rt *Router) Route(cat Category, ev Event) (Media, error) {
	for _, r := range rt.Map.Rules(cat) {
		if r.Match(ev) {
			return rt.Dispatch.Dispatch(cat, r, ev)
		}
	}
	return nil, curated.Errorf(NoMatchingRule, cat)
}

// Reaction is the result of routing one event through both categories.
type Reaction struct {
	Image    Media
	ImageErr error
	Sound    Media
	SoundErr error
}

// RouteAll routes an event through both categories. The categories are
// routed independently: a failure in one has no bearing on the other.
func (rt *Router) RouteAll(ev Event) Reaction {
	var rc Reaction
	rc.Image, rc.ImageErr = rt.Route(CategoryImage, ev)
	rc.Sound, rc.SoundErr = rt.Route(CategorySound, ev)
	return rc
}
