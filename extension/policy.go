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
	"os"
	"path/filepath"
	"strings"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/random"
)

// Sentinel errors returned when dispatching a matched rule. Unlike the
// loading errors these relate to a single event. The caller should log the
// error, react in whatever default way it sees fit and carry on.
const (
	NoMediaAvailable  = "no %v media available"
	MissingArgument   = "missing argument for %v policy"
	MediaNotFound     = "media file not found: %v"
	UnsupportedPolicy = "policy %v not valid for %v rules"
)

// Policy says how a matched rule chooses the media for its reaction.
type Policy string

// List of policies recognised in event maps. Not every policy is valid for
// every category: font presumes something that can be drawn with the letter
// font and named_file presumes a sound effect.
const (
	PolicyFont      Policy = "font"
	PolicyRandom    Policy = "random"
	PolicyNamedFile Policy = "named_file"
)

// allowed returns true if the policy can appear in the rule list for the
// given category.
func (p Policy) allowed(cat Category) bool {
	switch cat {
	case CategoryImage:
		return p == PolicyFont || p == PolicyRandom
	case CategorySound:
		return p == PolicyRandom || p == PolicyNamedFile
	}
	return false
}

// Media is a reference to the media a routed event resolved to. The
// concrete type is either MediaFile or MediaGlyph.
type Media interface{}

// MediaFile is a Media value naming a file on disk.
type MediaFile struct {
	Path string
}

// MediaGlyph is a Media value instructing the caller to draw the event's
// character with the letter font.
type MediaGlyph struct {
	Char rune
}

// MediaIndex enumerates the media files available to the random policy. The
// order of the returned list must be stable between calls.
type MediaIndex interface {
	List(cat Category) []string
}

// Dispatcher resolves the policy of a matched rule into a Media value.
type Dispatcher struct {
	// root directory of the extension the event map came from. named_file
	// arguments are resolved relative to this directory
	Dir string

	// the media available to the random policy. may be nil, in which case
	// the random policy never finds anything
	Media MediaIndex

	Rand *random.Random
}

// NewDispatcher is the preferred method of initialisation for the
// Dispatcher type.
func NewDispatcher(dir string, media MediaIndex, rnd *random.Random) *Dispatcher {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &Dispatcher{
		Dir:   dir,
		Media: media,
		Rand:  rnd,
	}
}

// Dispatch resolves a rule that has already matched the event. The category
// is rechecked against the policy so that a Dispatcher driven directly,
// rather than through a Router and a loaded event map, still refuses the
// combinations an event map could never express.
func (dsp *Dispatcher) Dispatch(cat Category, rule Rule, ev Event) (Media, error) {
	if !rule.Policy.allowed(cat) {
		return nil, curated.Errorf(UnsupportedPolicy, rule.Policy, cat)
	}

	switch rule.Policy {
	case PolicyFont:
		if ev.Char == 0 {
			return nil, curated.Errorf(NoMediaAvailable, cat)
		}
		return MediaGlyph{Char: ev.Char}, nil

	case PolicyRandom:
		var l []string
		if dsp.Media != nil {
			l = dsp.Media.List(cat)
		}
		if len(l) == 0 {
			return nil, curated.Errorf(NoMediaAvailable, cat)
		}
		return MediaFile{Path: l[dsp.Rand.Intn(len(l))]}, nil

	case PolicyNamedFile:
		if len(rule.Args) == 0 {
			return nil, curated.Errorf(MissingArgument, rule.Policy)
		}
		pth, err := dsp.resolve(rule.Args[0])
		if err != nil {
			return nil, err
		}
		return MediaFile{Path: pth}, nil
	}

	return nil, curated.Errorf(UnsupportedPolicy, rule.Policy, cat)
}

// resolve a named_file argument against the extension directory. arguments
// that try to escape the directory are treated the same as arguments naming
// a file that does not exist.
func (dsp *Dispatcher) resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", curated.Errorf(MediaNotFound, name)
	}

	pth := filepath.Join(dsp.Dir, name)

	prefix := filepath.Clean(dsp.Dir) + string(filepath.Separator)
	if !strings.HasPrefix(pth, prefix) {
		return "", curated.Errorf(MediaNotFound, name)
	}

	fi, err := os.Stat(pth)
	if err != nil || fi.IsDir() {
		return "", curated.Errorf(MediaNotFound, name)
	}

	return pth, nil
}
