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
	"sort"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/resources"
)

// EventMapFilename is the name of the rule file found at the root of every
// extension directory. A directory without this file is not an extension.
const EventMapFilename = "event_map.yaml"

// Sentinel error returned by Find and Load when the named extension cannot
// be found in any of the search directories.
const NotFound = "extension not found: %v"

// Extension is an installed extension whose event map has been loaded
// successfully.
type Extension struct {
	Name string

	// the directory the extension was found in. named_file arguments and
	// the extension's own media are resolved relative to this directory
	Dir string

	Map *EventMap
}

// Find returns the directory of the named extension. The search directories
// are tried in order and the first directory containing an event map wins.
func Find(name string) (string, error) {
	// names are names, not paths. "." and ".." survive the Base test but
	// would escape the search directories
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", curated.Errorf(NotFound, name)
	}

	for _, base := range resources.ExtensionDirs() {
		d := filepath.Join(base, name)
		fi, err := os.Stat(filepath.Join(d, EventMapFilename))
		if err == nil && !fi.IsDir() {
			return d, nil
		}
	}

	return "", curated.Errorf(NotFound, name)
}

// Load finds the named extension and loads its event map.
func Load(name string) (*Extension, error) {
	d, err := Find(name)
	if err != nil {
		return nil, err
	}

	m, err := LoadEventMap(filepath.Join(d, EventMapFilename))
	if err != nil {
		return nil, curated.Errorf("extension %v: %v", name, err)
	}

	return &Extension{
		Name: name,
		Dir:  d,
		Map:  m,
	}, nil
}

// Info describes an installed extension as found by the List function. Err
// is non-nil if the extension is present but its event map will not load.
type Info struct {
	Name string
	Dir  string
	Err  error
}

// List enumerates the extensions installed in the search directories,
// sorted by name. An extension in an earlier search directory shadows an
// extension of the same name in a later one.
func List() []Info {
	seen := make(map[string]bool)
	list := make([]Info, 0)

	for _, base := range resources.ExtensionDirs() {
		ents, err := os.ReadDir(base)
		if err != nil {
			continue
		}

		for _, ent := range ents {
			if seen[ent.Name()] {
				continue
			}

			d := filepath.Join(base, ent.Name())
			mp := filepath.Join(d, EventMapFilename)
			if fi, err := os.Stat(mp); err != nil || fi.IsDir() {
				continue
			}
			seen[ent.Name()] = true

			inf := Info{Name: ent.Name(), Dir: d}
			if _, err := LoadEventMap(mp); err != nil {
				inf.Err = err
			}
			list = append(list, inf)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}
