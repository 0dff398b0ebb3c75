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

// Package fonts locates a TTF font for the canvas to draw letters with.
// Nothing is bundled with the application. A font is found among the fonts
// the system already has, with a short list of well known faces tried in
// order of preference.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/porridge/bambam/curated"
)

// Sentinel error returned by Find when no usable font can be located.
const NotFound = "no usable font found (looked for %v)"

// the well known faces, best first. DejaVu is near ubiquitous on linux
// desktops and all three faces have glyph coverage far beyond ascii.
var preferred = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"FreeSans.ttf",
}

// the directories fonts are commonly installed in, most specific first.
func roots() []string {
	var r []string

	if x := os.Getenv("XDG_DATA_HOME"); x != "" {
		r = append(r, filepath.Join(x, "fonts"))
	} else if home, err := os.UserHomeDir(); err == nil {
		r = append(r, filepath.Join(home, ".local", "share", "fonts"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		r = append(r, filepath.Join(home, ".fonts"))
	}

	r = append(r, "/usr/local/share/fonts", "/usr/share/fonts")

	return r
}

// Find returns the path of a TTF font to draw with. If override is not
// empty it names the font file to use and nothing else is considered.
func Find(override string) (string, error) {
	if override != "" {
		fi, err := os.Stat(override)
		if err != nil || fi.IsDir() {
			return "", curated.Errorf(NotFound, override)
		}
		return override, nil
	}

	// walk every root once, remembering the first occurrence of each
	// candidate face
	found := make(map[string]string)

	for _, root := range roots() {
		_ = filepath.WalkDir(root, func(pth string, ent fs.DirEntry, err error) error {
			if err != nil || ent.IsDir() {
				return nil
			}
			name := ent.Name()
			if _, ok := found[name]; !ok {
				for _, p := range preferred {
					if name == p {
						found[name] = pth
						break
					}
				}
			}
			return nil
		})
	}

	for _, p := range preferred {
		if pth, ok := found[p]; ok {
			return pth, nil
		}
	}

	return "", curated.Errorf(NotFound, strings.Join(preferred, ", "))
}
