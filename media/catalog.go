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

package media

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/logger"
)

// Sentinel error returned by NewBlacklist for patterns that will never
// match anything because they are not valid patterns at all.
const InvalidPattern = "invalid blacklist pattern: %v"

// Blacklist is a list of filename patterns. Files whose base name matches
// any of the patterns are excluded from the catalog.
type Blacklist []string

// NewBlacklist parses a comma separated list of filename patterns. The
// pattern syntax is that of filepath.Match. An empty string is an empty
// blacklist.
func NewBlacklist(s string) (Blacklist, error) {
	var bl Blacklist

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := filepath.Match(p, "x"); err != nil {
			return nil, curated.Errorf(InvalidPattern, p)
		}
		bl = append(bl, p)
	}

	return bl, nil
}

// blocks returns true if the base name matches any pattern in the
// blacklist.
func (bl Blacklist) blocks(base string) bool {
	for _, p := range bl {
		// pattern validity was checked by NewBlacklist
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}

// soundFile and imageFile identify catalogue-worthy files by extension.
func soundFile(base string) bool {
	switch strings.ToLower(filepath.Ext(base)) {
	case ".wav", ".ogg", ".mp3":
		return true
	}
	return false
}

func imageFile(base string) bool {
	switch strings.ToLower(filepath.Ext(base)) {
	case ".gif", ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// Catalog is an index of the media files found in a set of directories.
// Once built a Catalog never changes and the lists it returns are sorted.
//
// Catalog implements the extension.MediaIndex interface.
type Catalog struct {
	sounds []string
	images []string
}

// NewCatalog walks the listed directories and indexes every sound and
// image file found there. Directories that do not exist are quietly
// skipped, as are sound files that fail their decode check.
func NewCatalog(dirs []string, soundBL Blacklist, imageBL Blacklist) *Catalog {
	cat := &Catalog{}

	for _, d := range dirs {
		_ = filepath.WalkDir(d, func(pth string, ent fs.DirEntry, err error) error {
			if err != nil || ent.IsDir() {
				// a missing or unreadable directory is not an error.
				// there is simply nothing there to index
				return nil
			}

			base := ent.Name()

			switch {
			case soundFile(base):
				if soundBL.blocks(base) {
					return nil
				}
				if err := preflightSound(pth); err != nil {
					logger.Logf("media", "skipping %s: %v", pth, err)
					return nil
				}
				cat.sounds = append(cat.sounds, pth)

			case imageFile(base):
				if imageBL.blocks(base) {
					return nil
				}
				cat.images = append(cat.images, pth)
			}

			return nil
		})
	}

	sort.Strings(cat.sounds)
	sort.Strings(cat.images)

	return cat
}

// List implements the extension.MediaIndex interface. The returned slice
// must not be modified.
func (cat *Catalog) List(c extension.Category) []string {
	switch c {
	case extension.CategorySound:
		return cat.sounds
	case extension.CategoryImage:
		return cat.images
	}
	return nil
}
