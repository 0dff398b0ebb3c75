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

package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/gui/fonts"
	"github.com/porridge/bambam/test"
)

func TestFindOverride(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "MyFont.ttf")
	err := os.WriteFile(pth, []byte("not really a font"), 0644)
	test.DemandSuccess(t, err)

	f, err := fonts.Find(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, pth)

	// an override that does not exist is an error, not a prompt to search
	_, err = fonts.Find(filepath.Join(dir, "NoSuchFont.ttf"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fonts.NotFound))

	// a directory is not a font
	_, err = fonts.Find(dir)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fonts.NotFound))
}

func TestFindPreferred(t *testing.T) {
	// the XDG font directory is searched first, so a font planted there
	// wins whatever the host system has installed
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir := filepath.Join(base, "fonts", "truetype")
	err := os.MkdirAll(dir, 0755)
	test.DemandSuccess(t, err)

	pth := filepath.Join(dir, "DejaVuSans.ttf")
	err = os.WriteFile(pth, []byte("not really a font"), 0644)
	test.DemandSuccess(t, err)

	f, err := fonts.Find("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, pth)
}
