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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// preflightSound checks that a sound file will decode before it is allowed
// into the catalog. Formats without a check here are accepted as they are.
func preflightSound(pth string) error {
	switch strings.ToLower(filepath.Ext(pth)) {
	case ".wav":
		return preflightWAV(pth)
	case ".mp3":
		return preflightMP3(pth)
	}
	return nil
}

func preflightWAV(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return err
	}
	if !dec.IsValidFile() {
		return fmt.Errorf("not a valid wav file")
	}
	if dec.SampleRate == 0 {
		return fmt.Errorf("wav file with no sample rate")
	}

	return nil
}

func preflightMP3(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := mp3.NewDecoder(f); err != nil {
		return err
	}

	return nil
}
