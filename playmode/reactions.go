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

package playmode

import (
	"unicode"

	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/logger"
)

// react to an event with an image and a sound. the two categories are
// independent: a problem with one never affects the other.
func (pl *playmode) react(ev extension.Event, key string) {
	pl.reactImage(ev)
	pl.reactSound(ev, key)
}

func (pl *playmode) reactImage(ev extension.Event) {
	if pl.router != nil {
		m, err := pl.router.Route(extension.CategoryImage, ev)
		if err == nil {
			pl.draw(m)
			return
		}
		logger.Logf("playmode", "image: %v", err)
	}
	pl.draw(pl.builtinImage(ev))
}

func (pl *playmode) reactSound(ev extension.Event, key string) {
	if pl.muted {
		return
	}

	if pl.router != nil {
		m, err := pl.router.Route(extension.CategorySound, ev)
		if err == nil {
			pl.play(m)
			return
		}
		logger.Logf("playmode", "sound: %v", err)
	}
	pl.play(pl.builtinSound(ev, key))
}

// draw the media on the canvas. a nil media draws nothing.
func (pl *playmode) draw(m extension.Media) {
	switch m := m.(type) {
	case extension.MediaGlyph:
		char := m.Char
		if pl.uppercase {
			char = unicode.ToUpper(char)
		}
		if err := pl.canvas.DrawGlyph(char); err != nil {
			logger.Logf("playmode", "glyph: %v", err)
		}
	case extension.MediaFile:
		if err := pl.canvas.DrawImage(m.Path); err != nil {
			logger.Logf("playmode", "image: %v", err)
		}
	}
}

// play the media. a nil media plays nothing.
func (pl *playmode) play(m extension.Media) {
	if f, ok := m.(extension.MediaFile); ok {
		if err := pl.audio.Play(f.Path); err != nil {
			logger.Logf("playmode", "sound: %v", err)
		}
	}
}

// builtinImage is the image reaction when no extension rule has claimed the
// event: the typed character when there is one to show, a random catalogue
// image otherwise.
func (pl *playmode) builtinImage(ev extension.Event) extension.Media {
	if ev.Type == extension.EventKeyDown && ev.Char != 0 &&
		(unicode.IsLetter(ev.Char) || unicode.IsDigit(ev.Char)) {
		return extension.MediaGlyph{Char: ev.Char}
	}

	l := pl.catalog.List(extension.CategoryImage)
	if len(l) == 0 {
		return nil
	}
	return extension.MediaFile{Path: l[pl.rnd.Intn(len(l))]}
}

// builtinSound is the sound reaction when no extension rule has claimed the
// event.
func (pl *playmode) builtinSound(ev extension.Event, key string) extension.Media {
	l := pl.catalog.List(extension.CategorySound)
	if len(l) == 0 {
		return nil
	}

	if pl.deterministic && ev.Type == extension.EventKeyDown {
		return extension.MediaFile{Path: l[keyIndex(key)%len(l)]}
	}
	return extension.MediaFile{Path: l[pl.rnd.Intn(len(l))]}
}

// keyIndex reduces a key name to a number so that, with deterministic
// sounds selected, the same key always plays the same sound.
func keyIndex(key string) int {
	n := 0
	for _, b := range []byte(key) {
		n += int(b)
	}
	return n
}
