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

// Package playmode is the play session. It reacts to every key press and
// gamepad button with a letter, an image or a sound; and to the mouse with a
// trail of coloured dots. The reactions come from the active extension when
// one is selected and from the built-in media catalogue otherwise.
//
// The session ends when the word "quit" is typed, on an interrupt signal or
// when the windowing environment asks for the application to close.
package playmode

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/gui"
	"github.com/porridge/bambam/gui/sdlaudio"
	"github.com/porridge/bambam/gui/sdlcanvas"
	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/media"
	"github.com/porridge/bambam/random"
	"github.com/porridge/bambam/resources"
)

// Options summarises the command line choices that shape a play session.
type Options struct {
	// name of the extension to play with. empty means no extension: every
	// reaction is a built-in one
	Extension string

	// present letters in upper case
	Uppercase bool

	// black background rather than the default near-white
	Dark bool

	// start the session muted
	Mute bool

	// the same key always plays the same sound
	Deterministic bool

	// comma separated filename patterns to exclude from the media catalogue
	SoundBlacklist string
	ImageBlacklist string

	// run in a window rather than taking over the display
	Windowed bool

	// path to a TTF font to use instead of the discovered system font
	Font string
}

// Play runs a play session until the session is asked to end.
func Play(opts Options) error {
	soundBlacklist, err := media.NewBlacklist(opts.SoundBlacklist)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	imageBlacklist, err := media.NewBlacklist(opts.ImageBlacklist)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	catalog := media.NewCatalog(resources.DataDirs(), soundBlacklist, imageBlacklist)

	// the extension's random rules draw from the same catalogue as the
	// built-in reactions. the extension directory itself is only used to
	// resolve named files
	var router *extension.Router
	var extensionName string
	if opts.Extension != "" {
		ext, err := extension.Load(opts.Extension)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		router = &extension.Router{
			Map:      ext.Map,
			Dispatch: extension.NewDispatcher(ext.Dir, catalog, nil),
		}
		extensionName = ext.Name
		logger.Logf("playmode", "extension %s loaded from %s", ext.Name, ext.Dir)
	}

	canvas, err := sdlcanvas.Create(sdlcanvas.Spec{
		Windowed: opts.Windowed,
		Dark:     opts.Dark,
		Font:     opts.Font,
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer canvas.Destroy(os.Stderr)

	// a session without sound is still a session
	var audio gui.SoundPlayer
	audio, err = sdlaudio.NewPlayer()
	if err != nil {
		logger.Logf("playmode", "%v", err)
		audio = silentPlayer{}
	}
	defer audio.Destroy(os.Stderr)

	_, soundless := audio.(silentPlayer)
	if soundless {
		fmt.Fprintln(os.Stderr, "Warning, sound disabled.")
	}

	pl := &playmode{
		canvas:        canvas,
		audio:         audio,
		catalog:       catalog,
		router:        router,
		rnd:           random.NewRandom(),
		uppercase:     opts.Uppercase,
		deterministic: opts.Deterministic,
	}
	pl.setMuted(opts.Mute)
	pl.showWelcome(extensionName, soundless)

	// ctrl-c on the controlling terminal ends the session. the keyboard grab
	// means it cannot be typed from inside the session itself
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !pl.done {
		select {
		case <-intChan:
			pl.done = true
		default:
			if pl.canvas.Service(pl) {
				pl.done = true
			}
		}
	}

	return nil
}

// silentPlayer takes the place of the real sound player when the mixer
// cannot be opened. the session carries on without sound.
type silentPlayer struct{}

// Play implements the gui.SoundPlayer interface.
func (p silentPlayer) Play(path string) error {
	return nil
}

// Mute implements the gui.SoundPlayer interface.
func (p silentPlayer) Mute(muted bool) {
}

// Destroy implements the gui.SoundPlayer interface.
func (p silentPlayer) Destroy(output io.Writer) {
}
