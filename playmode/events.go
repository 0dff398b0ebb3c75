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
	"fmt"

	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/gui"
	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/random"
	"github.com/porridge/bambam/userinput"
	"github.com/porridge/bambam/version"
)

type playmode struct {
	canvas gui.Canvas
	audio  gui.SoundPlayer

	// the media for built-in reactions and for the extension's random rules
	catalog extension.MediaIndex

	// nil when no extension is selected
	router *extension.Router

	rnd *random.Random

	uppercase     bool
	deterministic bool

	muted    bool
	commands commandWatcher

	// the welcome banner is showing. the first key or button dismisses it
	// without producing a reaction
	welcome bool

	mouseDown bool

	// the session has been asked to end
	done bool
}

// HandleKeyboard implements the userinput.HandleInput interface.
func (pl *playmode) HandleKeyboard(ev userinput.EventKeyboard) error {
	if !ev.Down || ev.Repeat {
		return nil
	}

	// keys chorded with a modifier are swallowed whole. a toddler cannot
	// manage ctrl-q but a desktop environment reacting to one is the end of
	// the session
	if ev.Mod == userinput.KeyModCtrl || ev.Mod == userinput.KeyModAlt {
		return nil
	}

	if pl.welcome {
		pl.dismissWelcome()
		return nil
	}

	switch pl.commands.observe(ev.Char) {
	case commandQuit:
		pl.done = true
		return nil
	case commandMute:
		pl.setMuted(true)
	case commandUnmute:
		pl.setMuted(false)
	}

	// the key that completes a mute or unmute command is still an ordinary
	// key press as far as the reaction is concerned
	pl.maybeClear()
	pl.react(extension.Event{Type: extension.EventKeyDown, Char: ev.Char}, ev.Key)

	return nil
}

// HandleGamepadButton implements the userinput.HandleInput interface.
func (pl *playmode) HandleGamepadButton(ev userinput.EventGamepadButton) error {
	if !ev.Down {
		return nil
	}

	if pl.welcome {
		pl.dismissWelcome()
		return nil
	}

	pl.maybeClear()
	pl.react(extension.Event{Type: extension.EventGamepadButton}, "")

	return nil
}

// HandleMouseButton implements the userinput.HandleInput interface.
func (pl *playmode) HandleMouseButton(ev userinput.EventMouseButton) error {
	if pl.welcome {
		return nil
	}

	pl.mouseDown = ev.Down
	if ev.Down {
		pl.canvas.DrawDot(ev.X, ev.Y)
	}

	return nil
}

// HandleMouseMotion implements the userinput.HandleInput interface.
func (pl *playmode) HandleMouseMotion(ev userinput.EventMouseMotion) error {
	if pl.welcome || !pl.mouseDown {
		return nil
	}

	pl.canvas.DrawDot(ev.X, ev.Y)

	return nil
}

// maybeClear clears the canvas roughly once every eleven events. often
// enough that the canvas does not silt up entirely, rare enough that a good
// pile of letters can accumulate first.
func (pl *playmode) maybeClear() {
	if pl.rnd.Intn(11) == 1 {
		pl.canvas.Clear()
	}
}

func (pl *playmode) setMuted(muted bool) {
	pl.muted = muted
	pl.audio.Mute(muted)
}

func (pl *playmode) showWelcome(extensionName string, soundless bool) {
	lines := []string{
		version.Title(),
		"",
		"Commands: quit, mute, unmute",
		"Press any key to begin",
	}
	if extensionName != "" {
		lines = append(lines, fmt.Sprintf("extension: %s", extensionName))
	}
	if soundless {
		lines = append(lines, "", "Warning, sound disabled.")
	}

	if err := pl.canvas.DrawBanner(lines); err != nil {
		logger.Logf("playmode", "welcome: %v", err)
	}
	pl.welcome = true
}

func (pl *playmode) dismissWelcome() {
	pl.welcome = false
	pl.canvas.Clear()
}
