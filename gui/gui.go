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

// Package gui defines the interfaces between a play session and the
// windowing environment. The interfaces are deliberately narrow. A session
// asks for a glyph, an image or a dot to appear and the canvas decides
// where and exactly how, which keeps the session logic free of any
// windowing detail and very easy to test.
//
// The concrete implementations live in the sdlcanvas and sdlaudio
// packages.
package gui

import (
	"io"

	"github.com/porridge/bambam/userinput"
)

// Canvas is the surface a play session draws on. Drawing accumulates: a
// glyph stays where it was put until the next Clear().
type Canvas interface {
	// Service the canvas. Pending input events are translated and
	// forwarded to the handler and the accumulated drawing is presented.
	// Service must be called often, ideally at the display refresh rate.
	//
	// Returns true if the windowing environment has asked for the
	// application to quit.
	Service(handler userinput.HandleInput) bool

	// Clear the canvas to the background colour, leaving only the command
	// caption.
	Clear()

	// DrawBanner draws lines of text centred on the canvas. An empty line
	// leaves a gap.
	DrawBanner(lines []string) error

	// DrawGlyph draws a single large character at a random position, in a
	// random colour from the letter palette.
	DrawGlyph(char rune) error

	// DrawImage draws an image file at a random position. Images that are
	// too wide for comfort are scaled down.
	DrawImage(path string) error

	// DrawDot draws one dot of the mouse trail centred at the
	// coordinates.
	DrawDot(x int, y int)

	// Destroy the canvas. Errors are not returned but printed to the
	// io.Writer.
	Destroy(output io.Writer)
}

// SoundPlayer voices the sound reactions of a play session.
type SoundPlayer interface {
	// Play the sound file. Playing is asynchronous and overlapping sounds
	// mix together.
	Play(path string) error

	// Mute or unmute the player. Muting fades out anything still playing
	// rather than stopping it dead.
	Mute(muted bool)

	// Destroy the player. Errors are not returned but printed to the
	// io.Writer.
	Destroy(output io.Writer)
}
