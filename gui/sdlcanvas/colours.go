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

package sdlcanvas

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// scheme collects the colours that depend on the background choice.
type scheme struct {
	background sdl.Color
	text       sdl.Color
}

var lightScheme = scheme{
	background: sdl.Color{R: 250, G: 250, B: 250, A: 255},
	text:       sdl.Color{R: 0, G: 0, B: 0, A: 255},
}

var darkScheme = scheme{
	background: sdl.Color{R: 0, G: 0, B: 0, A: 255},
	text:       sdl.Color{R: 250, G: 250, B: 250, A: 255},
}

// the colour of banner text. visible against either background.
var bannerColour = sdl.Color{R: 0, G: 0, B: 255, A: 255}

// the colours a glyph can be drawn in. strong saturated colours that read
// well against either background.
var letterColours = []sdl.Color{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 128, A: 255},
	{R: 0, G: 0, B: 128, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 128, B: 0, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

// hueToRGB converts a hue in degrees to RGB, with saturation and value both
// at full.
func hueToRGB(hue float64) (uint8, uint8, uint8) {
	hp := math.Mod(hue, 360) / 60
	x := 1 - math.Abs(math.Mod(hp, 2)-1)

	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = 1, x, 0
	case 1:
		r, g, b = x, 1, 0
	case 2:
		r, g, b = 0, 1, x
	case 3:
		r, g, b = 0, x, 1
	case 4:
		r, g, b = x, 0, 1
	case 5:
		r, g, b = 1, 0, x
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
