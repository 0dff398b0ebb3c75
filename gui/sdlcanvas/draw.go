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
	"time"

	"github.com/porridge/bambam/curated"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// images wider than this are scaled down. a screen-filling image leaves no
// room for anything else to happen
const maxImageWidth = 700

// the radius of a mouse trail dot
const dotRadius = 30

// the vertical distance between lines of a banner
const bannerLineHeight = 30

// place returns a random rectangle of the given size that lies entirely
// inside the canvas, or as close to inside as possible when the content is
// larger than the canvas.
func (cv *Canvas) place(w int32, h int32) sdl.Rect {
	var x, y int32
	if w < cv.width {
		x = int32(cv.rnd.Intn(int(cv.width-w) + 1))
	}
	if h < cv.height {
		y = int32(cv.rnd.Intn(int(cv.height-h) + 1))
	}
	return sdl.Rect{X: x, Y: y, W: w, H: h}
}

// DrawGlyph implements the gui.Canvas interface.
func (cv *Canvas) DrawGlyph(char rune) error {
	col := letterColours[cv.rnd.Intn(len(letterColours))]

	surf, err := cv.letterFont.RenderUTF8Blended(string(char), col)
	if err != nil {
		return curated.Errorf("sdlcanvas: %v", err)
	}
	defer surf.Free()

	tex, err := cv.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return curated.Errorf("sdlcanvas: %v", err)
	}
	defer tex.Destroy()

	dst := cv.place(surf.W, surf.H)
	_ = cv.renderer.Copy(tex, nil, &dst)

	return nil
}

// DrawImage implements the gui.Canvas interface.
func (cv *Canvas) DrawImage(pth string) error {
	tex, ok := cv.textures[pth]
	if !ok {
		surf, err := img.Load(pth)
		if err != nil {
			return curated.Errorf("sdlcanvas: %v", err)
		}

		tex, err = cv.renderer.CreateTextureFromSurface(surf)
		surf.Free()
		if err != nil {
			return curated.Errorf("sdlcanvas: %v", err)
		}

		cv.textures[pth] = tex
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		return curated.Errorf("sdlcanvas: %v", err)
	}

	if w > maxImageWidth {
		h = h * maxImageWidth / w
		w = maxImageWidth
	}

	dst := cv.place(w, h)
	_ = cv.renderer.Copy(tex, nil, &dst)

	return nil
}

// DrawBanner implements the gui.Canvas interface.
func (cv *Canvas) DrawBanner(lines []string) error {
	y := cv.height/2 - int32(len(lines))*bannerLineHeight/2

	for _, line := range lines {
		if line == "" {
			y += bannerLineHeight
			continue
		}

		surf, err := cv.captionFont.RenderUTF8Blended(line, bannerColour)
		if err != nil {
			return curated.Errorf("sdlcanvas: %v", err)
		}

		tex, err := cv.renderer.CreateTextureFromSurface(surf)
		if err != nil {
			surf.Free()
			return curated.Errorf("sdlcanvas: %v", err)
		}

		dst := sdl.Rect{X: (cv.width - surf.W) / 2, Y: y, W: surf.W, H: surf.H}
		_ = cv.renderer.Copy(tex, nil, &dst)

		surf.Free()
		_ = tex.Destroy()

		y += bannerLineHeight
	}

	return nil
}

// DrawDot implements the gui.Canvas interface. The dot colour cycles
// through the hues as time passes, which turns a dragged toddler-fistful of
// mouse into a rainbow.
func (cv *Canvas) DrawDot(x int, y int) {
	hue := time.Since(cv.created).Milliseconds() / 50 % 360
	r, g, b := hueToRGB(float64(hue))
	gfx.FilledCircleRGBA(cv.renderer, int32(x), int32(y), dotRadius, r, g, b, 128)
}
