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

// Package sdlcanvas implements the gui.Canvas interface on an SDL window.
//
// Drawing accumulates on a target texture rather than being rebuilt every
// frame: a glyph or image stays where it landed until the canvas is
// cleared. The Service() function presents the texture and pumps the SDL
// event queue, translating events into the forms defined by the userinput
// package.
package sdlcanvas

import (
	"fmt"
	"io"
	"time"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/gui/fonts"
	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/random"
	"github.com/porridge/bambam/version"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// the caption is always visible, even in the middle of the most enthusiastic
// mashing, so that a returning adult knows how to get out.
const caption = "Commands: quit, mute, unmute"

const (
	letterPointSize  = 256
	captionPointSize = 20
	frameRate        = 60
)

// Spec is the fixed configuration of a Canvas, decided at creation.
type Spec struct {
	// run in a window rather than taking over the whole display. input is
	// only grabbed when the canvas covers the display
	Windowed bool

	// use the dark colour scheme
	Dark bool

	// path of the TTF font to draw with. the empty string means search the
	// system for a suitable face
	Font string
}

// Canvas implements the gui.Canvas interface on an SDL window.
type Canvas struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the accumulation texture all drawing lands on. the renderer's target
	// is this texture at all times except for the present step in Service()
	target *sdl.Texture

	width  int32
	height int32

	letterFont  *ttf.Font
	captionFont *ttf.Font

	scheme scheme
	rnd    *random.Random

	// cache of image textures, keyed by file path
	textures map[string]*sdl.Texture

	// a key down event is held back until its text input event has been
	// seen. see the commentary in service.go
	pending      pendingKey
	pendingValid bool

	joysticks []*sdl.Joystick

	created time.Time
	lmtr    *limiter
}

// Create is the preferred method of initialisation for the Canvas type.
func Create(spec Spec) (*Canvas, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	cv := &Canvas{
		textures: make(map[string]*sdl.Texture),
		rnd:      random.NewRandom(),
		created:  time.Now(),
		lmtr:     newLimiter(frameRate),
	}

	if spec.Dark {
		cv.scheme = darkScheme
	} else {
		cv.scheme = lightScheme
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	w := mode.W
	h := mode.H
	flags := uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	if spec.Windowed {
		w = int32(float32(mode.W) * 0.80)
		h = int32(float32(mode.H) * 0.80)
		flags = 0
	}

	cv.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, flags)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	cv.renderer, err = sdl.CreateRenderer(cv.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	cv.width, cv.height, err = cv.renderer.GetOutputSize()
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}
	logger.Logf("sdlcanvas", "canvas: %dx%d", cv.width, cv.height)

	cv.target, err = cv.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET, cv.width, cv.height)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	_ = cv.renderer.SetRenderTarget(cv.target)
	_ = cv.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	fontPath, err := fonts.Find(spec.Font)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, err
	}
	logger.Logf("sdlcanvas", "font: %s", fontPath)

	cv.letterFont, err = ttf.OpenFont(fontPath, letterPointSize)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	cv.captionFont, err = ttf.OpenFont(fontPath, captionPointSize)
	if err != nil {
		cv.Destroy(io.Discard)
		return nil, curated.Errorf("sdlcanvas: %v", err)
	}

	// keep the input to ourselves. a mashed modifier combination must not
	// reach the window manager
	if !spec.Windowed {
		sdl.SetHint(sdl.HINT_GRAB_KEYBOARD, "1")
		cv.window.SetGrab(true)
	}

	// open the joysticks that are already attached. later attachments are
	// handled in Service()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		cv.openJoystick(i)
	}

	cv.Clear()

	return cv, nil
}

func (cv *Canvas) openJoystick(idx int) {
	joy := sdl.JoystickOpen(idx)
	if joy != nil && joy.Attached() {
		logger.Logf("sdlcanvas", "joystick: %s", joy.Name())
		cv.joysticks = append(cv.joysticks, joy)
	}
}

// Clear implements the gui.Canvas interface.
func (cv *Canvas) Clear() {
	bg := cv.scheme.background
	_ = cv.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	_ = cv.renderer.Clear()
	cv.drawCaption()
}

func (cv *Canvas) drawCaption() {
	surf, err := cv.captionFont.RenderUTF8Blended(caption, cv.scheme.text)
	if err != nil {
		logger.Logf("sdlcanvas", "caption: %v", err)
		return
	}
	defer surf.Free()

	tex, err := cv.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		logger.Logf("sdlcanvas", "caption: %v", err)
		return
	}
	defer tex.Destroy()

	_ = cv.renderer.Copy(tex, nil, &sdl.Rect{X: 15, Y: 10, W: surf.W, H: surf.H})
}

// Destroy implements the gui.Canvas interface.
func (cv *Canvas) Destroy(output io.Writer) {
	for _, tex := range cv.textures {
		_ = tex.Destroy()
	}
	cv.textures = nil

	if cv.letterFont != nil {
		cv.letterFont.Close()
		cv.letterFont = nil
	}
	if cv.captionFont != nil {
		cv.captionFont.Close()
		cv.captionFont = nil
	}

	for _, joy := range cv.joysticks {
		joy.Close()
	}
	cv.joysticks = nil

	if cv.target != nil {
		_ = cv.target.Destroy()
		cv.target = nil
	}

	if cv.renderer != nil {
		if err := cv.renderer.Destroy(); err != nil {
			fmt.Fprintf(output, "error destroying renderer: %v\n", err)
		}
		cv.renderer = nil
	}

	if cv.window != nil {
		if err := cv.window.Destroy(); err != nil {
			fmt.Fprintf(output, "error destroying window: %v\n", err)
		}
		cv.window = nil
	}

	ttf.Quit()
	sdl.Quit()
}
