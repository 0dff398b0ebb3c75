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
	"unicode/utf8"

	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// pendingKey is a key down event waiting for the character that belongs to
// it. SDL reports the character of a key press as a separate text input
// event that follows the key down event in the queue, so a key down is held
// back until either its text input arrives or some other event proves that
// no text is coming.
type pendingKey struct {
	ev userinput.EventKeyboard
}

// Service implements the gui.Canvas interface.
func (cv *Canvas) Service(handler userinput.HandleInput) bool {
	quit := false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			cv.flushPendingKey(handler)
			quit = cv.forward(handler, userinput.EventQuit{}) || quit

		case *sdl.KeyboardEvent:
			cv.flushPendingKey(handler)
			if ev.Type == sdl.KEYDOWN {
				cv.pending = pendingKey{
					ev: userinput.EventKeyboard{
						Key:    sdl.GetKeyName(ev.Keysym.Sym),
						Mod:    translateMod(ev.Keysym.Mod),
						Down:   true,
						Repeat: ev.Repeat != 0,
					},
				}
				cv.pendingValid = true
			}

		case *sdl.TextInputEvent:
			if cv.pendingValid {
				if r := firstRune(ev.Text[:]); r != 0 {
					cv.pending.ev.Char = r
				}
				cv.flushPendingKey(handler)
			}

		case *sdl.MouseButtonEvent:
			cv.flushPendingKey(handler)

			var button userinput.MouseButton
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				button = userinput.MouseButtonLeft
			case sdl.BUTTON_MIDDLE:
				button = userinput.MouseButtonMiddle
			case sdl.BUTTON_RIGHT:
				button = userinput.MouseButtonRight
			}

			cv.forward(handler, userinput.EventMouseButton{
				Button: button,
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
				X:      int(ev.X),
				Y:      int(ev.Y),
			})

		case *sdl.MouseMotionEvent:
			cv.forward(handler, userinput.EventMouseMotion{
				X:          int(ev.X),
				Y:          int(ev.Y),
				ButtonDown: ev.State != 0,
			})

		case *sdl.JoyButtonEvent:
			cv.flushPendingKey(handler)
			cv.forward(handler, userinput.EventGamepadButton{
				ID:     int(ev.Which),
				Button: int(ev.Button),
				Down:   ev.State == sdl.PRESSED,
			})

		case *sdl.JoyDeviceAddedEvent:
			cv.openJoystick(int(ev.Which))
		}
	}

	// a key down with no text input behind it in the queue is forwarded
	// without a character
	cv.flushPendingKey(handler)

	// present the accumulated drawing
	_ = cv.renderer.SetRenderTarget(nil)
	_ = cv.renderer.Copy(cv.target, nil, nil)
	cv.renderer.Present()
	_ = cv.renderer.SetRenderTarget(cv.target)

	cv.lmtr.wait()

	return quit
}

func (cv *Canvas) flushPendingKey(handler userinput.HandleInput) {
	if !cv.pendingValid {
		return
	}
	cv.pendingValid = false
	cv.forward(handler, cv.pending.ev)
}

func (cv *Canvas) forward(handler userinput.HandleInput, ev userinput.Event) bool {
	quit, err := userinput.HandleUserInput(ev, handler)
	if err != nil {
		logger.Logf("sdlcanvas", "%v", err)
	}
	return quit
}

func translateMod(mod uint16) userinput.KeyMod {
	if mod&sdl.KMOD_SHIFT != 0 {
		return userinput.KeyModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		return userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		return userinput.KeyModAlt
	}
	return userinput.KeyModNone
}

// firstRune decodes the first character of a NUL terminated text input
// buffer. Returns zero if the buffer holds no text.
func firstRune(b []byte) rune {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	if n == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(b[:n])
	if r == utf8.RuneError {
		return 0
	}
	return r
}
