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

package userinput

// Event represents the user input sent from a GUI. The type is a marker for
// the event structs defined in this package.
type Event interface{}

// KeyMod identifies a keyboard modifier held during a key press.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is the data that accompanies keyboard events.
type EventKeyboard struct {
	// the name of the key. eg. "A", "Space", "Left"
	Key string

	// the character produced by the key press. zero if the key produces no
	// text, as is the case for function keys or gamepad-like cursor keys
	Char rune

	Mod  KeyMod
	Down bool

	// true if the event is the result of keyboard auto-repeat
	Repeat bool
}

// MouseButton identifies the mouse button.
type MouseButton int

// list of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is the data that accompanies mouse button events.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X      int
	Y      int
}

// EventMouseMotion is the data that accompanies mouse motion events.
type EventMouseMotion struct {
	X int
	Y int

	// true if a mouse button is held down during the motion
	ButtonDown bool
}

// EventGamepadButton is the data that accompanies gamepad button events.
type EventGamepadButton struct {
	// instance ID of the gamepad/joystick the button belongs to
	ID int

	// button index as reported by the device
	Button int

	Down bool
}

// EventQuit is sent when a quit request is received from the windowing
// environment.
type EventQuit struct{}
