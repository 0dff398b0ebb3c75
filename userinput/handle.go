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

// HandleInput conceptualises the application's response to user input.
type HandleInput interface {
	// HandleKeyboard reacts to a key press or release.
	HandleKeyboard(ev EventKeyboard) error

	// HandleGamepadButton reacts to a gamepad/joystick button.
	HandleGamepadButton(ev EventGamepadButton) error

	// HandleMouseButton reacts to a mouse button press or release.
	HandleMouseButton(ev EventMouseButton) error

	// HandleMouseMotion reacts to mouse movement.
	HandleMouseMotion(ev EventMouseMotion) error
}

// HandleUserInput deciphers the Event and forwards the input to the handler.
// Returns true if event is a Quit event and false otherwise.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	var err error

	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		err = handle.HandleKeyboard(ev)
	case EventGamepadButton:
		err = handle.HandleGamepadButton(ev)
	case EventMouseButton:
		err = handle.HandleMouseButton(ev)
	case EventMouseMotion:
		err = handle.HandleMouseMotion(ev)
	default:
	}

	return false, err
}
