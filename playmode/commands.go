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
	"strings"
)

// command is a word typed into the session by whoever is supervising it.
type command int

// List of valid command values.
const (
	commandNone command = iota
	commandQuit
	commandMute
	commandUnmute
)

// the sequence only needs enough history to hold the longest command word
const maxSequenceLength = 64

// commandWatcher accumulates typed letters and digits and watches for
// command words appearing anywhere in the accumulated sequence. a command
// does not have to arrive cleanly: it counts even when it emerges in the
// middle of a mash.
type commandWatcher struct {
	sequence []rune
}

// observe a typed character. Returns the command the character completes, or
// commandNone. Characters outside the basic latin letters and digits are
// ignored.
func (w *commandWatcher) observe(char rune) command {
	switch {
	case char >= 'a' && char <= 'z':
	case char >= 'A' && char <= 'Z':
		char += 'a' - 'A'
	case char >= '0' && char <= '9':
	default:
		return commandNone
	}

	w.sequence = append(w.sequence, char)
	if len(w.sequence) > maxSequenceLength {
		w.sequence = w.sequence[len(w.sequence)-maxSequenceLength:]
	}

	s := string(w.sequence)

	// unmute must be looked for before mute or it could never be typed
	switch {
	case strings.Contains(s, "quit"):
		return commandQuit
	case strings.Contains(s, "unmute"):
		w.sequence = w.sequence[:0]
		return commandUnmute
	case strings.Contains(s, "mute"):
		w.sequence = w.sequence[:0]
		return commandMute
	}

	return commandNone
}
