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

// Package sdlaudio plays the sound files of a play session through
// SDL_mixer. Sounds triggered in quick succession, as they will be when
// small fists hit several keys at once, simply mix together on separate
// channels.
package sdlaudio

import (
	"io"

	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/logger"

	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

// the mixer is opened at CD quality, which is also the format the wav files
// in the wild overwhelmingly use.
const (
	mixFrequency = 44100
	mixChannels  = 2
	mixChunkSize = 1024
)

// how long a fade takes when the player is muted mid-sound.
const fadeOutMilliseconds = 1000

// Player voices sound reactions through SDL_mixer.
//
// Player implements the gui.SoundPlayer interface.
type Player struct {
	chunks map[string]*mix.Chunk
	muted  bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer() (*Player, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	if err := mix.OpenAudio(mixFrequency, mix.DEFAULT_FORMAT, mixChannels, mixChunkSize); err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf("sdlaudio", "mixer open: %dHz, %d channels", mixFrequency, mixChannels)

	return &Player{
		chunks: make(map[string]*mix.Chunk),
	}, nil
}

// Play implements the gui.SoundPlayer interface. Decoded sounds are cached
// so a favourite key does not hit the disk on every strike.
func (pl *Player) Play(pth string) error {
	if pl.muted {
		return nil
	}

	chk, ok := pl.chunks[pth]
	if !ok {
		var err error
		chk, err = mix.LoadWAV(pth)
		if err != nil {
			return curated.Errorf("sdlaudio: %v: %v", pth, err)
		}
		pl.chunks[pth] = chk
	}

	if _, err := chk.Play(-1, 0); err != nil {
		// not an error worth stopping for. the most likely cause is that
		// every mixing channel is busy
		logger.Logf("sdlaudio", "%v", err)
	}

	return nil
}

// Mute implements the gui.SoundPlayer interface.
func (pl *Player) Mute(muted bool) {
	pl.muted = muted
	if muted {
		mix.FadeOutChannel(-1, fadeOutMilliseconds)
	}
}

// Destroy implements the gui.SoundPlayer interface.
func (pl *Player) Destroy(_ io.Writer) {
	for _, chk := range pl.chunks {
		chk.Free()
	}
	pl.chunks = nil

	mix.CloseAudio()
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
