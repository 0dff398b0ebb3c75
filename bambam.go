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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/modalflag"
	"github.com/porridge/bambam/playmode"
	"github.com/porridge/bambam/statsview"
	"github.com/porridge/bambam/version"
)

func main() {
	// SDL requires the window to be created and serviced from the main OS
	// thread. the play session runs entirely on this thread
	runtime.LockOSThread()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "LIST":
		err = list(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	ext := md.AddString("extension", "", "name of the extension to play with")
	uppercase := md.AddBool("uppercase", false, "show upper-case letters")
	dark := md.AddBool("dark", false, "dark background instead of a light one")
	mute := md.AddBool("mute", false, "start with no sound")
	deterministic := md.AddBool("deterministic-sounds", false, "same sound on same key press")
	soundBlacklist := md.AddString("sound_blacklist", "", "comma separated sound filename patterns to never play")
	imageBlacklist := md.AddString("image_blacklist", "", "comma separated image filename patterns to never show")
	windowed := md.AddBool("windowed", false, "run in a window rather than fullscreen")
	font := md.AddString("font", "", "path to a TTF font to use for letters")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, "run the statsview server")

	md.AdditionalHelp(
		`The play session grabs the keyboard and the mouse. Control combinations that
could switch away from the program are ignored; to control the program, type one
of the command words: quit ends the session, mute silences it, unmute restores
sound.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected argument for %s mode: %s", md, md.GetArg(0))
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	return playmode.Play(playmode.Options{
		Extension:      *ext,
		Uppercase:      *uppercase,
		Dark:           *dark,
		Mute:           *mute,
		Deterministic:  *deterministic,
		SoundBlacklist: *soundBlacklist,
		ImageBlacklist: *imageBlacklist,
		Windowed:       *windowed,
		Font:           *font,
	})
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected argument for %s mode: %s", md, md.GetArg(0))
	}

	infos := extension.List()
	if len(infos) == 0 {
		fmt.Println("no extensions installed")
		return nil
	}

	for _, inf := range infos {
		if inf.Err != nil {
			fmt.Printf("%s\t%s\t(unusable: %v)\n", inf.Name, inf.Dir, inf.Err)
		} else {
			fmt.Printf("%s\t%s\n", inf.Name, inf.Dir)
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Println(ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
