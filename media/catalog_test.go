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

package media_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/porridge/bambam/curated"
	"github.com/porridge/bambam/extension"
	"github.com/porridge/bambam/logger"
	"github.com/porridge/bambam/media"
	"github.com/porridge/bambam/test"
)

// writeWAV writes a small but entirely valid wav file.
func writeWAV(t *testing.T, pth string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(pth), 0755)
	test.DemandSuccess(t, err)

	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           make([]int, 128),
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)

	err = enc.Close()
	test.DemandSuccess(t, err)
}

// writeFile writes arbitrary bytes, creating parent directories as needed.
func writeFile(t *testing.T, pth string, b []byte) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(pth), 0755)
	test.DemandSuccess(t, err)

	err = os.WriteFile(pth, b, 0644)
	test.DemandSuccess(t, err)
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()

	writeWAV(t, filepath.Join(dir, "sounds", "giggle.wav"))
	writeFile(t, filepath.Join(dir, "sounds", "deep", "pop.ogg"), []byte("OggS"))
	writeFile(t, filepath.Join(dir, "images", "cat.gif"), []byte("GIF89a"))
	writeFile(t, filepath.Join(dir, "images", "dog.jpg"), []byte{0xff, 0xd8})
	writeFile(t, filepath.Join(dir, "README.txt"), []byte("not media"))

	cat := media.NewCatalog([]string{dir}, nil, nil)

	sounds := cat.List(extension.CategorySound)
	test.DemandEquality(t, len(sounds), 2)
	test.ExpectEquality(t, sounds[0], filepath.Join(dir, "sounds", "deep", "pop.ogg"))
	test.ExpectEquality(t, sounds[1], filepath.Join(dir, "sounds", "giggle.wav"))

	images := cat.List(extension.CategoryImage)
	test.DemandEquality(t, len(images), 2)
	test.ExpectEquality(t, images[0], filepath.Join(dir, "images", "cat.gif"))
	test.ExpectEquality(t, images[1], filepath.Join(dir, "images", "dog.jpg"))
}

func TestCatalogMissingDirectory(t *testing.T) {
	cat := media.NewCatalog([]string{filepath.Join(t.TempDir(), "nothing", "here")}, nil, nil)
	test.ExpectEquality(t, len(cat.List(extension.CategorySound)), 0)
	test.ExpectEquality(t, len(cat.List(extension.CategoryImage)), 0)
}

func TestCatalogMerging(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeWAV(t, filepath.Join(dirA, "a.wav"))
	writeWAV(t, filepath.Join(dirB, "b.wav"))

	cat := media.NewCatalog([]string{dirA, dirB}, nil, nil)
	test.ExpectEquality(t, len(cat.List(extension.CategorySound)), 2)
}

func TestBlacklist(t *testing.T) {
	bl, err := media.NewBlacklist("pop*.ogg, *.jpg")
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "giggle.wav"))
	writeFile(t, filepath.Join(dir, "pop.ogg"), []byte("OggS"))
	writeFile(t, filepath.Join(dir, "cat.gif"), []byte("GIF89a"))
	writeFile(t, filepath.Join(dir, "dog.jpg"), []byte{0xff, 0xd8})

	cat := media.NewCatalog([]string{dir}, bl, bl)

	sounds := cat.List(extension.CategorySound)
	test.DemandEquality(t, len(sounds), 1)
	test.ExpectEquality(t, sounds[0], filepath.Join(dir, "giggle.wav"))

	images := cat.List(extension.CategoryImage)
	test.DemandEquality(t, len(images), 1)
	test.ExpectEquality(t, images[0], filepath.Join(dir, "cat.gif"))
}

func TestBlacklistParsing(t *testing.T) {
	bl, err := media.NewBlacklist("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(bl), 0)

	bl, err = media.NewBlacklist("a.wav,, b.wav ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(bl), 2)

	_, err = media.NewBlacklist("[")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, media.InvalidPattern))
}

func TestPreflight(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "good.wav"))
	writeFile(t, filepath.Join(dir, "bad.wav"), []byte("not audio at all"))
	writeFile(t, filepath.Join(dir, "bad.mp3"), []byte("nor is this"))

	cat := media.NewCatalog([]string{dir}, nil, nil)

	sounds := cat.List(extension.CategorySound)
	test.DemandEquality(t, len(sounds), 1)
	test.ExpectEquality(t, sounds[0], filepath.Join(dir, "good.wav"))

	// the rejects should have been logged
	w := &test.CompareWriter{}
	logger.Tail(w, 2)
	test.ExpectSuccess(t, w.Contains("skipping"))
}
