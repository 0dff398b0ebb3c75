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

package resources

import (
	"os"
	"path/filepath"

	"github.com/porridge/bambam/version"
)

// name of the directory under each base that holds the built-in reaction
// media.
const dataDir = "data"

// name of the directory under each base that holds installed extensions.
const extensionDir = "extensions"

// InstallBase returns the directory the running executable lives in, with
// symlinks resolved. Media and extensions shipped alongside the binary are
// found relative to this directory.
func InstallBase() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// UserBase returns the per-user resource directory. The XDG_DATA_HOME
// environment variable is respected, falling back to the XDG default of
// ~/.local/share.
func UserBase() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, version.ResourceName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", version.ResourceName), nil
}

// SystemBase returns the system-wide resource directory.
//
// note: this is a UNIX thing. there's no real reason why any other OS should
// implement this.
func SystemBase() string {
	return filepath.Join("/usr", "share", version.ResourceName)
}

// Bases returns the candidate resource base directories in search order:
// installation directory, user directory, system directory. Bases that
// cannot be determined are left out. The directories are not checked for
// existence.
func Bases() []string {
	b := make([]string, 0, 3)

	if d, err := InstallBase(); err == nil {
		b = append(b, d)
	}
	if d, err := UserBase(); err == nil {
		b = append(b, d)
	}
	b = append(b, SystemBase())

	return b
}

// DataDirs returns the candidate directories for built-in reaction media, in
// search order.
func DataDirs() []string {
	b := Bases()
	d := make([]string, 0, len(b))
	for _, p := range b {
		d = append(d, filepath.Join(p, dataDir))
	}
	return d
}

// ExtensionDirs returns the candidate directories for installed extensions,
// in search order.
func ExtensionDirs() []string {
	b := Bases()
	d := make([]string, 0, len(b))
	for _, p := range b {
		d = append(d, filepath.Join(p, extensionDir))
	}
	return d
}
