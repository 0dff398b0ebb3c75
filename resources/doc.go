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

// Package resources locates the directories that application resources are
// read from.
//
// Media files and extensions can live alongside the binary, in the per-user
// data directory or in the system-wide share directory. The search order is
// always: installation directory first, user directory second, system
// directory last. On a modern Linux system the three bases are typically:
//
//	/path/to/installation
//	/home/user/.local/share/bambam
//	/usr/share/bambam
//
// The package only constructs paths. It never creates directories; all
// resources are read-only as far as the application is concerned.
package resources
