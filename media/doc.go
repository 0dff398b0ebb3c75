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

// Package media indexes the sound and image files available to the
// application. A Catalog is built by walking a list of directories and
// collecting every file whose extension marks it as a sound or an image.
// The catalog is sorted and then never changes, which matters more than it
// might seem: the deterministic sound option in the playmode package maps a
// key to a sound by its position in the catalog, so the order must be the
// same from one run to the next.
//
// Sound files are checked as they are catalogued. A file that will not
// decode is logged and left out, which is much better than finding out
// about it mid-session when a key press tries to play it.
package media
