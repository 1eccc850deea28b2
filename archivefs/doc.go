// This file is part of yasp.
//
// yasp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yasp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yasp.  If not, see <https://www.gnu.org/licenses/>.

// Package archivefs treats zip archives as directories. A path such as:
//
//	music/pc98.zip/touhou/01.s98
//
// refers to the file touhou/01.s98 inside the archive music/pc98.zip. The
// Path type navigates such paths and lists the entries at each level. The
// Open() function returns the contents of a file at any path.
package archivefs
