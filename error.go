// seehuhn.de/go/utf8all - every UTF-8 encoded scalar value in one file
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utf8all

import (
	"io/fs"
	"strconv"
)

// PathConflictError is returned by [WriteFile] if the output file already
// exists.
type PathConflictError struct {
	Path string
}

func (err *PathConflictError) Error() string {
	return "output file " + strconv.Quote(err.Path) + " already exists"
}

// Unwrap returns [fs.ErrExist], so that errors.Is(err, fs.ErrExist)
// holds for path conflicts.
func (err *PathConflictError) Unwrap() error {
	return fs.ErrExist
}
