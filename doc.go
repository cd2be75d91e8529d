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

// Package utf8all generates a test fixture which contains the UTF-8
// encoding of every Unicode scalar value.
//
// The code points 0 to 0x10FFFF are encoded in increasing order and the
// encodings are concatenated without separators.  The surrogate block
// 0xD800 to 0xDFFF is skipped, since surrogates have no encoding of their
// own.  The result is [Size] bytes long and holds [Count] characters.
//
// The data can be written to a new file using [WriteFile]:
//
//	err := utf8all.WriteFile("utf-8.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Existing files are never overwritten.
package utf8all
