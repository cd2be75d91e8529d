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
	"errors"
	"io/fs"
	"iter"
	"os"
)

const (
	// Count is the number of Unicode scalar values.
	Count = MaxRune + 1 - (SurrogateMax - SurrogateMin + 1)

	// Size is the length in bytes of the generated data.
	Size = 1*max1 +
		2*(max2-max1) +
		3*(max3-max2-(SurrogateMax-SurrogateMin+1)) +
		4*(MaxRune+1-max3)
)

// All iterates over all Unicode scalar values in increasing order.
// The surrogate block is skipped, so that 0xD7FF is followed by 0xE000.
func All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := rune(0); r <= MaxRune; r++ {
			if r == SurrogateMin {
				r = SurrogateMax
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Append appends the encodings of all scalar values, in increasing order,
// to buf.
func Append(buf []byte) []byte {
	for r := range All() {
		buf = AppendRune(buf, r)
	}
	return buf
}

// Generate returns the complete contents of the fixture file.
func Generate() []byte {
	return Append(make([]byte, 0, Size))
}

// WriteFile writes the output of [Generate] to a new file.
//
// The file must not exist yet.  If it does, a [*PathConflictError] is
// returned and the existing file is left untouched.  Other errors come
// directly from the os package.  If an error occurs after the file has been
// created, the file may be incomplete.
func WriteFile(name string) (err error) {
	data := Generate()

	fd, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return &PathConflictError{Path: name}
	} else if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	_, err = fd.Write(data)
	return err
}
