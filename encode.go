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

const (
	// MaxRune is the largest Unicode scalar value.
	MaxRune = 0x10_FFFF

	// SurrogateMin and SurrogateMax delimit the UTF-16 surrogate block.
	// Code points in this range are not scalar values and have no
	// encoding of their own.
	SurrogateMin = 0xD800
	SurrogateMax = 0xDFFF
)

// Upper bounds (exclusive) of the 1, 2 and 3 byte classes.
const (
	max1 = 0x80
	max2 = 0x800
	max3 = 0x1_0000
)

const (
	lead2 = 0b1100_0000
	lead3 = 0b1110_0000
	lead4 = 0b1111_0000
	cont  = 0b1000_0000

	payload = 0b0011_1111
)

// Valid reports whether r is a Unicode scalar value.
func Valid(r rune) bool {
	return r >= 0 && r <= MaxRune && (r < SurrogateMin || r > SurrogateMax)
}

// Len returns the number of bytes needed to encode r.
// If r is not a scalar value, -1 is returned.
func Len(r rune) int {
	switch {
	case !Valid(r):
		return -1
	case r < max1:
		return 1
	case r < max2:
		return 2
	case r < max3:
		return 3
	default:
		return 4
	}
}

// AppendRune appends the encoding of r to buf and returns the extended
// buffer.  If r is not a scalar value, buf is returned unchanged.
func AppendRune(buf []byte, r rune) []byte {
	if !Valid(r) {
		return buf
	}
	i := uint32(r)
	switch {
	case i < max1:
		return append(buf, byte(i))
	case i < max2:
		return append(buf,
			lead2|byte(i>>6),
			cont|byte(i&payload))
	case i < max3:
		return append(buf,
			lead3|byte(i>>12),
			cont|byte((i>>6)&payload),
			cont|byte(i&payload))
	default:
		return append(buf,
			lead4|byte(i>>18),
			cont|byte((i>>12)&payload),
			cont|byte((i>>6)&payload),
			cont|byte(i&payload))
	}
}
