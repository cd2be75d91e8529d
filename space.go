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

import "fmt"

// Range represents a range of byte sequences.
// To be within the range, a byte sequence must have the same length as Low
// and High, and every byte in the sequence must be between the corresponding
// bytes in Low and High (inclusive).
//
// Low and High must have the same length and must not be empty.
type Range struct {
	Low, High []byte
}

// CodeSpaceRange is a list of byte ranges, ordered by sequence length.
type CodeSpaceRange []Range

// CodeSpace describes the shape of the byte sequences emitted by
// [AppendRune]: a single byte 0xxxxxxx, or a lead byte 110xxxxx, 1110xxxx
// or 11110xxx followed by one, two or three continuation bytes 10xxxxxx.
//
// The ranges check the bit patterns only.  Overlong forms and encoded
// surrogates are inside the ranges but are never produced by this package.
var CodeSpace = CodeSpaceRange{
	{[]byte{0x00}, []byte{0x7F}},
	{[]byte{0xC2, 0x80}, []byte{0xDF, 0xBF}},
	{[]byte{0xE0, 0x80, 0x80}, []byte{0xEF, 0xBF, 0xBF}},
	{[]byte{0xF0, 0x80, 0x80, 0x80}, []byte{0xF4, 0xBF, 0xBF, 0xBF}},
}

// MatchLen returns the number of leading bytes in s which can be matched by
// csr.  If s does not start with a sequence in one of the ranges, the return
// value is 0.
func (csr CodeSpaceRange) MatchLen(s []byte) int {
	for _, r := range csr {
		if len(s) < len(r.Low) {
			continue
		}

		valid := true
		for i := 0; i < len(r.Low); i++ {
			if s[i] < r.Low[i] || s[i] > r.High[i] {
				valid = false
				break
			}
		}

		if valid {
			return len(r.Low)
		}
	}

	return 0
}

// LenCounts splits buf into sequences matched by [CodeSpace] and returns
// the number of sequences of each length.
// If some part of buf cannot be matched, an error giving the byte offset
// is returned together with the counts up to that point.
func LenCounts(buf []byte) (map[int]int, error) {
	counts := make(map[int]int, len(CodeSpace))
	pos := 0
	for pos < len(buf) {
		k := CodeSpace.MatchLen(buf[pos:])
		if k == 0 {
			return counts, fmt.Errorf("malformed sequence at byte %d", pos)
		}
		counts[k]++
		pos += k
	}
	return counts, nil
}
