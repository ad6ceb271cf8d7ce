/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import (
	"strconv"
	"strings"
)

// segment is a single run of characters encoded under one Mode, ready to be
// concatenated with its mode indicator and character-count indicator into
// the final bitstream.
type segment struct {
	mode     Mode
	numChars int
	data     bitBuffer
}

// makeNumericSegment encodes digits in groups of 3 (10 bits), with a 2-digit
// (7 bit) or 1-digit (4 bit) tail group.
func makeNumericSegment(digits string) segment {
	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		d, _ := strconv.Atoi(digits[i : i+n]) // Caller guarantees digits is all-numeric.
		bb.appendBits(d, int8(n*3+1))
		i += n
	}
	return segment{mode: Numeric, numChars: len(digits), data: bb}
}

// makeAlphanumericSegment packs pairs of characters as v1*45+v2 in 11 bits,
// with a lone tail character packed in 6 bits.
func makeAlphanumericSegment(text string) segment {
	bb := make(bitBuffer, 0, len(text)*6)
	i := 0
	for ; i+1 < len(text); i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i]) * 45
		v += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(v, 11)
	}
	if i < len(text) {
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}
	return segment{mode: Alphanumeric, numChars: len(text), data: bb}
}

// makeByteSegment packs each UTF-8 byte of data as 8 bits.
func makeByteSegment(data []byte) segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return segment{mode: Byte, numChars: len(data), data: bb}
}

// makeSegment encodes text under the narrowest mode that fits it, uppercasing
// for the alphanumeric check (characters are emitted uppercase, matching
// ISO/IEC 18004's 45-character alphanumeric alphabet).
func makeSegment(text string) segment {
	switch selectMode(text) {
	case Numeric:
		return makeNumericSegment(text)
	case Alphanumeric:
		return makeAlphanumericSegment(toAlphanumericUpper(text))
	default:
		return makeByteSegment([]byte(text))
	}
}

// forceAlphanumericSegment builds an alphanumeric segment without mode
// detection, for callers that have already validated the text against the
// 45-character alphabet. Returns ErrInvalidChar wrapped if it hasn't.
func forceAlphanumericSegment(text string) (segment, error) {
	upper := toAlphanumericUpper(text)
	if !alphanumericRegexp.MatchString(upper) {
		return segment{}, wrapInvalidChar(text)
	}
	return makeAlphanumericSegment(upper), nil
}

// totalBits returns the number of bits this segment contributes to a
// bitstream at the given version: its 4-bit mode indicator, its
// version-dependent character-count indicator, and its data. Returns -1 if
// numChars overflows the character-count field's width.
func (s segment) totalBits(version int) int {
	ccBits := s.mode.charCountBits(version)
	if s.numChars >= 1<<uint(ccBits) {
		return -1
	}
	return 4 + int(ccBits) + len(s.data)
}
