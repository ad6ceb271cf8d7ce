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

import "regexp"

// Mode identifies how a segment's characters are packed into the
// bitstream: Numeric, Alphanumeric, Byte, or Kanji.
type Mode struct {
	indicator    int8
	charCountLen [3]int8 // Indexed by version band: v<=9, 10<=v<=26, 27<=v<=40.
}

// The four supported modes. Kanji is never chosen by automatic mode
// selection since no Shift-JIS table is implemented; it exists so a caller
// could in principle force it, though automatic selection never does.
var (
	Numeric      = Mode{0b0001, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0b0010, [3]int8{9, 11, 13}}
	Byte         = Mode{0b0100, [3]int8{8, 16, 16}}
	Kanji        = Mode{0b1000, [3]int8{8, 10, 12}}
)

// charCountBits returns the width of the character-count indicator field
// for this mode at the given version.
func (m Mode) charCountBits(version int) int8 {
	switch {
	case version <= 9:
		return m.charCountLen[0]
	case version <= 26:
		return m.charCountLen[1]
	default:
		return m.charCountLen[2]
	}
}

func (m Mode) String() string {
	switch m.indicator {
	case Numeric.indicator:
		return "Numeric"
	case Alphanumeric.indicator:
		return "Alphanumeric"
	case Byte.indicator:
		return "Byte"
	case Kanji.indicator:
		return "Kanji"
	default:
		return "Unknown"
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericRegexp = regexp.MustCompile(`^[0-9A-Z $%*+\-./:]*$`)
)

// selectMode chooses the narrowest mode that can represent text: Numeric if
// every rune is a digit, else Alphanumeric if every upper-cased rune lies in
// the 45-character alphanumeric alphabet, else Byte. Kanji is never
// auto-selected.
func selectMode(text string) Mode {
	if numericRegexp.MatchString(text) {
		return Numeric
	}
	if alphanumericRegexp.MatchString(toAlphanumericUpper(text)) {
		return Alphanumeric
	}
	return Byte
}

// toAlphanumericUpper upper-cases only the ASCII letters that matter for the
// alphanumeric alphabet check, leaving any non-ASCII byte as-is so the
// regexp correctly rejects it.
func toAlphanumericUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
