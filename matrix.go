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

// setFunctionModule sets a module that is part of a function pattern
// (finder, separator, timing, alignment, dark module, or reserved
// format/version area) rather than data, and marks it so data placement and
// masking both skip it.
func (q *QRCode) setFunctionModule(row, col int, dark bool) {
	q.modules[row][col] = module(bToI(dark))
	q.isFunction[row][col] = true
}

// drawFunctionPatterns lays out every fixed pattern required before data
// placement: timing patterns, the three finder patterns (with their
// separators), alignment patterns, the dark module, and the reserved
// format/version-info areas (drawn once here with a placeholder mask/word so
// those cells are marked as function cells; the real values are redrawn per
// mask candidate by drawFormatInfo/drawVersionInfo).
func (q *QRCode) drawFunctionPatterns() {
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)
	q.setFunctionModule(q.size-8, 8, true) // Dark module.

	positions := alignmentPatternPositions[q.version]
	for _, r := range positions {
		for _, c := range positions {
			if q.overlapsFinder(r, c) {
				continue
			}
			q.drawAlignmentPattern(r, c)
		}
	}

	q.drawFormatInfo(0)
	q.drawVersionInfo()
}

// overlapsFinder reports whether an alignment pattern centered at (r, c)
// would collide with one of the three finder patterns.
func (q *QRCode) overlapsFinder(r, c int) bool {
	for _, fc := range [][2]int{{3, 3}, {q.size - 4, 3}, {3, q.size - 4}} {
		if abs(r-fc[0]) <= 5 && abs(c-fc[1]) <= 5 {
			return true
		}
	}
	return false
}

// drawFinderPattern draws a 9x9 finder pattern (the 7x7 concentric square
// plus its 1-module light separator) centered at (row, col).
func (q *QRCode) drawFinderPattern(row, col int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			r, c := row+dr, col+dc
			if r < 0 || r >= q.size || c < 0 || c >= q.size {
				continue
			}
			dist := max(abs(dr), abs(dc))
			q.setFunctionModule(r, c, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 concentric alignment pattern centered at
// (row, col).
func (q *QRCode) drawAlignmentPattern(row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dist := max(abs(dr), abs(dc))
			q.setFunctionModule(row+dr, col+dc, dist != 1)
		}
	}
}

// drawCodewords places the interleaved codeword stream onto every
// non-function cell, processing columns right to left in pairs (skipping
// the vertical timing column) and alternating sweep direction. Function
// cells must already be marked via drawFunctionPatterns.
func (q *QRCode) drawCodewords(data []byte) {
	bitIndex := 0
	totalBits := len(data) * 8

	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0

		for vert := 0; vert < q.size; vert++ {
			var row int
			if upward {
				row = q.size - 1 - vert
			} else {
				row = vert
			}

			for _, col := range [2]int{right, right - 1} {
				if q.isFunction[row][col] {
					continue
				}
				bit := module(0)
				if bitIndex < totalBits {
					bit = module(data[bitIndex>>3] >> (7 - uint(bitIndex&7)) & 1)
				}
				q.modules[row][col] = bit
				bitIndex++
			}
		}
	}
}

// applyMask XORs every non-function cell with the given mask predicate.
// Applying the same mask twice is a no-op, which is how the mask-selection
// loop undoes a losing candidate.
func (q *QRCode) applyMask(mask int) {
	for r := 0; r < q.size; r++ {
		for c := 0; c < q.size; c++ {
			if q.isFunction[r][c] {
				continue
			}
			if maskPredicate(mask, r, c) {
				q.modules[r][c] ^= 1
			}
		}
	}
}

// maskPredicate implements the eight standard mask formulas.
func maskPredicate(mask, r, c int) bool {
	switch mask {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return (r*c)%2+(r*c)%3 == 0
	case 6:
		return ((r*c)%2+(r*c)%3)%2 == 0
	case 7:
		return ((r+c)%2+(r*c)%3)%2 == 0
	default:
		panic("qrcode: illegal mask value")
	}
}

// drawFormatInfo draws both copies of the 15-bit format info word for the
// given mask, using this symbol's ECL.
func (q *QRCode) drawFormatInfo(mask int) {
	bits := formatInfoWords[q.ecl][mask]

	// Copy A: row 8 columns {0..5,7,8} then column 8 rows {7,5..0}, most
	// significant bit first.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(i, 8, bitAt(bits, i))
	}
	q.setFunctionModule(7, 8, bitAt(bits, 6))
	q.setFunctionModule(8, 8, bitAt(bits, 7))
	q.setFunctionModule(8, 7, bitAt(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(8, 14-i, bitAt(bits, i))
	}

	// Copy B: column 8 rows {size-1..size-7} then row 8 columns
	// {size-8..size-1}, most significant bit first. The dark module at
	// (size-8, 8) is left untouched.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(8, q.size-1-i, bitAt(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(q.size-15+i, 8, bitAt(bits, i))
	}
}

// drawVersionInfo draws both copies of the 18-bit version info word, for
// versions >= 7 only.
func (q *QRCode) drawVersionInfo() {
	if q.version < 7 {
		return
	}
	bits := versionInfoWords[q.version]

	for i := 0; i < 18; i++ {
		bit := bitAt32(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

func bitAt(x uint16, i int) bool    { return (x>>uint(i))&1 == 1 }
func bitAt32(x uint32, i int) bool { return (x>>uint(i))&1 == 1 }

// penaltyScore computes the N1-N4 penalty total against the symbol's
// current (masked) state.
func (q *QRCode) penaltyScore() int {
	result := 0

	for r := 0; r < q.size; r++ {
		result += runAndFinderPenalty(func(i int) module { return q.modules[r][i] }, q.size)
	}
	for c := 0; c < q.size; c++ {
		result += runAndFinderPenalty(func(i int) module { return q.modules[i][c] }, q.size)
	}

	// N2: 2x2 blocks of uniform color.
	for r := 0; r < q.size-1; r++ {
		for c := 0; c < q.size-1; c++ {
			color := q.modules[r][c]
			if color == q.modules[r][c+1] && color == q.modules[r+1][c] && color == q.modules[r+1][c+1] {
				result += 3
			}
		}
	}

	// N4: dark module balance.
	dark := 0
	for r := 0; r < q.size; r++ {
		for c := 0; c < q.size; c++ {
			if q.modules[r][c] == 1 {
				dark++
			}
		}
	}
	total := q.size * q.size
	percent := 100 * dark / total
	k := abs(percent-50) / 5
	result += 10 * k

	return result
}

// runAndFinderPenalty scans one row or column (accessed via at) and returns
// the combined N1 (run length >= 5) and N3 (finder-like pattern) penalty for
// that line. N3 adds 40 for every offset at which an 11-module window equals
// exactly 10111010000 or 00001011101.
func runAndFinderPenalty(at func(int) module, size int) int {
	penalty := 0

	// N1: run-length penalty, scanning for same-color runs of length >= 5.
	runColor := at(0)
	runLen := 1
	for i := 1; i < size; i++ {
		if at(i) == runColor {
			runLen++
			continue
		}
		if runLen >= 5 {
			penalty += runLen - 2
		}
		runColor = at(i)
		runLen = 1
	}
	if runLen >= 5 {
		penalty += runLen - 2
	}

	// N3: look for the two finder-like bit patterns at every offset.
	bits := make([]byte, size)
	for i := 0; i < size; i++ {
		bits[i] = byte(at(i))
	}
	for start := 0; start+11 <= size; start++ {
		if matchesFinderPattern(bits[start : start+11]) {
			penalty += 40
		}
	}

	return penalty
}

var (
	finderPatternA = [11]byte{1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0}
	finderPatternB = [11]byte{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1}
)

func matchesFinderPattern(window []byte) bool {
	matchA, matchB := true, true
	for i, b := range window {
		if b != finderPatternA[i] {
			matchA = false
		}
		if b != finderPatternB[i] {
			matchB = false
		}
	}
	return matchA || matchB
}
