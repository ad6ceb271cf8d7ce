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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcode

// MinVersion and MaxVersion bound the legal QR code version range.
// Version v has a side length of 4*v+17 modules.
const (
	MinVersion = 1
	MaxVersion = 40
)

// eccCodeWordsPerBlock[ecl][version] is the number of error correction
// codewords carried by each block. Index 0 is unused padding.
//
// This is the full, ISO/IEC 18004-authoritative 1-40 table. A prior
// distillation of this table (see original_source/project/constants.py)
// only carried versions 1-6, with versions 5 and 6 duplicated under
// conflicting keys; this table has neither defect.
var eccCodeWordsPerBlock = [4][41]int{
	// Version:  0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // L
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // M
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Q
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // H
}

// numErrorCorrectionBlocks[ecl][version] is the total number of blocks the
// data and ECC codewords are split across.
var numErrorCorrectionBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // L
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // M
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Q
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // H
}

// numRawDataModules[version] is the total number of bits (data + ECC,
// including any trailing remainder bits) a symbol of that version can hold
// once every function pattern is excluded.
var numRawDataModules [41]int

// numDataCodewords[ecl][version] is the number of 8-bit data (non-ECC)
// codewords available, remainder bits discarded.
var numDataCodewords [4][41]int

// alignmentPatternPositions[version] lists the ascending row/column
// coordinates (shared across both axes) at which alignment pattern centers
// should be considered; entries overlapping a finder pattern are skipped by
// the caller.
var alignmentPatternPositions [41][]int

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrcode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := L; e <= H; e++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := MinVersion; v <= MaxVersion; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(v)
	}
}

// computeAlignmentPatternPositions derives the alignment-pattern coordinate
// list for a version directly from ISO/IEC 18004's step-size formula,
// rather than tabulating all 40 lists by hand.
func computeAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // The one version that doesn't fit the general step formula.
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

// blockGroup is one entry of a (version, ECL)'s block structure: nb blocks,
// each with dw data codewords and ew ECC codewords.
type blockGroup struct {
	numBlocks int
	dataWords int
	eccWords  int
}

// blockGroups derives the block layout for (ecl, version): blocks are
// split into at most two groups (short and long), differing only in one
// extra data codeword carried by the "long" blocks.
func blockGroups(ecl ECL, version int) []blockGroup {
	numBlocks := numErrorCorrectionBlocks[ecl][version]
	eccWords := eccCodeWordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	totalDataWords := rawCodewords - eccWords*numBlocks

	shortDataWords := totalDataWords / numBlocks
	numLongBlocks := totalDataWords - shortDataWords*numBlocks

	var groups []blockGroup
	if numBlocks-numLongBlocks > 0 {
		groups = append(groups, blockGroup{numBlocks: numBlocks - numLongBlocks, dataWords: shortDataWords, eccWords: eccWords})
	}
	if numLongBlocks > 0 {
		groups = append(groups, blockGroup{numBlocks: numLongBlocks, dataWords: shortDataWords + 1, eccWords: eccWords})
	}
	return groups
}
