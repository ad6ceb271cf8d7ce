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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumDataCodewords(t *testing.T) {
	cases := []struct {
		version, ecl, want int
	}{
		{3, int(M), 44},
		{3, int(Q), 34},
		{3, int(H), 26},
		{6, int(L), 136},
		{7, int(L), 156},
		{9, int(L), 232},
		{9, int(M), 182},
		{12, int(H), 158},
		{15, int(L), 523},
		{16, int(Q), 325},
		{19, int(H), 341},
		{21, int(L), 932},
		{22, int(L), 1006},
		{22, int(M), 782},
		{22, int(H), 442},
		{24, int(L), 1174},
		{24, int(H), 514},
		{28, int(L), 1531},
		{30, int(H), 745},
		{32, int(H), 845},
		{33, int(L), 2071},
		{33, int(H), 901},
		{35, int(L), 2306},
		{35, int(M), 1812},
		{35, int(Q), 1286},
		{36, int(H), 1054},
		{37, int(H), 1096},
		{39, int(M), 2216},
		{40, int(M), 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d/ecl%d", tc.version, tc.ecl), func(t *testing.T) {
			assert.Equal(t, tc.want, numDataCodewords[tc.ecl][tc.version])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208}, {2, 359}, {3, 567}, {6, 1383}, {7, 1568}, {12, 3728},
		{15, 5243}, {18, 7211}, {22, 10068}, {26, 13652}, {32, 19723},
		{37, 25568}, {40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d", tc[0]), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestAlignmentPatternPositions(t *testing.T) {
	cases := []struct {
		version int
		want    []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{8, []int{6, 24, 42}},
		{16, []int{6, 26, 50, 74}},
		{25, []int{6, 32, 58, 84, 110}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{33, []int{6, 30, 58, 86, 114, 142}},
		{39, []int{6, 26, 54, 82, 110, 138, 166}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("v%d", tc.version), func(t *testing.T) {
			assert.Equal(t, tc.want, alignmentPatternPositions[tc.version])
		})
	}
}

func TestBlockGroupsCoverAllDataCodewords(t *testing.T) {
	for ecl := L; ecl <= H; ecl++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			groups := blockGroups(ecl, v)
			total := 0
			blocks := 0
			for _, g := range groups {
				total += g.numBlocks * g.dataWords
				blocks += g.numBlocks
			}
			assert.Equal(t, numDataCodewords[ecl][v], total, "ecl=%v v=%d", ecl, v)
			assert.Equal(t, numErrorCorrectionBlocks[ecl][v], blocks, "ecl=%v v=%d", ecl, v)
		}
	}
}
