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

// Format info is a BCH(15,5) code: 5 data bits (2 bits ECL + 3 bits mask
// index) protected by a 10-bit remainder against generator polynomial
// 0b10100110111, with the 15-bit result XORed against a fixed mask so that
// an all-zero symbol never produces an all-zero format word. Version info
// (present for version >= 7) is an 18-bit Golay(18,6) code: 6 data bits
// protected by a 12-bit remainder against generator 0b1111100100101.
//
// Both are tabulated once at init() rather than recomputed per encode.
const (
	formatInfoGeneratorShifted  = 0x537  // 0b10100110111, the full generator, top bit included.
	formatInfoMask              = 0x5412
	versionInfoGeneratorShifted = 0x1F25 // 0b1111100100101, the full generator, top bit included.
)

// formatInfoWords[ecl][mask] holds the final 15-bit word (already XORed with
// formatInfoMask) ready to be scattered onto the matrix.
var formatInfoWords [4][8]uint16

// versionInfoWords[version] holds the final 18-bit word for version >= 7;
// index 0..6 are unused (zero value, never consulted).
var versionInfoWords [41]uint32

func init() {
	for ecl := 0; ecl < 4; ecl++ {
		for mask := 0; mask < 8; mask++ {
			data := formatBitsForECL[ECL(ecl)]<<3 | mask
			rem := data
			for i := 0; i < 10; i++ {
				rem = rem<<1 ^ (rem>>9)*formatInfoGeneratorShifted
			}
			formatInfoWords[ecl][mask] = uint16((data<<10 | rem) ^ formatInfoMask)
		}
	}

	for v := 7; v <= 40; v++ {
		rem := v
		for i := 0; i < 12; i++ {
			rem = rem<<1 ^ (rem>>11)*versionInfoGeneratorShifted
		}
		versionInfoWords[v] = uint32(v<<12 | rem)
	}
}
