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

import "fmt"

// ECL is the error correction level of a QR code symbol.
type ECL int8

// The four standard error correction levels, in order of increasing
// recovery capacity (and decreasing data capacity).
const (
	L ECL = iota // Low: recovers ~7% of codewords.
	M            // Medium: recovers ~15% of codewords.
	Q            // Quartile: recovers ~25% of codewords.
	H            // High: recovers ~30% of codewords.
)

// formatBitsForECL is the 2-bit code embedded in format info for each ECL.
// Note the values are not in L,M,Q,H order: ISO/IEC 18004 Table 25 assigns
// L=01, M=00, Q=11, H=10.
var formatBitsForECL = map[ECL]int{
	L: 0b01,
	M: 0b00,
	Q: 0b11,
	H: 0b10,
}

func (e ECL) String() string {
	switch e {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return fmt.Sprintf("ECL(%d)", int8(e))
	}
}
