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

// bitBuffer is a sequence of bits, one per byte element (0 or 1), appended
// MSB-first within each field. This mirrors the field-at-a-time appendBits
// calls used throughout segment and bitstream construction.
type bitBuffer []byte

// appendBits appends the low `length` bits of value, most significant bit
// first. Panics if value doesn't fit in length bits.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length < 0 || length > 31 || (length < 31 && value>>length != 0) {
		panic("bitbuffer: value out of range")
	}
	for i := length - 1; i >= 0; i-- {
		*bb = append(*bb, byte(value>>i&1))
	}
}

// packBytes packs the buffer's bits into big-endian bytes. The buffer's
// length must be a multiple of 8.
func (bb bitBuffer) packBytes() []byte {
	if len(bb)%8 != 0 {
		panic("bitbuffer: length not a multiple of 8")
	}
	out := make([]byte, len(bb)/8)
	for i, bit := range bb {
		out[i>>3] |= bit << (7 - uint(i&7))
	}
	return out
}
