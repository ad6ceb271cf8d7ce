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

// gf256Prime is the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 used to
// reduce GF(2^8) under multiplication, per ISO/IEC 18004 Annex A.
const gf256Prime = 0x11D

// gf256Exp and gf256Log are the exponential and logarithm tables for
// GF(2^8) under the primitive element alpha = 2. gf256Exp is doubled to 512
// entries so that gf256Exp[gf256Log[a]+gf256Log[b]] never needs to wrap.
var (
	gf256Exp [512]byte
	gf256Log [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gf256Exp[i] = byte(x)
		gf256Log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gf256Prime
		}
	}
	for i := 255; i < 512; i++ {
		gf256Exp[i] = gf256Exp[i-255]
	}
}

// gf256Mul returns a*b in GF(2^8).
func gf256Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gf256Exp[int(gf256Log[a])+int(gf256Log[b])]
}

// gf256Pow returns x^n in GF(2^8).
func gf256Pow(x byte, n int) byte {
	if n == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	e := (int(gf256Log[x]) * n) % 255
	if e < 0 {
		e += 255
	}
	return gf256Exp[e]
}

// gf256Inv returns the multiplicative inverse of x in GF(2^8). Panics for
// x == 0, which has no inverse.
func gf256Inv(x byte) byte {
	if x == 0 {
		panic("gf256: zero has no inverse")
	}
	return gf256Exp[255-int(gf256Log[x])]
}
