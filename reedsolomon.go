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

import "sync"

// reedSolomonDivisors caches generator polynomials by ECC word count, since
// the same degree recurs across many (version, ECL) pairs. Every degree
// that chooseVersion can ever ask for is precomputed once in init() below,
// mirroring the way the rest of the package's tables are built up front
// rather than discovered lazily; reedSolomonDivisorsMu guards the map for
// any degree outside that precomputed set, so concurrent calls to Encode
// never race on a plain map write.
var (
	reedSolomonDivisorsMu sync.RWMutex
	reedSolomonDivisors   = make(map[int][]byte)
)

func init() {
	for e := L; e <= H; e++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			degree := eccCodeWordsPerBlock[e][v]
			if _, ok := reedSolomonDivisors[degree]; !ok {
				reedSolomonDivisors[degree] = computeReedSolomonDivisor(degree)
			}
		}
	}
}

// computeReedSolomonDivisor computes the generator polynomial
// g(x) = prod_{i=0}^{e-1} (x - alpha^i) for e ECC words, coefficients
// stored highest-degree first with the leading 1 coefficient omitted (so
// the slice has length e).
func computeReedSolomonDivisor(e int) []byte {
	if e < 1 || e > 255 {
		panic("reedsolomon: degree out of range")
	}

	result := make([]byte, e)
	result[e-1] = 1 // Start with the monomial 1.

	root := byte(1)
	for i := 0; i < e; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gf256Mul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gf256Mul(root, 0x02)
	}

	return result
}

// reedSolomonDivisor returns the generator polynomial for e ECC words,
// computing and caching it on first use if it wasn't already precomputed by
// init(). Safe for concurrent use.
func reedSolomonDivisor(e int) []byte {
	reedSolomonDivisorsMu.RLock()
	g, ok := reedSolomonDivisors[e]
	reedSolomonDivisorsMu.RUnlock()
	if ok {
		return g
	}

	reedSolomonDivisorsMu.Lock()
	defer reedSolomonDivisorsMu.Unlock()
	if g, ok := reedSolomonDivisors[e]; ok {
		return g
	}
	g = computeReedSolomonDivisor(e)
	reedSolomonDivisors[e] = g
	return g
}

// reedSolomonEncode performs systematic polynomial division of data against
// the e-degree generator polynomial, returning exactly e ECC bytes. data is
// never mutated. This is an LFSR-style division: it keeps a running
// remainder of length e, shifting in one data byte at a time, which is
// algebraically equivalent to dividing d * x^e by g(x) but avoids
// materializing the zero-padded message polynomial.
func reedSolomonEncode(data []byte, e int) []byte {
	divisor := reedSolomonDivisor(e)

	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gf256Mul(divisor[i], factor)
		}
	}

	return result
}
