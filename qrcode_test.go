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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeConcurrentDistinctInputs exercises Encode from many goroutines
// at once, each choosing a different (ecl, version) pair so that the
// reedSolomonDivisor cache is read for many degrees at the same instant.
// The payload fits every version at every level, 1-H included. Run with
// -race.
func TestEncodeConcurrentDistinctInputs(t *testing.T) {
	ecls := []ECL{L, M, Q, H}

	var wg sync.WaitGroup
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, ecl := range ecls {
			v, ecl := v, ecl
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := Encode("HELLO", ecl, WithVersion(v), WithBoostECL(false))
				assert.NoError(t, err, "version %d ecl %v", v, ecl)
			}()
		}
	}
	wg.Wait()
}

func TestEncodeKnownScenarios(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		ecl     ECL
		opts    []Option
		version int
		mode    Mode
		size    int
	}{
		{"hello world at Q", "HELLO WORLD", Q, nil, 1, Alphanumeric, 21},
		{"digits at M", "01234567", M, nil, 1, Numeric, 21},
		{"empty string at L", "", L, nil, 1, Numeric, 21},
		{"lowercase is upper-cased into alphanumeric mode", "hello world", M, nil, 1, Alphanumeric, 21},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := Encode(tc.payload, tc.ecl, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.version, q.Version())
			assert.Equal(t, tc.mode, q.Mode())
			assert.Equal(t, tc.size, q.Size())
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := Encode("The quick brown fox jumps over the lazy dog.", Q)
	require.NoError(t, err)
	b, err := Encode("The quick brown fox jumps over the lazy dog.", Q)
	require.NoError(t, err)

	assert.Equal(t, a.Version(), b.Version())
	assert.Equal(t, a.Mask(), b.Mask())
	for r := 0; r < a.Size(); r++ {
		for c := 0; c < a.Size(); c++ {
			assert.Equal(t, a.Module(r, c), b.Module(r, c), "(%d,%d)", r, c)
		}
	}
}

func TestEncodeAllVersionsViaForcedVersion(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v += 3 {
		payload := strings.Repeat("A", numDataCodewords[L][v]-5)
		q, err := Encode(payload, L, WithVersion(v), WithBoostECL(false))
		require.NoError(t, err, "version %d", v)
		assert.Equal(t, v, q.Version())
		assert.Equal(t, v*4+17, q.Size())
		assertStructuralInvariants(t, q)
	}
}

func TestEncodeAllMasks(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		q, err := Encode("MASK TEST", M, WithMask(mask))
		require.NoError(t, err)
		assert.Equal(t, mask, q.Mask())
	}
}

func TestEncodePayloadTooLarge(t *testing.T) {
	huge := strings.Repeat("X", 8000)
	_, err := Encode(huge, H)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestEncodeForcedVersionOutOfRange(t *testing.T) {
	_, err := Encode("hi", M, WithVersion(41))
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = Encode("hi", M, WithVersion(-1))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestEncodeForcedMaskOutOfRange(t *testing.T) {
	_, err := Encode("hi", M, WithMask(8))
	assert.ErrorIs(t, err, ErrInvalidMask)

	_, err = Encode("hi", M, WithMask(-2))
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestEncodeForcedModeInvalidChar(t *testing.T) {
	_, err := Encode("hello, world!", M, WithMode(Alphanumeric))
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestEncodeForcedKanjiUnsupported(t *testing.T) {
	_, err := Encode("test", M, WithMode(Kanji))
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestEncodeBoostECL(t *testing.T) {
	boosted, err := Encode("A", L)
	require.NoError(t, err)
	assert.NotEqual(t, L, boosted.ECL())

	unboosted, err := Encode("A", L, WithBoostECL(false))
	require.NoError(t, err)
	assert.Equal(t, L, unboosted.ECL())
}

func TestEncodeForcedVersionTooSmall(t *testing.T) {
	_, err := Encode(strings.Repeat("9", 200), L, WithVersion(1))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func assertStructuralInvariants(t *testing.T, q *QRCode) {
	t.Helper()
	size := q.Size()
	assert.Equal(t, q.version*4+17, size)

	// Every module must have been set to a definite boolean; Module never
	// panics across the full matrix.
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			_ = q.Module(r, c)
		}
	}

	// Dark module always sits at (size-8, 8).
	assert.True(t, q.Module(size-8, 8))

	// Finder pattern centers are dark.
	for _, fc := range [][2]int{{3, 3}, {size - 4, 3}, {3, size - 4}} {
		assert.True(t, q.Module(fc[0], fc[1]), "finder center")
	}
}

func TestEncodeStructuralInvariantsAcrossScale(t *testing.T) {
	for _, payload := range []string{"", "A", "HELLO WORLD", "0123456789"} {
		for ecl := L; ecl <= H; ecl++ {
			q, err := Encode(payload, ecl)
			require.NoError(t, err)
			assertStructuralInvariants(t, q)
		}
	}
}

func TestEncodeVersion7PlusHasVersionInfo(t *testing.T) {
	payload := strings.Repeat("A", numDataCodewords[L][7]-5)
	q, err := Encode(payload, L, WithVersion(7), WithBoostECL(false))
	require.NoError(t, err)
	assert.Equal(t, 7, q.Version())
	assertStructuralInvariants(t, q)

	bits := versionInfoWords[7]
	for i := 0; i < 18; i++ {
		want := bitAt32(bits, i)
		a, b := q.Size()-11+i%3, i/3
		assert.Equal(t, want, q.Module(a, b))
		assert.Equal(t, want, q.Module(b, a))
	}
}
