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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeNumericSegment(t *testing.T) {
	s := makeNumericSegment("314")
	assert.Equal(t, Numeric, s.mode)
	assert.Equal(t, 3, s.numChars)
	assert.Equal(t, bitBuffer{0, 1, 0, 0, 1, 1, 1, 0, 1, 0}, s.data)

	s = makeNumericSegment("0")
	assert.Equal(t, bitBuffer{0, 0, 0, 0}, s.data)

	s = makeNumericSegment("12")
	assert.Equal(t, bitBuffer{0, 0, 0, 1, 1, 0, 0}, s.data)
}

func TestMakeAlphanumericSegment(t *testing.T) {
	s := makeAlphanumericSegment("AC-42")
	assert.Equal(t, Alphanumeric, s.mode)
	assert.Equal(t, 5, s.numChars)
	assert.Equal(t, 11+11+6, len(s.data))
}

func TestMakeByteSegment(t *testing.T) {
	s := makeByteSegment([]byte("ab"))
	assert.Equal(t, Byte, s.mode)
	assert.Equal(t, 2, s.numChars)
	assert.Equal(t, bitBuffer{0, 1, 1, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 0}, s.data)
}

func TestMakeSegmentDispatchesByMode(t *testing.T) {
	assert.Equal(t, Numeric, makeSegment("123").mode)
	assert.Equal(t, Alphanumeric, makeSegment("ABC 123").mode)
	assert.Equal(t, Alphanumeric, makeSegment("abc").mode)
}

func TestForceAlphanumericSegment(t *testing.T) {
	s, err := forceAlphanumericSegment("hello world")
	assert.NoError(t, err)
	assert.Equal(t, Alphanumeric, s.mode)
	assert.Equal(t, 11, s.numChars)

	_, err = forceAlphanumericSegment("hello, world!")
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestSegmentTotalBits(t *testing.T) {
	s := makeNumericSegment("12345")
	assert.Equal(t, 4+10+17, s.totalBits(1))

	s.numChars = 1 << 10
	assert.Equal(t, -1, s.totalBits(1))
}
