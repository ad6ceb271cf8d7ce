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
	"errors"
	"fmt"
)

// Every encode failure other than an *InternalError wraps one of these
// sentinels, so callers can use errors.Is rather than string matching.
var (
	// ErrPayloadTooLarge means no version 1..40 can accommodate the
	// payload at the requested error correction level.
	ErrPayloadTooLarge = errors.New("qrcode: payload too large for any version at the requested error correction level")

	// ErrInvalidChar means alphanumeric mode was explicitly requested but
	// the payload contains a character outside the 45-character alphabet.
	ErrInvalidChar = errors.New("qrcode: character outside the alphanumeric alphabet")

	// ErrUnsupportedMode means Kanji mode was explicitly requested; this
	// encoder has no Shift-JIS table.
	ErrUnsupportedMode = errors.New("qrcode: mode not supported by this encoder")

	// ErrInvalidVersion means WithVersion was given a value outside
	// [MinVersion, MaxVersion].
	ErrInvalidVersion = errors.New("qrcode: version out of range")

	// ErrInvalidMask means WithMask was given a value outside 0..7.
	ErrInvalidMask = errors.New("qrcode: mask out of range")
)

// InternalError reports an invariant violation — a bug in this package, not
// a caller error. It should never be observed in practice for any version
// in [MinVersion, MaxVersion].
type InternalError struct {
	reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("qrcode: internal invariant violated: %s", e.reason)
}

func internalErrorf(format string, args ...any) error {
	return &InternalError{reason: fmt.Sprintf(format, args...)}
}

func wrapPayloadTooLarge(bits, capacityBits int) error {
	return fmt.Errorf("%w: needs %d bits, largest version offers %d", ErrPayloadTooLarge, bits, capacityBits)
}

func wrapInvalidChar(text string) error {
	return fmt.Errorf("%w: %q", ErrInvalidChar, text)
}

func wrapUnsupportedMode(mode Mode) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
}

func wrapInvalidVersion(version int) error {
	return fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidVersion, version, MinVersion, MaxVersion)
}

func wrapInvalidMask(mask int) error {
	return fmt.Errorf("%w: %d (must be 0..7)", ErrInvalidMask, mask)
}
