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

// encodeConfig collects the deterministic-testing overrides for forcing a
// version, mode, or mask instead of letting Encode choose automatically.
type encodeConfig struct {
	forceVersion int  // 0 means "choose automatically".
	forceMode    *Mode
	forceMask    int // -1 means "choose automatically".
	boostECL     bool
}

// Option configures a single call to Encode.
type Option func(*encodeConfig)

func newEncodeConfig(opts []Option) *encodeConfig {
	c := &encodeConfig{forceMask: -1, boostECL: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithVersion forces a specific QR code version instead of choosing the
// smallest one that fits the payload.
func WithVersion(version int) Option {
	return func(c *encodeConfig) { c.forceVersion = version }
}

// WithMode forces a specific encoding mode instead of selecting the
// narrowest mode that fits the payload. Forcing Alphanumeric on text
// outside the 45-character alphabet yields ErrInvalidChar; forcing Kanji
// always yields ErrUnsupportedMode since no Shift-JIS table is implemented.
func WithMode(mode Mode) Option {
	return func(c *encodeConfig) { c.forceMode = &mode }
}

// WithMask forces one of the eight mask patterns instead of selecting the
// one with the lowest penalty score.
func WithMask(mask int) Option {
	return func(c *encodeConfig) { c.forceMask = mask }
}

// WithBoostECL controls whether Encode raises the error correction level
// above the one requested when the chosen version has spare capacity at a
// stronger level. Defaults to true.
func WithBoostECL(boost bool) Option {
	return func(c *encodeConfig) { c.boostECL = boost }
}
