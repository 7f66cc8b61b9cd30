// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

// CharClass is a set of character classification flags.
type CharClass uint16

const (
	ClassDigit       CharClass = 1 << iota // 0-9
	ClassAlpha                             // a-z, A-Z
	ClassIdentStart                        // characters that can start identifiers
	ClassIdentCont                         // characters that can continue identifiers
	ClassWhitespace                        // whitespace other than newline
	ClassHexDigit                          // 0-9, a-f, A-F
	ClassOctalDigit                        // 0-7
	ClassBinaryDigit                       // 0-1
	ClassNumberCont                        // characters absorbed by the numeric run
	ClassOpStart                           // first byte of some operator
)

// charClassTable holds the flags for every byte value. Bytes >= 0x80 have no
// flags: non-ASCII input is only valid inside strings, chars and comments.
var charClassTable [256]CharClass

func init() {
	for b := byte('0'); b <= '9'; b++ {
		charClassTable[b] |= ClassDigit | ClassHexDigit | ClassIdentCont | ClassNumberCont
		if b <= '7' {
			charClassTable[b] |= ClassOctalDigit
		}
		if b <= '1' {
			charClassTable[b] |= ClassBinaryDigit
		}
	}

	for b := byte('a'); b <= 'z'; b++ {
		charClassTable[b] |= ClassAlpha | ClassIdentStart | ClassIdentCont | ClassNumberCont
		if b <= 'f' {
			charClassTable[b] |= ClassHexDigit
		}
	}
	for b := byte('A'); b <= 'Z'; b++ {
		charClassTable[b] |= ClassAlpha | ClassIdentStart | ClassIdentCont | ClassNumberCont
		if b <= 'F' {
			charClassTable[b] |= ClassHexDigit
		}
	}

	charClassTable['_'] |= ClassIdentStart | ClassIdentCont | ClassNumberCont
	charClassTable['.'] |= ClassNumberCont

	for _, b := range []byte(" \t\r\f\v") {
		charClassTable[b] |= ClassWhitespace
	}

	for op := range operatorKinds {
		charClassTable[op[0]] |= ClassOpStart
	}
}

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool {
	return charClassTable[b]&ClassDigit != 0
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return charClassTable[b]&ClassAlpha != 0
}

// IsIdentStart reports whether b can start an identifier: [A-Za-z_].
func IsIdentStart(b byte) bool {
	return charClassTable[b]&ClassIdentStart != 0
}

// IsIdentCont reports whether b can continue an identifier: [A-Za-z0-9_].
func IsIdentCont(b byte) bool {
	return charClassTable[b]&ClassIdentCont != 0
}

// IsWhitespace reports whether b is whitespace. Newline is classified
// separately because it may be emitted as a token.
func IsWhitespace(b byte) bool {
	return charClassTable[b]&ClassWhitespace != 0
}

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return charClassTable[b]&ClassHexDigit != 0
}

// IsOctalDigit reports whether b is an octal digit.
func IsOctalDigit(b byte) bool {
	return charClassTable[b]&ClassOctalDigit != 0
}

// IsBinaryDigit reports whether b is a binary digit.
func IsBinaryDigit(b byte) bool {
	return charClassTable[b]&ClassBinaryDigit != 0
}

// IsOpStart reports whether b is the first byte of some operator.
func IsOpStart(b byte) bool {
	return charClassTable[b]&ClassOpStart != 0
}

func isNumberCont(b byte) bool {
	return charClassTable[b]&ClassNumberCont != 0
}

// HasCharClass reports whether b has any of the given flags.
func HasCharClass(b byte, class CharClass) bool {
	return charClassTable[b]&class != 0
}
