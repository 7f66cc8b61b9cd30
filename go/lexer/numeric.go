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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// scanNumber consumes the maximal numeric run starting at a digit and then
// validates it. A malformed run is reported as one InvalidNumericLiteral
// covering the whole run, so "1.2.3" or "123abc" produce a single error.
//
// The run is [0-9A-Za-z_.]*, plus a sign directly after the exponent marker
// of a decimal literal ("1e-5").
func (l *Lexer) scanNumber(start Position) (Token, *Error) {
	hex := l.cur.hasPrefix("0x") || l.cur.hasPrefix("0X")

	var prev byte
	for {
		b, ok := l.cur.peek()
		if !ok {
			break
		}
		if isNumberCont(b) || ((b == '+' || b == '-') && (prev == 'e' || prev == 'E') && !hex) {
			l.cur.advance()
			prev = b
			continue
		}
		break
	}

	text := l.cur.textFrom(start)
	kind, value, problem := parseNumber(text)
	if problem != "" {
		return Token{}, l.errorf(InvalidNumericLiteral, start, "invalid numeric literal %q: %s", text, problem)
	}
	return l.token(kind, start, value), nil
}

// parseNumber validates a numeric lexeme and decodes its value. A non-empty
// problem describes why the lexeme is malformed.
func parseNumber(text string) (kind Kind, value any, problem string) {
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			return parseRadixInteger(text[2:], 16, IsHexDigit)
		case 'o', 'O':
			return parseRadixInteger(text[2:], 8, IsOctalDigit)
		case 'b', 'B':
			return parseRadixInteger(text[2:], 2, IsBinaryDigit)
		}
	}
	return parseDecimal(text)
}

func parseRadixInteger(digits string, base int, isDigit func(byte) bool) (Kind, any, string) {
	if digits == "" {
		return Invalid, nil, "missing digits after radix prefix"
	}
	for i := 0; i < len(digits); i++ {
		if b := digits[i]; b != '_' && !isDigit(b) {
			return Invalid, nil, fmt.Sprintf("invalid digit %q in base %d literal", b, base)
		}
	}
	if !validSeparators(digits, isDigit) {
		return Invalid, nil, "'_' must separate digits"
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(digits, "_", ""), base, 64)
	if err != nil {
		return Invalid, nil, rangeProblem(err, "integer")
	}
	return Integer, v, ""
}

// parseDecimal accepts digits ['.' digits] [('e'|'E') ['+'|'-'] digits].
func parseDecimal(text string) (Kind, any, string) {
	i := 0
	scanDigits := func() int {
		begin := i
		for i < len(text) && (IsDigit(text[i]) || text[i] == '_') {
			i++
		}
		return i - begin
	}

	intPart := text[:scanDigits()]
	isFloat := false

	if i < len(text) && text[i] == '.' {
		isFloat = true
		i++
		fracStart := i
		if scanDigits() == 0 {
			return Invalid, nil, "missing digits after decimal point"
		}
		if !validSeparators(text[fracStart:i], IsDigit) {
			return Invalid, nil, "'_' must separate digits"
		}
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		isFloat = true
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		expStart := i
		if scanDigits() == 0 || !validSeparators(text[expStart:i], IsDigit) {
			return Invalid, nil, "malformed exponent"
		}
	}

	if i < len(text) {
		switch b := text[i]; {
		case b == '.':
			return Invalid, nil, "multiple decimal points"
		case b == '+' || b == '-':
			return Invalid, nil, "malformed exponent"
		default:
			return Invalid, nil, fmt.Sprintf("unexpected %q", b)
		}
	}

	if !validSeparators(intPart, IsDigit) {
		return Invalid, nil, "'_' must separate digits"
	}

	clean := strings.ReplaceAll(text, "_", "")
	if isFloat {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return Invalid, nil, rangeProblem(err, "float")
		}
		return Float, v, ""
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return Invalid, nil, rangeProblem(err, "integer")
	}
	return Integer, v, ""
}

// validSeparators reports whether every '_' in s sits between two digits.
func validSeparators(s string, isDigit func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func rangeProblem(err error, what string) string {
	if errors.Is(err, strconv.ErrRange) {
		return what + " literal out of range"
	}
	return err.Error()
}
