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
	"strings"
	"unicode/utf8"
)

// simpleEscapes is the table of single-character escapes valid in string and
// char literals.
var simpleEscapes = map[byte]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'f':  '\f',
	'v':  '\v',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// quoted is the result of scanning a quoted literal body.
type quoted struct {
	value      string
	runes      int
	terminated bool
	badEscape  string // text of the first invalid escape, if any
}

// scanQuoted consumes a literal delimited by quote. Literals are single-line:
// scanning stops before a newline or at EOF when no closing quote is found.
// After an invalid escape the scan continues to the literal's end so the
// whole literal is reported once.
func (l *Lexer) scanQuoted(quote byte) quoted {
	var (
		q  quoted
		sb strings.Builder
	)
	l.cur.advance() // opening quote

	for {
		b, ok := l.cur.peek()
		if !ok || b == '\n' {
			break
		}
		if b == quote {
			l.cur.advance()
			q.terminated = true
			break
		}
		if b == '\\' {
			escStart := l.cur.pos
			r, valid := l.scanEscape()
			if !valid {
				if q.badEscape == "" {
					q.badEscape = l.cur.textFrom(escStart)
				}
				continue
			}
			sb.WriteRune(r)
			q.runes++
			continue
		}
		sb.WriteRune(l.cur.advance())
		q.runes++
	}

	q.value = sb.String()
	return q
}

// scanEscape consumes a backslash escape and returns the character it
// denotes. A backslash before a newline or EOF consumes only the backslash,
// leaving the terminator for the caller.
func (l *Lexer) scanEscape() (rune, bool) {
	l.cur.advance() // backslash

	b, ok := l.cur.peek()
	if !ok || b == '\n' {
		return 0, false
	}
	if r, ok := simpleEscapes[b]; ok {
		l.cur.advance()
		return r, true
	}

	switch b {
	case 'x':
		l.cur.advance()
		return l.scanHexEscape(2, 2)
	case 'u':
		l.cur.advance()
		if b, ok := l.cur.peek(); !ok || b != '{' {
			return 0, false
		}
		l.cur.advance()
		r, valid := l.scanHexEscape(1, 6)
		if b, ok := l.cur.peek(); !ok || b != '}' {
			return 0, false
		}
		l.cur.advance()
		if !valid || !utf8.ValidRune(r) {
			return 0, false
		}
		return r, true
	default:
		l.cur.advance()
		return 0, false
	}
}

// scanHexEscape consumes up to maxDigits hex digits and requires at least
// minDigits of them.
func (l *Lexer) scanHexEscape(minDigits, maxDigits int) (rune, bool) {
	var r rune
	n := 0
	for n < maxDigits {
		b, ok := l.cur.peek()
		if !ok || !IsHexDigit(b) {
			break
		}
		l.cur.advance()
		r = r<<4 | rune(hexValue(b))
		n++
	}
	return r, n >= minDigits
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// scanString scans a double-quoted string literal.
func (l *Lexer) scanString(start Position) (Token, *Error) {
	q := l.scanQuoted('"')
	switch {
	case !q.terminated:
		return Token{}, l.errorf(UnterminatedString, start, "unterminated string literal")
	case q.badEscape != "":
		return Token{}, l.errorf(InvalidEscape, start, "invalid escape sequence %q in string literal", q.badEscape)
	}
	return l.token(String, start, q.value), nil
}

// scanChar scans a single-quoted char literal holding exactly one character.
func (l *Lexer) scanChar(start Position) (Token, *Error) {
	q := l.scanQuoted('\'')
	switch {
	case !q.terminated:
		return Token{}, l.errorf(UnterminatedString, start, "unterminated char literal")
	case q.badEscape != "":
		return Token{}, l.errorf(InvalidEscape, start, "invalid escape sequence %q in char literal", q.badEscape)
	case q.runes != 1:
		return Token{}, l.errorf(InvalidCharLiteral, start, "char literal must contain exactly one character, found %d", q.runes)
	}
	r, _ := utf8.DecodeRuneInString(q.value)
	return l.token(Char, start, r), nil
}
