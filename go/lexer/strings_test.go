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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: `"hello"`, expected: "hello"},
		{name: "empty", input: `""`, expected: ""},
		{name: "simple escapes", input: `"a\nb\tc\rd\fe\vf\0g"`, expected: "a\nb\tc\rd\fe\vf\x00g"},
		{name: "quotes and backslash", input: `"say \"hi\" \\ it's"`, expected: `say "hi" \ it's`},
		{name: "escaped single quote", input: `"\'"`, expected: "'"},
		{name: "hex escape", input: `"\x41\x7a"`, expected: "Az"},
		{name: "unicode escape", input: `"\u{41}\u{1F600}"`, expected: "A\U0001F600"},
		{name: "utf8 content", input: `"héllo ✓"`, expected: "héllo ✓"},
		{name: "comment markers inside", input: `"// not /* a comment"`, expected: "// not /* a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, String, tokens[0].Kind)
			assert.Equal(t, tt.input, tokens[0].Lexeme)
			assert.Equal(t, tt.expected, tokens[0].Value)
		})
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    ErrorKind
		lexeme  string
		message string
		after   []Kind
	}{
		{
			name:    "unterminated at eof",
			input:   `"abc`,
			kind:    UnterminatedString,
			lexeme:  `"abc`,
			message: "unterminated string literal",
			after:   []Kind{EOF},
		},
		{
			name:    "unterminated at newline",
			input:   "\"abc\nx",
			kind:    UnterminatedString,
			lexeme:  `"abc`,
			message: "unterminated string literal",
			after:   []Kind{Identifier, EOF},
		},
		{
			name:    "unknown escape",
			input:   `"bad \q here" x`,
			kind:    InvalidEscape,
			lexeme:  `"bad \q here"`,
			message: `\\q`,
			after:   []Kind{Identifier, EOF},
		},
		{
			name:    "short hex escape",
			input:   `"\x4"`,
			kind:    InvalidEscape,
			lexeme:  `"\x4"`,
			message: `\\x4`,
			after:   []Kind{EOF},
		},
		{
			name:    "unicode escape without braces",
			input:   `"\u41"`,
			kind:    InvalidEscape,
			lexeme:  `"\u41"`,
			message: "invalid escape sequence",
			after:   []Kind{EOF},
		},
		{
			name:    "unicode escape out of range",
			input:   `"\u{110000}"`,
			kind:    InvalidEscape,
			lexeme:  `"\u{110000}"`,
			message: "invalid escape sequence",
			after:   []Kind{EOF},
		},
		{
			name:    "surrogate escape",
			input:   `"\u{D800}"`,
			kind:    InvalidEscape,
			lexeme:  `"\u{D800}"`,
			message: "invalid escape sequence",
			after:   []Kind{EOF},
		},
		{
			name:    "unterminated wins over invalid escape",
			input:   `"\q`,
			kind:    UnterminatedString,
			lexeme:  `"\q`,
			message: "unterminated string literal",
			after:   []Kind{EOF},
		},
		{
			name:    "backslash before newline",
			input:   "\"abc\\\nx",
			kind:    UnterminatedString,
			lexeme:  "\"abc\\",
			message: "unterminated string literal",
			after:   []Kind{Identifier, EOF},
		},
		{
			name:    "backslash at eof",
			input:   `"abc\`,
			kind:    UnterminatedString,
			lexeme:  `"abc\`,
			message: "unterminated string literal",
			after:   []Kind{EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.kind, errs[0].Kind)
			assert.Equal(t, tt.lexeme, errs[0].Lexeme)
			assert.Equal(t, StartPosition, errs[0].Start)
			assert.Contains(t, errs[0].Message, tt.message)

			var kinds []Kind
			for _, tok := range tokens {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tt.after, kinds)
		})
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'"'`, '"'},
		{`'\\'`, '\\'},
		{`'\0'`, 0},
		{`'é'`, 'é'},
		{`'\x41'`, 'A'},
		{`'\u{1F600}'`, '\U0001F600'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, Char, tokens[0].Kind)
			assert.Equal(t, tt.input, tokens[0].Lexeme)
			assert.Equal(t, tt.expected, tokens[0].Value)
		})
	}
}

func TestCharLiteralErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    ErrorKind
		message string
	}{
		{`''`, InvalidCharLiteral, "found 0"},
		{`'ab'`, InvalidCharLiteral, "found 2"},
		{`'a`, UnterminatedString, "unterminated char literal"},
		{`'\q'`, InvalidEscape, "in char literal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, errs := Tokenize(tt.input)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.kind, errs[0].Kind)
			assert.Equal(t, tt.input, errs[0].Lexeme)
			assert.Contains(t, errs[0].Message, tt.message)
			require.Len(t, tokens, 1)
			assert.Equal(t, EOF, tokens[0].Kind)
		})
	}
}
