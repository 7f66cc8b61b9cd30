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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordTable(t *testing.T) {
	names := KeywordNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, int(keywordEnd-keywordBeg-1))

	for _, kw := range Keywords {
		k, ok := LookupKeyword(kw.Name)
		require.True(t, ok, kw.Name)
		assert.Equal(t, kw.Kind, k)
		assert.True(t, k.IsKeyword())
		assert.Equal(t, kw.Name, k.String())
	}

	assert.False(t, IsKeyword("Fn"))
	assert.False(t, IsKeyword("continued"))
	assert.False(t, IsKeyword(""))
}

func TestOperatorTable(t *testing.T) {
	for k := operatorBeg + 1; k < operatorEnd; k++ {
		got, ok := LookupOperator(k.String())
		require.True(t, ok, "operator %d has no lexeme", int(k))
		assert.Equal(t, k, got)
		assert.True(t, k.IsOperator())
		assert.True(t, IsOpStart(k.String()[0]))
	}
	assert.Equal(t, 3, maxOperatorLength)

	_, ok := LookupOperator("@")
	assert.False(t, ok)
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind     Kind
		name     string
		literal  bool
		keyword  bool
		operator bool
		trivia   bool
	}{
		{kind: EOF, name: "EOF"},
		{kind: Newline, name: "Newline"},
		{kind: Whitespace, name: "Whitespace", trivia: true},
		{kind: Comment, name: "Comment", trivia: true},
		{kind: Identifier, name: "Identifier"},
		{kind: Integer, name: "Integer", literal: true},
		{kind: Char, name: "Char", literal: true},
		{kind: While, name: "while", keyword: true},
		{kind: ShlAssign, name: "<<=", operator: true},
		{kind: RBracket, name: "]", operator: true},
		{kind: Kind(999), name: "Kind(999)"},
		{kind: literalBeg, name: fmt.Sprintf("Kind(%d)", int(literalBeg))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.literal, tt.kind.IsLiteral())
			assert.Equal(t, tt.keyword, tt.kind.IsKeyword())
			assert.Equal(t, tt.operator, tt.kind.IsOperator())
			assert.Equal(t, tt.trivia, tt.kind.IsTrivia())
		})
	}
}

func TestTokenString(t *testing.T) {
	tokens, errs := Tokenize("let x")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)

	assert.Equal(t, `1:1 let "let"`, tokens[0].String())
	assert.Equal(t, `1:5 Identifier "x"`, tokens[1].String())
	assert.Equal(t, "1:6 EOF", tokens[2].String())
	assert.Equal(t, 3, tokens[0].Len())
	assert.Equal(t, 0, tokens[2].Len())
}

func TestPosition(t *testing.T) {
	p := Position{Offset: 10, Line: 2, Column: 4}
	assert.Equal(t, "2:4", p.String())
	assert.True(t, p.IsValid())
	assert.False(t, Position{}.IsValid())
	assert.True(t, StartPosition.Before(p))
	assert.False(t, p.Before(p))
}

func TestCharClasses(t *testing.T) {
	tests := []struct {
		b     byte
		class CharClass
		want  bool
	}{
		{'0', ClassDigit | ClassOctalDigit | ClassBinaryDigit | ClassHexDigit, true},
		{'8', ClassOctalDigit, false},
		{'f', ClassHexDigit, true},
		{'g', ClassHexDigit, false},
		{'_', ClassIdentStart, true},
		{'9', ClassIdentStart, false},
		{'9', ClassIdentCont, true},
		{'\t', ClassWhitespace, true},
		{'\n', ClassWhitespace, false},
		{'<', ClassOpStart, true},
		{'@', ClassOpStart, false},
		{0xC3, ClassAlpha | ClassIdentStart, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, HasCharClass(tt.b, tt.class))
		})
	}
}

func TestErrorMatching(t *testing.T) {
	_, errs := Tokenize("\"open")
	require.Len(t, errs, 1)

	var err error = errs[0]
	assert.Equal(t, "1:1: unterminated string literal", err.Error())
	assert.True(t, errors.Is(err, ErrUnterminatedString))
	assert.False(t, errors.Is(err, ErrInvalidEscape))

	wrapped := fmt.Errorf("compiling main.k: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnterminatedString)

	var lexErr *Error
	require.True(t, errors.As(wrapped, &lexErr))
	assert.Equal(t, UnterminatedString, lexErr.Kind)
}

func TestErrorKinds(t *testing.T) {
	kinds := []ErrorKind{
		UnrecognizedCharacter,
		UnterminatedString,
		UnterminatedComment,
		InvalidEscape,
		InvalidNumericLiteral,
		InvalidCharLiteral,
	}
	for _, k := range kinds {
		assert.NotContains(t, k.String(), "ErrorKind(")
		assert.NotEmpty(t, k.Hint())
	}
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
	assert.Empty(t, ErrorKind(0).Hint())
}
