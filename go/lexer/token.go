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
	"fmt"
	"strconv"
)

// Kind is the closed set of token categories produced by the lexer.
type Kind int

const (
	Invalid Kind = iota

	// Special tokens
	EOF
	Newline
	Whitespace
	Comment

	Identifier

	literalBeg
	Integer
	Float
	String
	Char
	literalEnd

	keywordBeg
	Fn
	Let
	If
	Else
	For
	While
	Enum
	Struct
	Break
	Continue
	True
	False
	Match
	Return
	keywordEnd

	operatorBeg
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	Eq            // ==
	Bang          // !
	NotEq         // !=
	Lt            // <
	Gt            // >
	LtEq          // <=
	GtEq          // >=
	AndAnd        // &&
	OrOr          // ||
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	Shl           // <<
	Shr           // >>
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	Arrow         // ->
	FatArrow      // =>
	ColonColon    // ::
	Semicolon     // ;
	Colon         // :
	Comma         // ,
	Dot           // .
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	operatorEnd
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Newline:    "Newline",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Identifier: "Identifier",
	Integer:    "Integer",
	Float:      "Float",
	String:     "String",
	Char:       "Char",

	Fn:       "fn",
	Let:      "let",
	If:       "if",
	Else:     "else",
	For:      "for",
	While:    "while",
	Enum:     "enum",
	Struct:   "struct",
	Break:    "break",
	Continue: "continue",
	True:     "true",
	False:    "false",
	Match:    "match",
	Return:   "return",

	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	Eq:            "==",
	Bang:          "!",
	NotEq:         "!=",
	Lt:            "<",
	Gt:            ">",
	LtEq:          "<=",
	GtEq:          ">=",
	AndAnd:        "&&",
	OrOr:          "||",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Shl:           "<<",
	Shr:           ">>",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	Arrow:         "->",
	FatArrow:      "=>",
	ColonColon:    "::",
	Semicolon:     ";",
	Colon:         ":",
	Comma:         ",",
	Dot:           ".",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

// String returns the keyword or operator text for keywords and operators,
// and the class name for everything else.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool { return keywordBeg < k && k < keywordEnd }

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool { return literalBeg < k && k < literalEnd }

// IsOperator reports whether k is an operator or punctuation kind.
func (k Kind) IsOperator() bool { return operatorBeg < k && k < operatorEnd }

// IsTrivia reports whether k is whitespace or a comment.
func (k Kind) IsTrivia() bool { return k == Whitespace || k == Comment }

// Token is one classified unit of source text. Tokens are values; the caller
// owns each one independently of the Lexer that produced it.
type Token struct {
	Kind   Kind
	Lexeme string   // exact source text consumed; empty only for EOF
	Start  Position // position of the first character
	End    Position // position just past the last character
	// Value holds the decoded literal: int64 for Integer, float64 for Float,
	// string for String and rune for Char. It is nil for other kinds.
	Value any
}

// String returns a compact debugging representation of the token.
func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("%s EOF", t.Start)
	}
	return fmt.Sprintf("%s %s %q", t.Start, t.Kind, t.Lexeme)
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End.Offset - t.Start.Offset
}
