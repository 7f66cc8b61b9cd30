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

// ErrorKind classifies why a region of input could not become a token.
// Every kind is recoverable: the lexer has already advanced past the region
// when the error is returned.
type ErrorKind int

const (
	UnrecognizedCharacter ErrorKind = iota + 1
	UnterminatedString
	UnterminatedComment
	InvalidEscape
	InvalidNumericLiteral
	InvalidCharLiteral
)

var errorKindNames = map[ErrorKind]string{
	UnrecognizedCharacter: "UnrecognizedCharacter",
	UnterminatedString:    "UnterminatedString",
	UnterminatedComment:   "UnterminatedComment",
	InvalidEscape:         "InvalidEscape",
	InvalidNumericLiteral: "InvalidNumericLiteral",
	InvalidCharLiteral:    "InvalidCharLiteral",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Hint returns a short suggestion for fixing an error of this kind.
func (k ErrorKind) Hint() string {
	switch k {
	case UnrecognizedCharacter:
		return "remove the character or place it inside a string literal"
	case UnterminatedString:
		return "add a closing quote before the end of the line"
	case UnterminatedComment:
		return "add */ to close the comment"
	case InvalidEscape:
		return `use a valid escape sequence like \n, \t, \\, \", \x41 or \u{1F600}`
	case InvalidNumericLiteral:
		return "separate the number from following text and check its digits, decimal point and exponent"
	case InvalidCharLiteral:
		return "a char literal holds exactly one character; use a string for more"
	default:
		return ""
	}
}

// Error describes a malformed region of input. It is returned by Lexer.Next
// in place of a token and never stops the stream.
type Error struct {
	Kind    ErrorKind
	Start   Position // first character of the malformed region
	End     Position // just past the last consumed character
	Lexeme  string   // the consumed malformed text
	Message string
}

// Error renders the error as "line:column: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Start, e.Message)
}

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, lexer.ErrUnterminatedString).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for matching with errors.Is.
var (
	ErrUnrecognizedCharacter = &Error{Kind: UnrecognizedCharacter, Message: "unrecognized character"}
	ErrUnterminatedString    = &Error{Kind: UnterminatedString, Message: "unterminated string literal"}
	ErrUnterminatedComment   = &Error{Kind: UnterminatedComment, Message: "unterminated block comment"}
	ErrInvalidEscape         = &Error{Kind: InvalidEscape, Message: "invalid escape sequence"}
	ErrInvalidNumericLiteral = &Error{Kind: InvalidNumericLiteral, Message: "invalid numeric literal"}
	ErrInvalidCharLiteral    = &Error{Kind: InvalidCharLiteral, Message: "invalid char literal"}
)
