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

// Package lexer converts k source text into a stream of position-tagged
// tokens.
//
// A Lexer is a forward-only, pull-based generator: each call to Next returns
// one token, one *Error, or the EOF token. Errors never end the stream; the
// lexer has already skipped the malformed region, so callers can collect every
// lexical error in a single pass.
package lexer

import (
	"fmt"
	"iter"
)

// Options controls optional lexer behavior.
type Options struct {
	// EmitNewlines makes each '\n' a Newline token instead of whitespace.
	EmitNewlines bool `mapstructure:"emit-newlines" yaml:"emit-newlines"`
	// RetainTrivia makes whitespace runs and comments Whitespace and Comment
	// tokens instead of skipping them.
	RetainTrivia bool `mapstructure:"retain-trivia" yaml:"retain-trivia"`
	// NestedComments lets block comments nest.
	NestedComments bool `mapstructure:"nested-comments" yaml:"nested-comments"`
}

// Option configures a Lexer.
type Option func(*Options)

// WithNewlines emits Newline tokens.
func WithNewlines() Option {
	return func(o *Options) { o.EmitNewlines = true }
}

// WithTrivia emits Whitespace and Comment tokens.
func WithTrivia() Option {
	return func(o *Options) { o.RetainTrivia = true }
}

// WithNestedComments allows /* */ comments to nest.
func WithNestedComments() Option {
	return func(o *Options) { o.NestedComments = true }
}

// WithOptions replaces all options with opts.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// noCopy makes go vet's copylocks check flag copies of a Lexer. Two copies
// would share the input but advance independently.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Lexer scans one input text. It borrows the input for its whole lifetime and
// must not be copied after first use. A Lexer is not safe for concurrent use.
type Lexer struct {
	_ noCopy

	cur  cursor
	opts Options

	done bool
	eof  Token
}

// New returns a Lexer positioned at the start of input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{cur: newCursor(input)}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l
}

// Options returns the options the lexer was built with.
func (l *Lexer) Options() Options {
	return l.opts
}

// Position returns the current cursor position.
func (l *Lexer) Position() Position {
	return l.cur.pos
}

// Next returns the next token. On malformed input it returns a zero Token and
// a *Error; the cursor has moved past the bad region, so the following call
// makes progress. Once the EOF token has been returned, every later call
// returns the same EOF token.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		return l.eof, nil
	}

	if !l.opts.RetainTrivia {
		if err := l.skipTrivia(); err != nil {
			return Token{}, err
		}
	}

	if l.cur.atEOF() {
		l.done = true
		l.eof = Token{Kind: EOF, Start: l.cur.pos, End: l.cur.pos}
		return l.eof, nil
	}

	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	return tok, nil
}

// scan dispatches on the character at the cursor to exactly one sub-scanner.
// The cursor is not at EOF.
func (l *Lexer) scan() (Token, *Error) {
	start := l.cur.pos
	b, _ := l.cur.peek()

	switch {
	case b == '\n' && l.opts.EmitNewlines:
		l.cur.advance()
		return l.token(Newline, start, nil), nil

	case l.opts.RetainTrivia && (IsWhitespace(b) || b == '\n'):
		l.skipWhitespace()
		return l.token(Whitespace, start, nil), nil

	case l.opts.RetainTrivia && l.cur.hasPrefix("//"):
		l.skipLineComment()
		return l.token(Comment, start, nil), nil

	case l.opts.RetainTrivia && l.cur.hasPrefix("/*"):
		if err := l.skipBlockComment(start); err != nil {
			return Token{}, err
		}
		return l.token(Comment, start, nil), nil

	case IsIdentStart(b):
		return l.scanIdentifier(start), nil

	case IsDigit(b):
		return l.scanNumber(start)

	case b == '"':
		return l.scanString(start)

	case b == '\'':
		return l.scanChar(start)

	case IsOpStart(b):
		if tok, ok := l.scanOperator(start); ok {
			return tok, nil
		}
	}

	// Minimal-progress recovery: exactly one code point.
	r := l.cur.advance()
	return Token{}, l.errorf(UnrecognizedCharacter, start, "unrecognized character %q", r)
}

// scanIdentifier consumes a maximal [A-Za-z0-9_] run and classifies it as a
// keyword or an identifier.
func (l *Lexer) scanIdentifier(start Position) Token {
	l.cur.advance()
	for {
		b, ok := l.cur.peek()
		if !ok || !IsIdentCont(b) {
			break
		}
		l.cur.advance()
	}

	text := l.cur.textFrom(start)
	if kind, ok := LookupKeyword(text); ok {
		return l.token(kind, start, nil)
	}
	return l.token(Identifier, start, nil)
}

// scanOperator consumes the longest operator at the cursor.
func (l *Lexer) scanOperator(start Position) (Token, bool) {
	kind, n, ok := l.cur.matchOperator()
	if !ok {
		return Token{}, false
	}
	l.cur.advanceBy(n)
	return l.token(kind, start, nil), true
}

// token builds a token spanning start to the cursor.
func (l *Lexer) token(kind Kind, start Position, value any) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.cur.textFrom(start),
		Start:  start,
		End:    l.cur.pos,
		Value:  value,
	}
}

// errorf builds an error spanning start to the cursor.
func (l *Lexer) errorf(kind ErrorKind, start Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Start:   start,
		End:     l.cur.pos,
		Lexeme:  l.cur.textFrom(start),
		Message: fmt.Sprintf(format, args...),
	}
}

// All returns an iterator over every token and error up to, but not
// including, EOF. Breaking out of the loop leaves the lexer where it stopped.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if err == nil && tok.Kind == EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Tokenize scans input to the end. The returned tokens end with the EOF
// token; errors are returned in input order.
func Tokenize(input string, opts ...Option) ([]Token, []*Error) {
	l := New(input, opts...)
	var (
		tokens []Token
		errs   []*Error
	)
	for {
		tok, err := l.Next()
		if err != nil {
			errs = append(errs, err.(*Error))
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, errs
		}
	}
}
