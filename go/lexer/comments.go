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

// skipTrivia consumes whitespace and comments until a token start or EOF.
// An unterminated block comment is reported after the cursor has moved to
// EOF, so the next call to Next returns the EOF token.
func (l *Lexer) skipTrivia() *Error {
	for {
		b, ok := l.cur.peek()
		if !ok {
			return nil
		}

		switch {
		case IsWhitespace(b) || (b == '\n' && !l.opts.EmitNewlines):
			l.skipWhitespace()
		case l.cur.hasPrefix("//"):
			l.skipLineComment()
		case l.cur.hasPrefix("/*"):
			if err := l.skipBlockComment(l.cur.pos); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// skipWhitespace consumes a maximal whitespace run. Newlines belong to the run
// unless they are emitted as tokens.
func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.cur.peek()
		if !ok {
			return
		}
		if !IsWhitespace(b) && (b != '\n' || l.opts.EmitNewlines) {
			return
		}
		l.cur.advance()
	}
}

// skipLineComment consumes "//" up to, but not including, the next newline.
func (l *Lexer) skipLineComment() {
	l.cur.advanceBy(2)
	for {
		b, ok := l.cur.peek()
		if !ok || b == '\n' {
			return
		}
		l.cur.advance()
	}
}

// skipBlockComment consumes a "/* ... */" comment starting at the cursor.
func (l *Lexer) skipBlockComment(start Position) *Error {
	l.cur.advanceBy(2)
	depth := 1
	for depth > 0 {
		switch {
		case l.cur.atEOF():
			return l.errorf(UnterminatedComment, start, "unterminated block comment")
		case l.opts.NestedComments && l.cur.hasPrefix("/*"):
			l.cur.advanceBy(2)
			depth++
		case l.cur.hasPrefix("*/"):
			l.cur.advanceBy(2)
			depth--
		default:
			l.cur.advance()
		}
	}
	return nil
}
