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
	"unicode/utf8"
)

// Position identifies a point in the input text.
// Offset is a 0-based byte offset; Line and Column are 1-based, and Column
// counts code points from the start of the line.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// StartPosition is the position of the first character of any input.
var StartPosition = Position{Offset: 0, Line: 1, Column: 1}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p has been set by a scan.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before reports whether p lies strictly before q in the input.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// cursor tracks the read position over a borrowed input string.
// All movement goes through advance so line/column bookkeeping stays in one place.
type cursor struct {
	input string
	pos   Position
}

func newCursor(input string) cursor {
	return cursor{input: input, pos: StartPosition}
}

func (c *cursor) atEOF() bool {
	return c.pos.Offset >= len(c.input)
}

// peek returns the byte at the cursor without advancing.
func (c *cursor) peek() (byte, bool) {
	return c.peekAt(0)
}

// peekAt returns the byte n bytes past the cursor without advancing.
func (c *cursor) peekAt(n int) (byte, bool) {
	i := c.pos.Offset + n
	if i >= len(c.input) {
		return 0, false
	}
	return c.input[i], true
}

// hasPrefix reports whether the unread input starts with s.
func (c *cursor) hasPrefix(s string) bool {
	rest := c.input[c.pos.Offset:]
	return len(rest) >= len(s) && rest[:len(s)] == s
}

// advance consumes one code point and returns it. An invalid UTF-8 byte is
// consumed on its own and returned as utf8.RuneError.
func (c *cursor) advance() rune {
	if c.atEOF() {
		return 0
	}
	b := c.input[c.pos.Offset]
	r, size := rune(b), 1
	if b >= utf8.RuneSelf {
		r, size = utf8.DecodeRuneInString(c.input[c.pos.Offset:])
	}
	c.pos.Offset += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r
}

// advanceBy consumes n code points.
func (c *cursor) advanceBy(n int) {
	for i := 0; i < n && !c.atEOF(); i++ {
		c.advance()
	}
}

// textFrom returns the input consumed since start.
func (c *cursor) textFrom(start Position) string {
	return c.input[start.Offset:c.pos.Offset]
}
