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

// operatorKinds maps every operator and punctuation lexeme to its kind.
// It is a package-level value (not built in init) so charclass's init can
// read it.
var operatorKinds = buildOperatorTable()

// maxOperatorLength is the length of the longest lexeme in operatorKinds.
var maxOperatorLength = longestOperator()

func buildOperatorTable() map[string]Kind {
	ops := make(map[string]Kind, operatorEnd-operatorBeg)
	for k := operatorBeg + 1; k < operatorEnd; k++ {
		ops[kindNames[k]] = k
	}
	return ops
}

func longestOperator() int {
	n := 0
	for op := range operatorKinds {
		n = max(n, len(op))
	}
	return n
}

// LookupOperator returns the kind of an exact operator lexeme.
func LookupOperator(lexeme string) (Kind, bool) {
	k, ok := operatorKinds[lexeme]
	return k, ok
}

// matchOperator returns the longest operator that prefixes the unread input.
// Candidates are tried from the longest length down, so the result never
// depends on table order.
func (c *cursor) matchOperator() (Kind, int, bool) {
	rest := c.input[c.pos.Offset:]
	for n := min(maxOperatorLength, len(rest)); n > 0; n-- {
		if k, ok := operatorKinds[rest[:n]]; ok {
			return k, n, true
		}
	}
	return Invalid, 0, false
}
