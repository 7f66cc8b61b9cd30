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

import "sort"

// KeywordInfo describes one reserved word.
type KeywordInfo struct {
	Name string // exact spelling, case-sensitive
	Kind Kind
}

// Keywords is the fixed keyword table.
var Keywords = []KeywordInfo{
	{"break", Break},
	{"continue", Continue},
	{"else", Else},
	{"enum", Enum},
	{"false", False},
	{"fn", Fn},
	{"for", For},
	{"if", If},
	{"let", Let},
	{"match", Match},
	{"return", Return},
	{"struct", Struct},
	{"true", True},
	{"while", While},
}

// keywordLookupMap is built once from Keywords and never mutated afterwards,
// so concurrent lexers may read it freely.
var keywordLookupMap map[string]Kind

// maxKeywordLength lets LookupKeyword reject long identifiers without hashing.
var maxKeywordLength int

func init() {
	keywordLookupMap = make(map[string]Kind, len(Keywords))
	for _, kw := range Keywords {
		keywordLookupMap[kw.Name] = kw.Kind
		if len(kw.Name) > maxKeywordLength {
			maxKeywordLength = len(kw.Name)
		}
	}
}

// LookupKeyword returns the keyword kind for name. Matching is exact: no case
// folding and no prefix matches.
func LookupKeyword(name string) (Kind, bool) {
	if len(name) > maxKeywordLength {
		return Invalid, false
	}
	k, ok := keywordLookupMap[name]
	return k, ok
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := LookupKeyword(name)
	return ok
}

// KeywordNames returns all keyword spellings in sorted order.
func KeywordNames() []string {
	names := make([]string, len(Keywords))
	for i, kw := range Keywords {
		names[i] = kw.Name
	}
	sort.Strings(names)
	return names
}
