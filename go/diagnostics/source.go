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

package diagnostics

import (
	"strings"
	"sync"
)

// SourceCache holds source texts by path and splits them into lines on first
// use. It is safe for concurrent use.
type SourceCache struct {
	mu    sync.Mutex
	texts map[string]string
	lines map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		texts: make(map[string]string),
		lines: make(map[string][]string),
	}
}

// Add records the text of path, replacing any earlier text.
func (sc *SourceCache) Add(path, text string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.texts[path] = text
	delete(sc.lines, path)
}

// Line returns the 1-based line of path without its line terminator.
func (sc *SourceCache) Line(path string, line int) (string, bool) {
	if sc == nil {
		return "", false
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()

	lines, ok := sc.lines[path]
	if !ok {
		text, ok := sc.texts[path]
		if !ok {
			return "", false
		}
		lines = strings.Split(text, "\n")
		sc.lines[path] = lines
	}
	if line < 1 || line > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line-1], "\r"), true
}
