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

// Package diagnostics turns lexical errors into user-facing reports with
// stable codes, source excerpts and optional color.
package diagnostics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/kcc-lang/kcc/go/lexer"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

var severityNames = map[Severity]string{
	Error:   "error",
	Warning: "warning",
	Note:    "note",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	for sev, name := range severityNames {
		if name == string(text) {
			*s = sev
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", text)
}

// Diagnostic is one report about a source region. Lines and columns are
// 1-based; columns count code points. EndLine and EndColumn are exclusive.
type Diagnostic struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	Code      string   `json:"code" yaml:"code"`
	Path      string   `json:"path,omitempty" yaml:"path,omitempty"`
	Line      int      `json:"line" yaml:"line"`
	Column    int      `json:"column" yaml:"column"`
	EndLine   int      `json:"end_line" yaml:"end_line"`
	EndColumn int      `json:"end_column" yaml:"end_column"`
	Message   string   `json:"message" yaml:"message"`
	Hint      string   `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Location renders "path:line:column", omitting the path when it is empty.
func (d Diagnostic) Location() string {
	if d.Path == "" {
		return fmt.Sprintf("%d:%d", d.Line, d.Column)
	}
	return fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column)
}

// String renders the one-line form "path:line:column: severity: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location(), d.Severity, d.Message)
}

var lexCodes = map[lexer.ErrorKind]string{
	lexer.UnrecognizedCharacter: "L0001",
	lexer.UnterminatedString:    "L0002",
	lexer.UnterminatedComment:   "L0003",
	lexer.InvalidEscape:         "L0004",
	lexer.InvalidNumericLiteral: "L0005",
	lexer.InvalidCharLiteral:    "L0006",
}

// Code returns the stable diagnostic code for a lexical error kind.
func Code(kind lexer.ErrorKind) string {
	if code, ok := lexCodes[kind]; ok {
		return code
	}
	return "L0000"
}

// FromLexError converts a lexical error found in the file at path.
func FromLexError(path string, err *lexer.Error) Diagnostic {
	return Diagnostic{
		Severity:  Error,
		Code:      Code(err.Kind),
		Path:      path,
		Line:      err.Start.Line,
		Column:    err.Start.Column,
		EndLine:   err.End.Line,
		EndColumn: err.End.Column,
		Message:   err.Message,
		Hint:      err.Kind.Hint(),
	}
}

// FromLexErrors converts every error of one file, preserving order.
func FromLexErrors(path string, errs []*lexer.Error) []Diagnostic {
	diags := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		diags = append(diags, FromLexError(path, err))
	}
	return diags
}

// Sort orders diagnostics by path, then position. Diagnostics at the same
// position keep their relative order.
func Sort(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			strings.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}

// Count returns the number of diagnostics with the given severity.
func Count(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Summary renders a count line such as "2 errors" or "1 error, 1 warning".
// It returns "" when diags is empty.
func Summary(diags []Diagnostic) string {
	var parts []string
	for _, sev := range []Severity{Error, Warning, Note} {
		n := Count(diags, sev)
		switch {
		case n == 1:
			parts = append(parts, fmt.Sprintf("1 %s", sev))
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", n, sev))
		}
	}
	return strings.Join(parts, ", ")
}
