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

package command

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kcc-lang/kcc/go/compiler"
	"github.com/kcc-lang/kcc/go/lexer"
)

// OutputFormat selects how tokens and diagnostics are printed.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
	FormatYAML
)

var formatNames = []string{"text", "json", "yaml"}

func (f *OutputFormat) Set(arg string) error {
	return f.UnmarshalText([]byte(arg))
}

func (f OutputFormat) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "<UNKNOWN>"
}

// MarshalText renders the format by name in config dumps.
func (f OutputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *OutputFormat) Type() string { return "format" }

// UnmarshalText lets config files and environment variables name the format.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	for i, name := range formatNames {
		if strings.EqualFold(name, string(text)) {
			*f = OutputFormat(i)
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (options: %s)", text, strings.Join(formatNames, ", "))
}

// ColorMode controls ANSI color in diagnostics.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var colorNames = []string{"auto", "always", "never"}

func (c *ColorMode) Set(arg string) error {
	return c.UnmarshalText([]byte(arg))
}

func (c ColorMode) String() string {
	if int(c) >= 0 && int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "<UNKNOWN>"
}

func (c ColorMode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ColorMode) Type() string { return "color" }

func (c *ColorMode) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if strings.EqualFold(name, string(text)) {
			*c = ColorMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color mode %q (options: %s)", text, strings.Join(colorNames, ", "))
}

// getTextValue decodes key through mapstructure so the value may be stored as
// the enum itself (defaults), or as its name (flags, env, config file).
func getTextValue[T any](fallback T) func(v *viper.Viper) func(key string) T {
	return func(v *viper.Viper) func(key string) T {
		return func(key string) T {
			var out T
			hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(mapstructure.TextUnmarshallerHookFunc()))
			if err := v.UnmarshalKey(key, &out, hook); err != nil {
				slog.Warn("invalid config value, using default", "key", key, "error", err)
				return fallback
			}
			return out
		}
	}
}

// Record is one token or lexical error in lex output.
type Record struct {
	Path   string         `json:"path" yaml:"path"`
	Kind   string         `json:"kind" yaml:"kind"`
	Lexeme string         `json:"lexeme" yaml:"lexeme"`
	Start  lexer.Position `json:"start" yaml:"start"`
	End    lexer.Position `json:"end" yaml:"end"`
	Value  any            `json:"value,omitempty" yaml:"value,omitempty"`
	Error  *RecordError   `json:"error,omitempty" yaml:"error,omitempty"`
}

// RecordError describes a lexical error in lex output.
type RecordError struct {
	Kind    string `json:"kind" yaml:"kind"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Records interleaves a unit's tokens and errors in input order.
func Records(unit *compiler.Unit) []Record {
	records := make([]Record, 0, len(unit.Tokens)+len(unit.Errors))
	diags := unit.Diagnostics()
	ti, ei := 0, 0
	for ti < len(unit.Tokens) || ei < len(unit.Errors) {
		if ei < len(unit.Errors) && (ti == len(unit.Tokens) || unit.Errors[ei].Start.Offset <= unit.Tokens[ti].Start.Offset) {
			e := unit.Errors[ei]
			records = append(records, Record{
				Path:   unit.Source.Path,
				Kind:   "Error",
				Lexeme: e.Lexeme,
				Start:  e.Start,
				End:    e.End,
				Error: &RecordError{
					Kind:    e.Kind.String(),
					Code:    diags[ei].Code,
					Message: e.Message,
				},
			})
			ei++
			continue
		}

		tok := unit.Tokens[ti]
		records = append(records, Record{
			Path:   unit.Source.Path,
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Start:  tok.Start,
			End:    tok.End,
			Value:  recordValue(tok.Value),
		})
		ti++
	}
	return records
}

// recordValue renders char values as strings instead of code point numbers.
func recordValue(v any) any {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return v
}

// writeRecords prints records in the given format. Text output starts each
// file with a "# path" header when withHeaders is set.
func writeRecords(w io.Writer, records []Record, format OutputFormat, withHeaders bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}

	path := ""
	for i, r := range records {
		if withHeaders && (i == 0 || r.Path != path) {
			if _, err := fmt.Fprintf(w, "# %s\n", r.Path); err != nil {
				return err
			}
			path = r.Path
		}
		if _, err := io.WriteString(w, formatRecord(r)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// formatRecord renders the text form of a record:
//
//	1:1-1:4 let "let"
//	1:9-1:12 Float "1.5" 1.5
//	2:1-2:5 error L0002 unterminated string literal
func formatRecord(r Record) string {
	span := r.Start.String() + "-" + r.End.String()
	switch {
	case r.Error != nil:
		return fmt.Sprintf("%s error %s %s", span, r.Error.Code, r.Error.Message)
	case r.Kind == lexer.EOF.String():
		return span + " EOF"
	case r.Value != nil:
		return fmt.Sprintf("%s %s %q %#v", span, r.Kind, r.Lexeme, r.Value)
	default:
		return fmt.Sprintf("%s %s %q", span, r.Kind, r.Lexeme)
	}
}
