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
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcc-lang/kcc/go/compiler"
	"github.com/kcc-lang/kcc/go/lexer"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected OutputFormat
		wantErr  bool
	}{
		{in: "text", expected: FormatText},
		{in: "JSON", expected: FormatJSON},
		{in: "Yaml", expected: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f OutputFormat
			err := f.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "<UNKNOWN>", OutputFormat(9).String())
	assert.Equal(t, "format", new(OutputFormat).Type())
}

func TestColorMode(t *testing.T) {
	var c ColorMode
	require.NoError(t, c.Set("ALWAYS"))
	assert.Equal(t, ColorAlways, c)
	require.NoError(t, c.Set("never"))
	assert.Equal(t, ColorNever, c)
	require.Error(t, c.Set("sometimes"))

	text, err := ColorAuto.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "auto", string(text))
}

func TestGetTextValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected OutputFormat
	}{
		{name: "enum default", value: FormatYAML, expected: FormatYAML},
		{name: "name", value: "json", expected: FormatJSON},
		{name: "invalid falls back", value: "xml", expected: FormatText},
		{name: "unset", expected: FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			if tt.value != nil {
				v.Set("output.format", tt.value)
			}
			get := getTextValue(FormatText)(v)
			assert.Equal(t, tt.expected, get("output.format"))
		})
	}
}

func TestRecords(t *testing.T) {
	text := "x @ 'ab' 1"
	tokens, errs := lexer.Tokenize(text)
	unit := &compiler.Unit{
		Source: compiler.Source{Path: "main.k", Text: text},
		Tokens: tokens,
		Errors: errs,
	}

	records := Records(unit)
	var kinds []string
	for _, r := range records {
		kinds = append(kinds, r.Kind)
		assert.Equal(t, "main.k", r.Path)
	}
	assert.Equal(t, []string{"Identifier", "Error", "Error", "Integer", "EOF"}, kinds)

	require.NotNil(t, records[1].Error)
	assert.Equal(t, "L0001", records[1].Error.Code)
	require.NotNil(t, records[2].Error)
	assert.Equal(t, "InvalidCharLiteral", records[2].Error.Kind)
	assert.Equal(t, "L0006", records[2].Error.Code)
	assert.Equal(t, int64(1), records[3].Value)
}

func TestFormatRecord(t *testing.T) {
	pos := func(line, col int) lexer.Position { return lexer.Position{Line: line, Column: col} }

	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name:     "keyword",
			record:   Record{Kind: "let", Lexeme: "let", Start: pos(1, 1), End: pos(1, 4)},
			expected: `1:1-1:4 let "let"`,
		},
		{
			name:     "string value",
			record:   Record{Kind: "String", Lexeme: `"a\tb"`, Start: pos(2, 3), End: pos(2, 9), Value: "a\tb"},
			expected: `2:3-2:9 String "\"a\\tb\"" "a\tb"`,
		},
		{
			name:     "eof",
			record:   Record{Kind: "EOF", Start: pos(3, 1), End: pos(3, 1)},
			expected: "3:1-3:1 EOF",
		},
		{
			name: "error",
			record: Record{
				Kind: "Error", Lexeme: "0x", Start: pos(1, 1), End: pos(1, 3),
				Error: &RecordError{Kind: "InvalidNumericLiteral", Code: "L0005", Message: "invalid numeric literal \"0x\""},
			},
			expected: `1:1-1:3 error L0005 invalid numeric literal "0x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRecord(tt.record))
		})
	}
}
