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
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// RenderOptions controls how Render formats diagnostics.
type RenderOptions struct {
	// Sources supplies the source lines shown under each diagnostic. Without
	// it only the header line is printed.
	Sources *SourceCache
	// Color enables ANSI styling.
	Color bool
	// Hints prints the fix-it hint of each diagnostic.
	Hints bool
}

// Render writes each diagnostic as a header line
//
//	path:line:column: severity: message
//
// followed, when the source line is known, by the line and a caret underline:
//
//	  3 | let s = "abc
//	    |         ^^^^
//	    = hint: add a closing quote before the end of the line
func Render(w io.Writer, diags []Diagnostic, opts RenderOptions) error {
	r := newRenderer(w, opts)
	for _, d := range diags {
		if _, err := io.WriteString(w, r.render(d)); err != nil {
			return err
		}
	}
	return nil
}

// ColorSupported reports whether w looks like a terminal that accepts ANSI
// colors. It honors NO_COLOR and CLICOLOR_FORCE.
func ColorSupported(w io.Writer) bool {
	return lipgloss.NewRenderer(w).ColorProfile() != termenv.Ascii
}

type renderer struct {
	opts RenderOptions

	severity map[Severity]lipgloss.Style
	location lipgloss.Style
	message  lipgloss.Style
	gutter   lipgloss.Style
	hint     lipgloss.Style
}

func newRenderer(w io.Writer, opts RenderOptions) *renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI256)

	return &renderer{
		opts: opts,
		severity: map[Severity]lipgloss.Style{
			Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			Warning: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Note:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		},
		location: lr.NewStyle().Bold(true),
		message:  lr.NewStyle().Bold(true),
		gutter:   lr.NewStyle().Foreground(lipgloss.Color("12")),
		hint:     lr.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// paint applies style only when color is enabled. Source text is never
// painted, so tabs and spacing in excerpts stay intact.
func (r *renderer) paint(style lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Render(s)
}

func (r *renderer) render(d Diagnostic) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s\n",
		r.paint(r.location, d.Location()),
		r.paint(r.severity[d.Severity], d.Severity.String()),
		r.paint(r.message, d.Message),
	)

	line, ok := r.opts.Sources.Line(d.Path, d.Line)
	if !ok {
		if r.opts.Hints && d.Hint != "" {
			fmt.Fprintf(&sb, "  %s %s\n", r.paint(r.gutter, "="), r.paint(r.hint, "hint: "+d.Hint))
		}
		return sb.String()
	}

	num := strconv.Itoa(d.Line)
	pad := strings.Repeat(" ", len(num))
	bar := r.paint(r.gutter, "|")

	fmt.Fprintf(&sb, " %s %s %s\n", r.paint(r.gutter, num), bar, line)
	fmt.Fprintf(&sb, " %s %s %s%s\n", pad, bar,
		indent(line, d.Column),
		r.paint(r.severity[d.Severity], strings.Repeat("^", caretWidth(d, line))),
	)
	if r.opts.Hints && d.Hint != "" {
		fmt.Fprintf(&sb, " %s %s %s\n", pad, r.paint(r.gutter, "="), r.paint(r.hint, "hint: "+d.Hint))
	}
	return sb.String()
}

// indent returns the whitespace that lines a caret up under column col of
// line. Tabs are copied so the caret lands under the same display column.
func indent(line string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// caretWidth is the number of code points underlined on the first line of d.
// A region continuing onto later lines is underlined to the end of the line.
func caretWidth(d Diagnostic, line string) int {
	var width int
	switch {
	case d.EndLine == d.Line:
		width = d.EndColumn - d.Column
	case d.EndLine > d.Line:
		width = utf8.RuneCountInString(line) - d.Column + 1
	}
	return max(width, 1)
}
