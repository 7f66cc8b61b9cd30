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
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kcc-lang/kcc/go/compiler"
	"github.com/kcc-lang/kcc/go/diagnostics"
)

// KccCheckCmd holds the check command configuration
type KccCheckCmd struct {
	kccCmd *KccCommand
}

// AddCheckCommand adds the check subcommand to the root command
func AddCheckCommand(root *cobra.Command, kc *KccCommand) {
	checkCmd := &KccCheckCmd{
		kccCmd: kc,
	}
	root.AddCommand(checkCmd.createCommand())
}

func (c *KccCheckCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report lexical errors in k source files",
		Long: `Scan k source files concurrently and report every lexical error.

Errors are printed with the offending source line and a caret underline. The
command exits with a non-zero status when any file has lexical errors.

Examples:
  # Check all files in a directory
  kcc check src/*.k

  # Check with at most two files scanned at once
  kcc check --workers 2 src/*.k

  # Machine-readable diagnostics
  kcc check --format json main.k`,
		RunE: c.runCheck,
	}
}

func (c *KccCheckCmd) runCheck(cmd *cobra.Command, args []string) error {
	srcs, err := c.kccCmd.loadSources(cmd, args)
	if err != nil {
		return err
	}
	return c.kccCmd.check(cmd.Context(), cmd.OutOrStdout(), srcs)
}

// check scans srcs and prints their diagnostics to w. It returns
// ErrLexicalErrors when any source had lexical errors.
func (kc *KccCommand) check(ctx context.Context, w io.Writer, srcs []compiler.Source) error {
	units, err := kc.newCompiler().ExecuteAll(ctx, srcs)
	if err != nil {
		return err
	}

	sources := diagnostics.NewSourceCache()
	var diags []diagnostics.Diagnostic
	for _, unit := range units {
		sources.Add(unit.Source.Path, unit.Source.Text)
		diags = append(diags, unit.Diagnostics()...)
	}
	diagnostics.Sort(diags)

	kc.GetLogger().Debug("check finished", "files", len(units), "diagnostics", len(diags))

	if err := writeDiagnostics(w, diags, kc.format.Get(), kc.renderOptions(w, sources)); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}

	if diagnostics.Count(diags, diagnostics.Error) > 0 {
		return ErrLexicalErrors
	}
	return nil
}

// writeDiagnostics prints diags in the given format. Text output ends with a
// summary line when there is anything to report.
func writeDiagnostics(w io.Writer, diags []diagnostics.Diagnostic, format OutputFormat, opts diagnostics.RenderOptions) error {
	if diags == nil {
		diags = []diagnostics.Diagnostic{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(diags)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(diags); err != nil {
			return err
		}
		return enc.Close()
	}

	if err := diagnostics.Render(w, diags, opts); err != nil {
		return err
	}
	if summary := diagnostics.Summary(diags); summary != "" {
		_, err := fmt.Fprintf(w, "%s generated\n", summary)
		return err
	}
	return nil
}
