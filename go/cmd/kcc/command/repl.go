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
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kcc-lang/kcc/go/compiler"
	"github.com/kcc-lang/kcc/go/diagnostics"
	"github.com/kcc-lang/kcc/go/lexer"
)

const (
	replPrompt = ">>> "
	replPath   = "<repl>"
)

// KccReplCmd holds the repl command configuration
type KccReplCmd struct {
	kccCmd *KccCommand
}

// AddReplCommand adds the repl subcommand to the root command
func AddReplCommand(root *cobra.Command, kc *KccCommand) {
	replCmd := &KccReplCmd{
		kccCmd: kc,
	}
	root.AddCommand(replCmd.createCommand())
}

func (r *KccReplCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively print the tokens of each input line",
		Long: `Read k source one line at a time and print its tokens.

Lexical errors are shown with a caret under the offending text. Each line is
scanned on its own. The session ends at end of input (Ctrl-D).`,
		Args: cobra.NoArgs,
		RunE: r.runRepl,
	}
}

func (r *KccReplCmd) runRepl(cmd *cobra.Command, args []string) error {
	kc := r.kccCmd
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	c := kc.newCompiler()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if _, err := io.WriteString(out, replPrompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		unit, err := c.Execute(ctx, compiler.Source{Path: replPath, Text: scanner.Text()})
		if err != nil {
			return err
		}
		if err := r.printUnit(out, unit); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Leave the shell prompt on its own line.
	_, err := io.WriteString(out, "\n")
	return err
}

// printUnit prints one line's tokens followed by its diagnostics.
func (r *KccReplCmd) printUnit(w io.Writer, unit *compiler.Unit) error {
	for _, rec := range Records(unit) {
		if rec.Error != nil || rec.Kind == lexer.EOF.String() {
			continue
		}
		if _, err := io.WriteString(w, formatRecord(rec)+"\n"); err != nil {
			return err
		}
	}
	if !unit.HasErrors() {
		return nil
	}

	sources := diagnostics.NewSourceCache()
	sources.Add(unit.Source.Path, unit.Source.Text)
	return diagnostics.Render(w, unit.Diagnostics(), r.kccCmd.renderOptions(w, sources))
}
