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
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kcc-lang/kcc/go/tools/fileutil"
)

// KccLexCmd holds the lex command configuration
type KccLexCmd struct {
	kccCmd *KccCommand
	out    string
}

// AddLexCommand adds the lex subcommand to the root command
func AddLexCommand(root *cobra.Command, kc *KccCommand) {
	lexCmd := &KccLexCmd{
		kccCmd: kc,
	}
	root.AddCommand(lexCmd.createCommand())
}

func (l *KccLexCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex [files...]",
		Short: "Print the tokens of k source files",
		Long: `Scan k source files and print every token and lexical error in input order.

Each record carries its kind, the exact lexeme and the start and end positions.
Standard input is read when no files are given or a file is "-".

Examples:
  # Print tokens of a file
  kcc lex main.k

  # Print tokens as JSON, keeping whitespace and comments
  kcc lex --format json --retain-trivia main.k

  # Write YAML tokens to a file
  echo 'let x = 1;' | kcc lex -f yaml -o tokens.yaml`,
		RunE: l.runLex,
	}
	cmd.Flags().StringVarP(&l.out, "out", "o", "", "Write tokens to this file instead of standard output")
	return cmd
}

func (l *KccLexCmd) runLex(cmd *cobra.Command, args []string) error {
	kc := l.kccCmd
	logger := kc.GetLogger()

	srcs, err := kc.loadSources(cmd, args)
	if err != nil {
		return err
	}

	units, err := kc.newCompiler().ExecuteAll(cmd.Context(), srcs)
	if err != nil {
		return err
	}

	var records []Record
	failed := false
	for _, unit := range units {
		records = append(records, Records(unit)...)
		failed = failed || unit.HasErrors()
	}

	var w io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if l.out != "" {
		w = &buf
	}
	if err := writeRecords(w, records, kc.format.Get(), len(units) > 1); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}
	if l.out != "" {
		if err := fileutil.AtomicWriteFile(kc.fs, l.out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", l.out, err)
		}
		logger.Info("wrote tokens", "path", l.out, "records", len(records))
	}

	if failed {
		return ErrLexicalErrors
	}
	return nil
}
