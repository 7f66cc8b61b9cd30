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
	"github.com/spf13/cobra"

	"github.com/kcc-lang/kcc/go/viperutil/debug"
)

// AddConfigCommand adds the config subcommand to the root command
func AddConfigCommand(root *cobra.Command, kc *KccCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print every configuration key with the value kcc would use, after
merging defaults, the config file, KCC_* environment variables and flags.

Examples:
  # Show the lexer options after flags are applied
  kcc config --emit-newlines

  # Dump as YAML, usable as a starting kcc.yaml
  kcc config --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return debug.Write(cmd.OutOrStdout(), kc.reg, kc.format.Get().String())
		},
	})
}
