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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the kcc release. Release builds set it with
// -ldflags "-X github.com/kcc-lang/kcc/go/cmd/kcc/command.Version=...".
var Version = "dev"

// AddVersionCommand adds the version subcommand to the root command
func AddVersionCommand(root *cobra.Command, kc *KccCommand) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show kcc version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kcc %s %s/%s %s\n",
				Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
			return err
		},
	})
}
