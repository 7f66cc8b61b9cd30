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


// kcc scans k source files into tokens and reports lexical errors.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kcc-lang/kcc/go/cmd/kcc/command"
	"github.com/kcc-lang/kcc/go/viperutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, _ := command.GetRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		// Lexical errors and a missing config file have already been reported.
		if !errors.Is(err, command.ErrLexicalErrors) && !errors.Is(err, viperutil.ErrExitOnConfigFileNotFound) {
			slog.Error("Command execution failed", "error", err)
		}
		stop()
		os.Exit(1)
	}
}
