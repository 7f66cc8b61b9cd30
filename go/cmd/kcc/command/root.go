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

// Package command implements the kcc command line.
package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kcc-lang/kcc/go/compiler"
	"github.com/kcc-lang/kcc/go/diagnostics"
	"github.com/kcc-lang/kcc/go/lexer"
	"github.com/kcc-lang/kcc/go/logutil"
	"github.com/kcc-lang/kcc/go/viperutil"
)

// ErrLexicalErrors is returned by commands that found lexical errors. The
// errors themselves have already been printed.
var ErrLexicalErrors = errors.New("lexical errors found")

// KccCommand holds the configuration shared by all kcc commands
type KccCommand struct {
	reg            *viperutil.Registry
	emitNewlines   viperutil.Value[bool]
	retainTrivia   viperutil.Value[bool]
	nestedComments viperutil.Value[bool]
	format         viperutil.Value[OutputFormat]
	color          viperutil.Value[ColorMode]
	hints          viperutil.Value[bool]
	workers        viperutil.Value[int]
	vc             *viperutil.ViperConfig
	lg             *logutil.Logger

	// fs is where sources are read from and output files written to.
	fs afero.Fs

	watchCmd *KccWatchCmd
}

// GetRootCommand creates and returns the root command for kcc with all subcommands
func GetRootCommand() (*cobra.Command, *KccCommand) {
	reg := viperutil.NewRegistry()
	kc := &KccCommand{
		reg: reg,
		emitNewlines: viperutil.Configure(reg, "lexer.emit-newlines", viperutil.Options[bool]{
			FlagName: "emit-newlines",
		}),
		retainTrivia: viperutil.Configure(reg, "lexer.retain-trivia", viperutil.Options[bool]{
			FlagName: "retain-trivia",
		}),
		nestedComments: viperutil.Configure(reg, "lexer.nested-comments", viperutil.Options[bool]{
			FlagName: "nested-comments",
		}),
		format: viperutil.Configure(reg, "output.format", viperutil.Options[OutputFormat]{
			Default:  FormatText,
			FlagName: "format",
			GetFunc:  getTextValue(FormatText),
		}),
		color: viperutil.Configure(reg, "output.color", viperutil.Options[ColorMode]{
			Default:  ColorAuto,
			FlagName: "color",
			GetFunc:  getTextValue(ColorAuto),
		}),
		hints: viperutil.Configure(reg, "output.hints", viperutil.Options[bool]{
			Default:  true,
			FlagName: "hints",
		}),
		workers: viperutil.Configure(reg, "check.workers", viperutil.Options[int]{
			FlagName: "workers",
		}),
		vc: viperutil.NewViperConfig(reg),
		lg: logutil.NewLogger(reg),
		fs: afero.NewOsFs(),
	}

	kc.lg.OnLoggingSetup(func(logger *slog.Logger) {
		logger.Debug("kcc configured",
			"version", Version,
			"config_file", kc.reg.ConfigFileUsed(),
			"log_level", kc.lg.GetLogLevel(),
			"log_format", kc.lg.GetLogFormat(),
			"log_output", kc.lg.GetLogOutput(),
		)
	})

	root := &cobra.Command{
		Use:   "kcc",
		Short: "Lexer and front-end tools for the k language",
		Long: `kcc scans k source files into position-tagged tokens and reports
lexical errors with their exact source locations.

Every lexical error is reported; a malformed region never stops the scan.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := kc.vc.LoadConfig(kc.reg); err != nil {
				return err
			}
			kc.lg.SetupLogging()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return kc.lg.Close()
		},
	}

	fs := root.PersistentFlags()
	fs.Bool("emit-newlines", kc.emitNewlines.Default(), "Emit a Newline token for every line break")
	fs.Bool("retain-trivia", kc.retainTrivia.Default(), "Emit Whitespace and Comment tokens instead of skipping them")
	fs.Bool("nested-comments", kc.nestedComments.Default(), "Allow /* */ comments to nest")

	format := kc.format.Default()
	fs.VarP(&format, "format", "f", fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", ")))
	color := kc.color.Default()
	fs.Var(&color, "color", fmt.Sprintf("Colorize diagnostics (%s)", strings.Join(colorNames, ", ")))
	fs.Bool("hints", kc.hints.Default(), "Print a fix-it hint under each diagnostic")
	fs.Int("workers", kc.workers.Default(), "Maximum number of files scanned concurrently (0 means one per CPU)")

	kc.vc.RegisterFlags(fs)
	kc.lg.RegisterFlags(fs)

	viperutil.BindFlags(fs,
		kc.emitNewlines,
		kc.retainTrivia,
		kc.nestedComments,
		kc.format,
		kc.color,
		kc.hints,
		kc.workers,
	)

	// Add all subcommands
	AddLexCommand(root, kc)
	AddCheckCommand(root, kc)
	AddReplCommand(root, kc)
	AddWatchCommand(root, kc)
	AddConfigCommand(root, kc)
	AddVersionCommand(root, kc)

	return root, kc
}

// LexerOptions returns the lexer options resolved from flags, environment and
// config file.
func (kc *KccCommand) LexerOptions() lexer.Options {
	return lexer.Options{
		EmitNewlines:   kc.emitNewlines.Get(),
		RetainTrivia:   kc.retainTrivia.Get(),
		NestedComments: kc.nestedComments.Get(),
	}
}

// GetLogger returns the configured logger.
func (kc *KccCommand) GetLogger() *slog.Logger {
	return kc.lg.GetLogger()
}

func (kc *KccCommand) newCompiler() *compiler.Compiler {
	return compiler.New(
		compiler.WithLexerOptions(kc.LexerOptions()),
		compiler.WithLogger(kc.GetLogger()),
		compiler.WithWorkers(kc.workers.Get()),
	)
}

// loadSources reads the named files, or standard input when there are none.
func (kc *KccCommand) loadSources(cmd *cobra.Command, paths []string) ([]compiler.Source, error) {
	if len(paths) == 0 {
		paths = []string{compiler.StdinPath}
	}
	return compiler.NewLoader(kc.fs, cmd.InOrStdin()).LoadAll(paths)
}

// renderOptions returns diagnostic rendering options for output to w.
func (kc *KccCommand) renderOptions(w io.Writer, sources *diagnostics.SourceCache) diagnostics.RenderOptions {
	var color bool
	switch kc.color.Get() {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = diagnostics.ColorSupported(w)
	}
	return diagnostics.RenderOptions{
		Sources: sources,
		Color:   color,
		Hints:   kc.hints.Get(),
	}
}
