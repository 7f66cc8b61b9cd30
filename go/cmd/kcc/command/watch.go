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
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kcc-lang/kcc/go/compiler"
)

// ErrWatchStdin is returned when watch is asked to follow standard input.
var ErrWatchStdin = errors.New("watch cannot follow standard input")

// KccWatchCmd holds the watch command configuration
type KccWatchCmd struct {
	kccCmd *KccCommand

	// testHooks is only set by tests.
	testHooks watchTestHooks
}

// watchTestHooks lets tests synchronize with a running watch.
type watchTestHooks struct {
	// ready is called once the watcher is installed and the first check has
	// run.
	ready func()
	// checked is called after every check with its result.
	checked func(error)
}

// AddWatchCommand adds the watch subcommand to the root command
func AddWatchCommand(root *cobra.Command, kc *KccCommand) {
	watchCmd := &KccWatchCmd{
		kccCmd: kc,
	}
	kc.watchCmd = watchCmd
	root.AddCommand(watchCmd.createCommand())
}

func (w *KccWatchCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch files...",
		Short: "Re-check k source files whenever they change",
		Long: `Check k source files, then check them again every time one of them is
written or recreated. Runs until interrupted.

Examples:
  # Watch two files
  kcc watch main.k util.k`,
		Args: cobra.MinimumNArgs(1),
		RunE: w.runWatch,
	}
}

func (w *KccWatchCmd) runWatch(cmd *cobra.Command, args []string) error {
	kc := w.kccCmd
	ctx := cmd.Context()
	logger := kc.GetLogger()

	// Watching the parent directories keeps following files that editors
	// replace by rename.
	watched := make(map[string]bool, len(args))
	var dirs []string
	seen := make(map[string]bool)
	for _, path := range args {
		if path == compiler.StdinPath {
			return ErrWatchStdin
		}
		path = filepath.Clean(path)
		watched[path] = true
		if dir := filepath.Dir(path); !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logger.Info("watching sources", "files", len(watched), "dirs", dirs)

	out := cmd.OutOrStdout()
	w.runCheck(ctx, out, args)
	if w.testHooks.ready != nil {
		w.testHooks.ready()
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			logger.Debug("source changed", "path", event.Name, "op", event.Op.String())
			w.runCheck(ctx, out, args)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// runCheck checks paths once. Failures are logged; the watch goes on.
func (w *KccWatchCmd) runCheck(ctx context.Context, out io.Writer, paths []string) {
	kc := w.kccCmd
	logger := kc.GetLogger()

	srcs, err := compiler.NewLoader(kc.fs, nil).LoadAll(paths)
	if err == nil {
		err = kc.check(ctx, out, srcs)
		if err == nil && kc.format.Get() == FormatText {
			_, err = fmt.Fprintf(out, "no lexical errors in %d files\n", len(srcs))
		}
	}

	switch {
	case err == nil, errors.Is(err, ErrLexicalErrors):
	case ctx.Err() != nil:
	default:
		logger.Warn("check failed", "error", err)
	}
	if w.testHooks.checked != nil {
		w.testHooks.checked(err)
	}
}
