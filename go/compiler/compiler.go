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

// Package compiler drives the lexer over whole source files. It owns one
// Lexer per source and collects every token and lexical error.
package compiler

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/kcc-lang/kcc/go/diagnostics"
	"github.com/kcc-lang/kcc/go/lexer"
)

// cancelCheckInterval is how many tokens Execute scans between context checks.
const cancelCheckInterval = 256

// Unit is the result of scanning one source.
type Unit struct {
	Source Source
	// Tokens holds every token in order, ending with EOF.
	Tokens []lexer.Token
	// Errors holds every lexical error in input order.
	Errors []*lexer.Error
}

// HasErrors reports whether scanning found any lexical error.
func (u *Unit) HasErrors() bool {
	return len(u.Errors) > 0
}

// Diagnostics converts the unit's lexical errors.
func (u *Unit) Diagnostics() []diagnostics.Diagnostic {
	return diagnostics.FromLexErrors(u.Source.Path, u.Errors)
}

// Compiler scans sources with a fixed set of lexer options.
// It is safe for concurrent use; every Execute builds its own Lexer.
type Compiler struct {
	opts    lexer.Options
	logger  *slog.Logger
	workers int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLexerOptions sets the options every Lexer is built with.
func WithLexerOptions(opts lexer.Options) Option {
	return func(c *Compiler) { c.opts = opts }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) { c.logger = logger }
}

// WithWorkers bounds how many sources ExecuteAll scans at once.
// Values below 1 mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *Compiler) { c.workers = n }
}

// New returns a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// LexerOptions returns the options sources are scanned with.
func (c *Compiler) LexerOptions() lexer.Options {
	return c.opts
}

// Execute scans src to the end. Lexical errors never stop the scan; they are
// collected in the returned Unit. The only error Execute returns is ctx's,
// when ctx is cancelled mid-scan.
func (c *Compiler) Execute(ctx context.Context, src Source) (*Unit, error) {
	start := time.Now()
	unit := &Unit{Source: src}
	l := lexer.New(src.Text, lexer.WithOptions(c.opts))

	for n := 1; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tok, err := l.Next()
		if err != nil {
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				return nil, err
			}
			unit.Errors = append(unit.Errors, lexErr)
			continue
		}
		unit.Tokens = append(unit.Tokens, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}

	c.logger.Debug("scanned source",
		"path", src.Path,
		"bytes", len(src.Text),
		"tokens", len(unit.Tokens),
		"errors", len(unit.Errors),
		"duration", time.Since(start),
	)
	return unit, nil
}

// ExecuteAll scans srcs concurrently, at most WithWorkers at a time, and
// returns the units in the order of srcs. On the first failure the remaining
// scans are cancelled and that failure is returned.
func (c *Compiler) ExecuteAll(ctx context.Context, srcs []Source) ([]*Unit, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		units    = make([]*Unit, len(srcs))
		sem      = make(chan struct{}, c.workers)
	)

	for i, src := range srcs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}

		wg.Go(func() {
			defer func() { <-sem }()

			unit, err := c.Execute(ctx, src)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
				return
			}
			units[i] = unit
		})
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return units, nil
}
