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

package compiler

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// StdinName is the Source.Path given to text read from standard input.
const StdinName = "<stdin>"

// ErrEmptyPath is returned when a source path is empty.
var ErrEmptyPath = errors.New("empty source path")

// Source is one named input text.
type Source struct {
	Path string
	Text string
}

// Loader reads sources from a filesystem. StdinPath reads from the loader's
// stdin instead.
type Loader struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewLoader returns a Loader over fs. stdin may be nil when standard input is
// not available.
func NewLoader(fs afero.Fs, stdin io.Reader) *Loader {
	return &Loader{fs: fs, stdin: stdin}
}

// Fs returns the filesystem the loader reads from.
func (l *Loader) Fs() afero.Fs {
	return l.fs
}

// Load reads the source at path.
func (l *Loader) Load(path string) (Source, error) {
	switch path {
	case "":
		return Source{}, ErrEmptyPath
	case StdinPath:
		if l.stdin == nil {
			return Source{}, errors.New("standard input is not available")
		}
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return Source{}, fmt.Errorf("failed to read standard input: %w", err)
		}
		return Source{Path: StdinName, Text: string(data)}, nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return Source{Path: path, Text: string(data)}, nil
}

// LoadAll reads every path in order and stops at the first failure.
func (l *Loader) LoadAll(paths []string) ([]Source, error) {
	srcs := make([]Source, 0, len(paths))
	for _, path := range paths {
		src, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}
