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

package logutil

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcc-lang/kcc/go/viperutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestDefaults(t *testing.T) {
	lg := NewLogger(viperutil.NewRegistry())
	assert.Equal(t, "warn", lg.GetLogLevel())
	assert.Equal(t, "text", lg.GetLogFormat())
	assert.Equal(t, "stderr", lg.GetLogOutput())
}

func TestSetupLoggingToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "kcc.log")
	reg := viperutil.NewRegistry()
	lg := NewLogger(reg)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	lg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--log-format=json", "--log-output=" + path}))

	var hooked *slog.Logger
	lg.OnLoggingSetup(func(l *slog.Logger) { hooked = l })

	lg.SetupLogging()
	lg.SetupLogging() // second call is a no-op

	require.NotNil(t, hooked)
	assert.Same(t, hooked, lg.GetLogger())
	assert.Same(t, hooked, slog.Default())

	slog.Info("lexed file", "path", "main.k", "tokens", 12)
	require.NoError(t, lg.Close())
	require.NoError(t, lg.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "logging initialized", first["msg"])
	assert.Equal(t, "lexed file", second["msg"])
	assert.Equal(t, "main.k", second["path"])
	assert.EqualValues(t, 12, second["tokens"])
}

func TestGetLoggerBeforeSetup(t *testing.T) {
	lg := NewLogger(viperutil.NewRegistry())
	assert.Same(t, slog.Default(), lg.GetLogger())
	assert.NoError(t, lg.Close())
}
