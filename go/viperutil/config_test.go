// Copyright 2023 The Vitess Authors.
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
//
// Modifications Copyright 2025 Supabase, Inc.

package viperutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigHandlingValue(t *testing.T) {
	v := viper.New()
	v.SetDefault("default", ErrorOnConfigFileNotFound)
	v.SetConfigType("yaml")

	cfg := `
foo: 2
bar: "2" # not valid, defaults to "ignore" (0)
baz: warn
duration: 10h
`
	err := v.ReadConfig(strings.NewReader(strings.NewReplacer("\t", "  ").Replace(cfg)))
	require.NoError(t, err)

	getHandlingValueFunc := getHandlingValue(v)
	assert.Equal(t, ErrorOnConfigFileNotFound, getHandlingValueFunc("foo"), "failed to get int value")
	assert.Equal(t, IgnoreConfigFileNotFound, getHandlingValueFunc("bar"), "failed to get int-like string value")
	assert.Equal(t, WarnOnConfigFileNotFound, getHandlingValueFunc("baz"), "failed to get string value")
	assert.Equal(t, IgnoreConfigFileNotFound, getHandlingValueFunc("notset"), "failed to get value on unset key")
	assert.Equal(t, IgnoreConfigFileNotFound, getHandlingValueFunc("duration"), "failed to get value on duration key")
	assert.Equal(t, ErrorOnConfigFileNotFound, getHandlingValueFunc("default"), "failed to get value on default key")
}

func TestConfigFileNotFoundHandlingFlag(t *testing.T) {
	var h ConfigFileNotFoundHandling
	require.NoError(t, h.Set("WARN"))
	assert.Equal(t, WarnOnConfigFileNotFound, h)
	assert.Equal(t, "warn", h.String())
	assert.Error(t, h.Set("sometimes"))
	assert.Equal(t, []string{"error", "exit", "ignore", "warn"}, handlingNames)
}

// TestLoadConfig tests that LoadConfig behaves in the way expected when the config file doesn't exist.
func TestLoadConfig(t *testing.T) {
	t.Run("Ignore file not found error", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configFile.Set("notfound.yaml")
		vc.configFileNotFoundHandling.Set(IgnoreConfigFileNotFound)
		require.NoError(t, vc.LoadConfig(reg))
	})

	t.Run("Ignore file not found error from config name", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configPaths.Set([]string{t.TempDir()})
		vc.configName.Set("notfound")
		vc.configFileNotFoundHandling.Set(IgnoreConfigFileNotFound)
		require.NoError(t, vc.LoadConfig(reg))
	})

	t.Run("Warn file not found error", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configFile.Set("notfound.yaml")
		vc.configFileNotFoundHandling.Set(WarnOnConfigFileNotFound)
		require.NoError(t, vc.LoadConfig(reg))
	})

	t.Run("Error file not found error", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configFile.Set("notfound.yaml")
		vc.configFileNotFoundHandling.Set(ErrorOnConfigFileNotFound)
		err := vc.LoadConfig(reg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigFileNotFound)
	})

	t.Run("Exit file not found error", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configFile.Set("notfound.yaml")
		vc.configFileNotFoundHandling.Set(ExitOnConfigFileNotFound)
		err := vc.LoadConfig(reg)
		require.ErrorIs(t, err, ErrExitOnConfigFileNotFound)
		assert.ErrorIs(t, err, ErrConfigFileNotFound)
	})

	t.Run("Error file not found error from config name", func(t *testing.T) {
		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configPaths.Set([]string{t.TempDir()})
		vc.configName.Set("notfound")
		vc.configFileNotFoundHandling.Set(ErrorOnConfigFileNotFound)
		require.ErrorIs(t, vc.LoadConfig(reg), ErrConfigFileNotFound)
	})

	t.Run("Malformed config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kcc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("lexer: [unclosed"), 0o644))

		reg := NewRegistry()
		vc := NewViperConfig(reg)
		vc.configFile.Set(path)
		err := vc.LoadConfig(reg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrConfigFileNotFound)
	})
}

func TestLoadConfigValues(t *testing.T) {
	dir := t.TempDir()
	cfg := `
lexer:
  emit-newlines: true
output:
  format: yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kcc.yaml"), []byte(cfg), 0o644))

	reg := NewRegistry()
	vc := NewViperConfig(reg)
	newlines := Configure(reg, "lexer.emit-newlines", Options[bool]{FlagName: "emit-newlines"})
	trivia := Configure(reg, "lexer.retain-trivia", Options[bool]{FlagName: "retain-trivia"})
	format := Configure(reg, "output.format", Options[string]{Default: "text", FlagName: "format"})

	vc.configPaths.Set([]string{dir})
	require.NoError(t, vc.LoadConfig(reg))

	assert.Equal(t, filepath.Join(dir, "kcc.yaml"), reg.ConfigFileUsed())
	assert.True(t, newlines.Get())
	assert.False(t, trivia.Get())
	assert.Equal(t, "yaml", format.Get())
	assert.Equal(t, "text", format.Default())
}

func TestValuePrecedence(t *testing.T) {
	reg := NewRegistry()
	format := Configure(reg, "output.format", Options[string]{Default: "text", FlagName: "format"})
	color := Configure(reg, "output.color", Options[string]{Default: "auto", FlagName: "color"})
	depth := Configure(reg, "watch.depth", Options[int]{Default: 1})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", format.Default(), "")
	fs.String("color", color.Default(), "")
	BindFlags(fs, format, color, depth)

	t.Setenv("KCC_OUTPUT_FORMAT", "json")
	t.Setenv("KCC_OUTPUT_COLOR", "never")
	require.NoError(t, fs.Parse([]string{"--color=always"}))

	assert.Equal(t, "json", format.Get(), "environment overrides default")
	assert.Equal(t, "always", color.Get(), "flag overrides environment")
	assert.Equal(t, 1, depth.Get())

	depth.Set(3)
	assert.Equal(t, 3, depth.Get())
	assert.Equal(t, "watch.depth", depth.Key())
	assert.Contains(t, reg.AllSettings(), "watch")
}

func TestBindFlagsMissingFlag(t *testing.T) {
	reg := NewRegistry()
	val := Configure(reg, "missing", Options[string]{Default: "x", FlagName: "missing"})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, err := val.Flag(fs)
	require.Error(t, err)

	// BindFlags logs and skips values without a defined flag.
	BindFlags(fs, val)
	assert.Equal(t, "x", val.Get())
}

func TestEnvVarsOption(t *testing.T) {
	reg := NewRegistry()
	paths := Configure(reg, "search.paths", Options[[]string]{
		Default: []string{"."},
		EnvVars: []string{"KCC_TEST_SEARCH_PATH"},
	})

	assert.Equal(t, []string{"."}, paths.Get())
	t.Setenv("KCC_TEST_SEARCH_PATH", "a b")
	assert.Equal(t, []string{"a", "b"}, paths.Get())
}
