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

// Package viperutil wraps spf13/viper with typed configuration values that can
// be bound to command-line flags, environment variables and a config file.
package viperutil

import (
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every automatically derived environment variable.
// The key "lexer.emit-newlines" is read from KCC_LEXER_EMIT_NEWLINES.
const EnvPrefix = "KCC"

// Registry holds the viper instance backing a set of configuration values.
// Each command builds its own Registry, so tests and commands never share
// configuration state.
//
// Values never change after LoadConfig is called, except through Value.Set.
type Registry struct {
	static *viper.Viper
}

// NewRegistry creates a new isolated configuration registry.
//
// Example usage:
//
//	reg := viperutil.NewRegistry()
//	format := viperutil.Configure(reg, "output.format", viperutil.Options[string]{
//	    Default:  "text",
//	    FlagName: "format",
//	})
func NewRegistry() *Registry {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &Registry{static: v}
}

// AllSettings returns every known key and its current value, including values
// that come from defaults, flags and the environment.
func (reg *Registry) AllSettings() map[string]any {
	return reg.static.AllSettings()
}

// ConfigFileUsed returns the config file that was loaded, or "" if none was.
func (reg *Registry) ConfigFileUsed() string {
	return reg.static.ConfigFileUsed()
}

// AllKeys returns every known key in sorted order, with nested keys joined by
// dots.
func (reg *Registry) AllKeys() []string {
	keys := reg.static.AllKeys()
	sort.Strings(keys)
	return keys
}

// Get returns the raw value stored under key.
func (reg *Registry) Get(key string) any {
	return reg.static.Get(key)
}
