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

package viperutil

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options configures a Value at registration time.
type Options[T any] struct {
	// Default is returned by Get when no flag, env var or config key sets the
	// value.
	Default T
	// FlagName is the name of the pflag bound by BindFlags. Empty means the
	// value has no flag.
	FlagName string
	// EnvVars, when set, replace the automatically derived KCC_ variable and
	// are checked in order.
	EnvVars []string
	// GetFunc overrides how the value is read out of viper. Types other than
	// string, bool, int, time.Duration and []string need one.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Registerable is the type-erased part of a Value, used by BindFlags.
type Registerable interface {
	// Key returns the viper key the value is stored under.
	Key() string
	// Flag returns the flag named by Options.FlagName in fs, or nil if the
	// value has no flag.
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)

	registry() *viper.Viper
}

// Value is a typed handle on a configuration key.
type Value[T any] interface {
	Registerable

	// Default returns the registered default.
	Default() T
	// Get returns the current value, resolving flags, environment, config
	// file and default in that order.
	Get() T
	// Set overrides the value for the rest of the process.
	Set(v T)
}

// Configure registers key in reg and returns a handle on it.
func Configure[T any](reg *Registry, key string, opts Options[T]) Value[T] {
	v := reg.static
	v.SetDefault(key, opts.Default)
	if len(opts.EnvVars) > 0 {
		if err := v.BindEnv(append([]string{key}, opts.EnvVars...)...); err != nil {
			slog.Error("failed to bind env vars", "key", key, "error", err)
		}
	}

	getFunc := opts.GetFunc
	if getFunc == nil {
		getFunc = GetFuncForType[T]
	}

	return &staticValue[T]{
		key:        key,
		flagName:   opts.FlagName,
		defaultVal: opts.Default,
		get:        getFunc(v),
		v:          v,
	}
}

type staticValue[T any] struct {
	key        string
	flagName   string
	defaultVal T
	get        func(key string) T
	v          *viper.Viper
}

func (val *staticValue[T]) Key() string            { return val.key }
func (val *staticValue[T]) Default() T             { return val.defaultVal }
func (val *staticValue[T]) Get() T                 { return val.get(val.key) }
func (val *staticValue[T]) Set(v T)                { val.v.Set(val.key, v) }
func (val *staticValue[T]) registry() *viper.Viper { return val.v }

func (val *staticValue[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.flagName == "" {
		return nil, nil
	}
	f := fs.Lookup(val.flagName)
	if f == nil {
		return nil, fmt.Errorf("flag %s not found in flag set %s", val.flagName, fs.Name())
	}
	return f, nil
}

// BindFlags binds each value to its flag in fs, so a flag set on the command
// line takes precedence over the environment and the config file.
// The flags must already be defined in fs.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		f, err := val.Flag(fs)
		switch {
		case err != nil:
			slog.Error("failed to load flag for value", "key", val.Key(), "error", err)
			continue
		case f == nil:
			continue
		}

		if err := val.registry().BindPFlag(val.Key(), f); err != nil {
			slog.Error("failed to bind flag", "key", val.Key(), "flag", f.Name, "error", err)
		}
	}
}

// GetFuncForType returns the viper getter matching T. Unsupported types fall
// back to a type assertion on the raw value.
func GetFuncForType[T any](v *viper.Viper) func(key string) T {
	var (
		zero T
		f    any
	)
	switch any(zero).(type) {
	case string:
		f = v.GetString
	case bool:
		f = v.GetBool
	case int:
		f = v.GetInt
	case int64:
		f = v.GetInt64
	case time.Duration:
		f = v.GetDuration
	case []string:
		f = v.GetStringSlice
	default:
		return func(key string) T {
			if t, ok := v.Get(key).(T); ok {
				return t
			}
			return zero
		}
	}
	return f.(func(string) T)
}
