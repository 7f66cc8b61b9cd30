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

// Package debug renders the effective configuration of a registry.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kcc-lang/kcc/go/viperutil"
)

// Snapshot is the effective configuration at one point in time.
type Snapshot struct {
	ConfigFile string         `json:"config_file" yaml:"config_file"`
	Settings   map[string]any `json:"settings" yaml:"settings"`
}

// Take captures reg's current configuration.
func Take(reg *viperutil.Registry) Snapshot {
	return Snapshot{
		ConfigFile: reg.ConfigFileUsed(),
		Settings:   reg.AllSettings(),
	}
}

// Write renders reg's effective configuration to w. Supported formats are
// "text" (one "key = value" line per key), "json" and "yaml".
func Write(w io.Writer, reg *viperutil.Registry, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		if used := reg.ConfigFileUsed(); used != "" {
			if _, err := fmt.Fprintf(w, "# config file: %s\n", used); err != nil {
				return err
			}
		}
		for _, k := range reg.AllKeys() {
			value := reg.Get(k)
			if value == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s = %v\n", k, value); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Take(reg))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Take(reg)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}
