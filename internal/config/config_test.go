// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/lane"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvLanes, EnvTail, EnvWorkers, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0, cfg.Lanes)
	require.Equal(t, lane.TailScalar, cfg.TailMode())
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)

	cfg, err = LoadFromFile("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
lanes: 8
tail: overlap
log:
  format: json
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Lanes)
	require.Equal(t, lane.TailOverlap, cfg.TailMode())
	require.Equal(t, "json", cfg.Log.Format)
	// Unset keys keep their defaults.
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 0, cfg.Workers)
}

func TestLoadFromFileMalformed(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "lanes: [1, 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func TestPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "lanes: 8\ntail: overlap\nworkers: 2\n")

	t.Setenv(EnvLanes, "4")
	t.Setenv(EnvWorkers, "not-a-number")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Lanes)
	require.Equal(t, "overlap", cfg.Tail)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"lanes too large", func(c *Config) { c.Lanes = 65 }},
		{"negative lanes", func(c *Config) { c.Lanes = -1 }},
		{"unknown tail", func(c *Config) { c.Tail = "wrap" }},
		{"negative workers", func(c *Config) { c.Workers = -3 }},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTail, "sideways")
	_, err := Load("")
	require.ErrorContains(t, err, "invalid tail")
}

func TestEngineOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Lanes = 3
	cfg.Tail = "overlap"

	e, err := engine.New[int32](cfg.EngineOptions()...)
	require.NoError(t, err)
	require.Equal(t, 3, e.Lanes())
	require.Equal(t, lane.TailOverlap, e.Tail())

	cfg.Lanes = 0
	e, err = engine.New[int32](cfg.EngineOptions()...)
	require.NoError(t, err)
	require.Equal(t, lane.Scalable[int32]().Lanes(), e.Lanes())
}

func TestString(t *testing.T) {
	out := Defaults().String()
	require.Contains(t, out, "tail: scalar")
	require.Contains(t, out, "format: text")
}
