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

// Package config loads lanes settings from defaults, an optional YAML file
// and LANES_* environment variables, in that order of precedence.
//
// Example config file:
//
//	lanes: 8          # 0 = runtime register width
//	tail: overlap     # scalar | overlap
//	workers: 4        # 0 = GOMAXPROCS
//	log:
//	  level: debug
//	  format: json
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/internal/logging"
	"github.com/go-lanes/lanes/lane"
)

// Environment variables read by ApplyEnv.
const (
	EnvLanes     = "LANES_COUNT"
	EnvTail      = "LANES_TAIL"
	EnvWorkers   = "LANES_WORKERS"
	EnvLogLevel  = "LANES_LOG_LEVEL"
	EnvLogFormat = "LANES_LOG_FORMAT"
)

// Config holds engine, pool and logging settings.
type Config struct {
	// Lanes is the engine lane count; 0 selects the runtime register width.
	Lanes int `yaml:"lanes"`

	// Tail is "scalar" or "overlap".
	Tail string `yaml:"tail"`

	// Workers sizes the worker pool; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Lanes:   0,
		Tail:    lane.TailScalar.String(),
		Workers: 0,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile returns the defaults overlaid with the YAML file at path.
// A missing file is not an error. An empty path skips the file.
func LoadFromFile(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Load reads path, applies the environment and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from LANES_* variables that are set. Integer
// variables that do not parse are ignored.
func (c *Config) ApplyEnv() {
	c.Lanes = getEnvInt(EnvLanes, c.Lanes)
	c.Tail = getEnv(EnvTail, c.Tail)
	c.Workers = getEnvInt(EnvWorkers, c.Workers)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.Format = getEnv(EnvLogFormat, c.Log.Format)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Lanes < 0 || c.Lanes > lane.MaxLaneCount {
		return fmt.Errorf("invalid lanes: %d (want 0..%d)", c.Lanes, lane.MaxLaneCount)
	}
	if _, err := lane.ParseTailMode(c.Tail); err != nil {
		return fmt.Errorf("invalid tail: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	return nil
}

// TailMode returns the parsed tail mode, TailScalar if it does not parse.
func (c *Config) TailMode() lane.TailMode {
	mode, _ := lane.ParseTailMode(c.Tail)
	return mode
}

// EngineOptions converts the engine settings to engine options.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithLanes(c.Lanes),
		engine.WithTail(c.TailMode()),
	}
}

// String renders the config as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(out)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
