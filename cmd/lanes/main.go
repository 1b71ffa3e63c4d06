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

// Command lanes runs and checks the lane-parallel integer reductions.
//
// Usage:
//
//	lanes info
//	lanes demo
//	lanes reduce --op dot --a 1,2,3 --b 4,5,6
//	lanes verify --rounds 1000 --seed 7
//
// Settings come from --config (YAML), LANES_* environment variables and the
// persistent flags, in increasing order of precedence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/internal/config"
	"github.com/go-lanes/lanes/internal/logging"
	"github.com/go-lanes/lanes/lane"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the settings shared by every subcommand.
type app struct {
	configPath string
	lanes      int
	tail       string
	workers    int
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lane-parallel integer reductions and search",
		Long: `lanes computes sums, dot products, extrema, searches and derived
statistics over signed integer arrays, W elements at a time, and checks
every lane configuration against the one-lane scalar reference.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", os.Getenv("LANES_CONFIG"), "YAML config file")
	pf.IntVar(&a.lanes, "lanes", 0, "Lane count (0 = runtime register width)")
	pf.StringVar(&a.tail, "tail", "scalar", "Tail strategy: scalar, overlap")
	pf.IntVar(&a.workers, "workers", 0, "Worker count (0 = GOMAXPROCS)")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(
		newInfoCmd(a),
		newDemoCmd(a),
		newReduceCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

// setup resolves the configuration and logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFromFile(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("lanes") {
		cfg.Lanes = a.lanes
	}
	if flags.Changed("tail") {
		cfg.Tail = a.tail
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.WithOp(cmd.Name())
	a.log.LogDispatch(cmd.Context())
	return nil
}

// engine returns the configured int32 engine with its tail mode replaced
// by mode.
func (a *app) engine(mode lane.TailMode) (*engine.Engine[int32], error) {
	opts := append(a.cfg.EngineOptions(), engine.WithTail(mode))
	return engine.New[int32](opts...)
}
