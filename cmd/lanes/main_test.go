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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/internal/config"
	"github.com/go-lanes/lanes/lane"
	"github.com/go-lanes/lanes/workerpool"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"LANES_CONFIG", config.EnvLanes, config.EnvTail, config.EnvWorkers, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(key, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", "--lanes", "4", "--tail", "overlap")
	require.NoError(t, err)
	require.Contains(t, out, "dispatch: "+lane.CurrentName())
	require.Contains(t, out, "engine:   engine(4xint32, tail=overlap)")
}

func TestDemo(t *testing.T) {
	for _, lanes := range []string{"0", "1", "3", "8"} {
		out, _, err := run(t, "demo", "--lanes", lanes)
		require.NoError(t, err, "lanes=%s", lanes)

		lines := strings.Split(out, "\n")
		find := func(prefix string) []string {
			for _, l := range lines {
				if strings.HasPrefix(l, prefix) {
					return strings.Fields(strings.TrimPrefix(l, prefix))
				}
			}
			t.Fatalf("no line %q in:\n%s", prefix, out)
			return nil
		}

		require.Equal(t, []string{"55", "55", "55"}, find("sum 1..10"))
		require.Equal(t, []string{"285", "285", "285"}, find("dot 1..9 . 1..9"))
		require.Equal(t, []string{"6.666667", "6.666667", "6.666667"}, find("variance 1..9"))
		require.Equal(t, []string{"-6.666667", "-6.666667", "-6.666667"}, find("covariance 1..9, 9..1"))
		require.Equal(t, []string{"0.716667", "0.716667", "0.716667"}, find("correlation 1..9, shuffled"))
		require.Equal(t, []string{"0", "0", "0"}, find("min {1..11,0}"))
		require.Equal(t, []string{"11", "11", "11"}, find("max {1..11,0}"))
		require.Equal(t, []string{"11", "11", "11"}, find("index of 0"))
		require.Equal(t, []string{"3", "3", "3"}, find("index of 4"))
		require.Equal(t, []string{"-1", "-1", "-1"}, find("index of 12"))

		require.Contains(t, out, "[3 6 9 12]")
		require.Contains(t, out, "[39 42 45 48]")
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--op", "sum", "--a", "1,2,3,4,5,6,7,8,9,10"}, "55"},
		{[]string{"--op", "squares", "--a", "1, 2, 3"}, "14"},
		{[]string{"--op", "dot", "--a", "1,2,3", "--b", "4,5,6"}, "32"},
		{[]string{"--op", "min", "--a", "4,-2,7"}, "-2"},
		{[]string{"--op", "max", "--a", "4,-2,7"}, "7"},
		{[]string{"--op", "find", "--a", "1,2,3,4,5,6,7,8,9,10,11,0", "--key", "4"}, "3"},
		{[]string{"--op", "find", "--a", "1,2,3", "--key", "12"}, "-1"},
		{[]string{"--op", "count", "--a", "1,2,1,1", "--key", "1"}, "3"},
		{[]string{"--op", "mean", "--a", "1,2"}, "1.5"},
		{[]string{"--op", "variance", "--a", "1,2,3,4,5"}, "2"},
		{[]string{"--op", "covariance", "--a", "1,3", "--b", "1,3"}, "1"},
		{[]string{"--op", "correlation", "--a", "1,3", "--b", "3,1"}, "-1"},
		{[]string{"--op", "sum", "--a", "2147483647,1"}, "-2147483648"},
	}
	for _, tt := range tests {
		for _, lanes := range []string{"1", "2", "8"} {
			args := append([]string{"reduce", "--lanes", lanes}, tt.args...)
			out, _, err := run(t, args...)
			require.NoError(t, err, "%v", args)
			require.Equal(t, tt.want, strings.TrimSpace(out), "%v", args)
		}
	}
}

func TestReduceErrors(t *testing.T) {
	_, _, err := run(t, "reduce", "--op", "median", "--a", "1")
	require.ErrorContains(t, err, "unknown op")

	_, _, err = run(t, "reduce", "--op", "sum", "--a", "1,x")
	require.ErrorContains(t, err, "invalid integer")

	_, _, err = run(t, "reduce", "--op", "dot", "--a", "1,2", "--b", "1")
	require.ErrorContains(t, err, "length mismatch")

	_, _, err = run(t, "reduce", "--op", "min")
	require.ErrorIs(t, err, engine.ErrEmpty)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lanes: 3\ntail: overlap\n"), 0o600))

	out, _, err := run(t, "info", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "engine(3xint32, tail=overlap)")

	out, _, err = run(t, "info", "--config", path, "--lanes", "5")
	require.NoError(t, err)
	require.Contains(t, out, "engine(5xint32, tail=overlap)")

	_, _, err = run(t, "info", "--tail", "sideways")
	require.ErrorContains(t, err, "invalid tail")

	_, _, err = run(t, "info", "--lanes", "65")
	require.ErrorContains(t, err, "invalid lanes")
}

func TestJSONLogging(t *testing.T) {
	_, stderr, err := run(t, "info", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"dispatch"`)
	require.Contains(t, stderr, `"op":"info"`)
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", "--rounds", "40", "--max-len", "70", "--seed", "3", "--workers", "4", "--lanes", "5")
	require.NoError(t, err)
	require.Contains(t, out, "ok: 40 rounds")
}

func TestVerifyRoundZeroLength(t *testing.T) {
	engines := []*engine.Engine[int32]{engine.MustNew[int32](engine.WithLanes(4))}
	pool := workerpool.New(2)
	defer pool.Close()

	failed, err := runVerify(context.Background(), engines, pool, 2, verifyOptions{rounds: 5, maxLen: 0, seed: 9})
	require.NoError(t, err)
	require.Zero(t, failed)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, -2,,3 ")
	require.NoError(t, err)
	require.Equal(t, []int32{1, -2, 3}, got)

	got, err = parseInts("")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = parseInts("1,99999999999")
	require.Error(t, err)
}
