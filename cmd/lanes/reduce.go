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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/stats"
)

type reduceFunc func(e *engine.Engine[int32], a, b []int32, key int32) (any, error)

var reduceOps = map[string]reduceFunc{
	"sum": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return e.Sum(a), nil
	},
	"squares": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return e.SumSquares(a), nil
	},
	"dot": func(e *engine.Engine[int32], a, b []int32, _ int32) (any, error) {
		return e.Dot(a, b)
	},
	"min": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return e.MinChecked(a)
	},
	"max": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return e.MaxChecked(a)
	},
	"find": func(e *engine.Engine[int32], a, _ []int32, key int32) (any, error) {
		return e.Find(a, key), nil
	},
	"count": func(e *engine.Engine[int32], a, _ []int32, key int32) (any, error) {
		return e.Count(a, key), nil
	},
	"mean": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return stats.New(e).Mean(a), nil
	},
	"variance": func(e *engine.Engine[int32], a, _ []int32, _ int32) (any, error) {
		return stats.New(e).Variance(a), nil
	},
	"covariance": func(e *engine.Engine[int32], a, b []int32, _ int32) (any, error) {
		return stats.New(e).Covariance(a, b)
	},
	"correlation": func(e *engine.Engine[int32], a, b []int32, _ int32) (any, error) {
		return stats.New(e).Correlation(a, b)
	},
}

func reduceOpNames() []string {
	names := lo.Keys(reduceOps)
	sort.Strings(names)
	return names
}

func newReduceCmd(a *app) *cobra.Command {
	var (
		op    string
		aList string
		bList string
		key   int32
	)

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Run one operation on integer lists",
		Example: `  lanes reduce --op sum --a 1,2,3,4,5,6,7,8,9,10
  lanes reduce --op find --a 1,2,3,4,5,6,7,8,9,10,11,0 --key 4
  lanes reduce --op correlation --a 1,2,3 --b 3,1,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fn, ok := reduceOps[op]
			if !ok {
				return fmt.Errorf("unknown op %q (want one of %s)", op, strings.Join(reduceOpNames(), ", "))
			}
			xs, err := parseInts(aList)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			ys, err := parseInts(bList)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}

			e, err := a.engine(a.cfg.TailMode())
			if err != nil {
				return err
			}
			result, err := fn(e, xs, ys, key)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			a.log.Debug("reduce", "engine", e.String(), "n", len(xs))

			if f, ok := result.(float64); ok {
				result = strconv.FormatFloat(f, 'g', -1, 64)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&op, "op", "sum", "Operation: "+strings.Join(reduceOpNames(), ", "))
	cmd.Flags().StringVar(&aList, "a", "", "Comma-separated first array")
	cmd.Flags().StringVar(&bList, "b", "", "Comma-separated second array (dot, covariance, correlation)")
	cmd.Flags().Int32Var(&key, "key", 0, "Search key (find, count)")
	return cmd
}

// parseInts parses a comma-separated list of int32 values. Empty fields
// are skipped.
func parseInts(s string) ([]int32, error) {
	fields := lo.FilterMap(strings.Split(s, ","), func(f string, _ int) (string, bool) {
		f = strings.TrimSpace(f)
		return f, f != ""
	})

	var firstErr error
	values := lo.Map(fields, func(f string, _ int) int32 {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("invalid integer %q: %w", f, err)
		}
		return int32(v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
