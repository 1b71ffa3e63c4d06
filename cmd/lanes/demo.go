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
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/lane"
	"github.com/go-lanes/lanes/stats"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample computations with every strategy",
		Long: `demo runs a fixed set of sample inputs through the scalar reference,
the lane engine with a scalar tail and the lane engine with an overlapping
tail, and prints the results side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lanes, err := a.engine(lane.TailScalar)
			if err != nil {
				return err
			}
			overlap, err := a.engine(lane.TailOverlap)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), engine.Scalar[int32](), lanes, overlap)
		},
	}
}

// seq returns from, from+1, ..., to.
func seq(from, to int32) []int32 {
	return lo.RangeFrom(from, int(to-from+1))
}

func runDemo(w io.Writer, ref, lanes, overlap *engine.Engine[int32]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "computation\tscalar\t%v\t%v\n", lanes, overlap)

	row := func(name string, f func(e *engine.Engine[int32]) any) {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n", name, f(ref), f(lanes), f(overlap))
	}

	oneToNine := seq(1, 9)
	nineToOne := lo.Reverse(seq(1, 9))
	shuffled := []int32{3, 2, 1, 5, 9, 4, 6, 8, 7}
	withZero := append(seq(1, 11), 0)

	row("sum 1..10", func(e *engine.Engine[int32]) any { return e.Sum(seq(1, 10)) })
	row("dot 1..9 . 1..9", func(e *engine.Engine[int32]) any {
		v, _ := e.Dot(oneToNine, oneToNine)
		return v
	})
	row("variance 1..9", func(e *engine.Engine[int32]) any {
		return fmt.Sprintf("%.6f", stats.New(e).Variance(oneToNine))
	})
	row("covariance 1..9, 9..1", func(e *engine.Engine[int32]) any {
		v, _ := stats.New(e).Covariance(oneToNine, nineToOne)
		return fmt.Sprintf("%.6f", v)
	})
	row("correlation 1..9, shuffled", func(e *engine.Engine[int32]) any {
		v, _ := stats.New(e).Correlation(oneToNine, shuffled)
		return fmt.Sprintf("%.6f", v)
	})
	row("min {1..11,0}", func(e *engine.Engine[int32]) any { return e.Min(withZero) })
	row("max {1..11,0}", func(e *engine.Engine[int32]) any { return e.Max(withZero) })
	for _, key := range []int32{0, 4, 12} {
		row(fmt.Sprintf("index of %d", key), func(e *engine.Engine[int32]) any { return e.Find(withZero, key) })
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Scale has no overlap form; every strategy scales with a scalar tail.
	fmt.Fprintln(w)
	fmt.Fprintln(w, "4x4 matrix (1..16) times 3:")
	m := seq(1, 16)
	if err := lanes.ScaleMatrix(m, 4, 4, 3); err != nil {
		return err
	}
	for _, r := range lo.Chunk(m, 4) {
		fmt.Fprintf(w, "  %v\n", r)
	}
	return nil
}
