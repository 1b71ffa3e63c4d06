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
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/lane"
	"github.com/go-lanes/lanes/workerpool"
)

type verifyOptions struct {
	rounds int
	maxLen int
	seed   uint64
}

func newVerifyCmd(a *app) *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every lane configuration against the scalar reference",
		Long: `verify generates random arrays and checks that every operation returns
the same result on the one-lane reference engine and on engines with 2 to 16
lanes, the runtime width and the configured width, with both tail
strategies and with pool-partitioned execution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.rounds < 0 || opts.maxLen < 0 {
				return fmt.Errorf("--rounds and --max-len must not be negative")
			}
			engines, err := verifyEngines(a)
			if err != nil {
				return err
			}

			pool := workerpool.New(a.cfg.Workers)
			defer pool.Close()

			failed, err := runVerify(cmd.Context(), engines, pool, a.cfg.Workers, opts)
			a.log.LogVerify(cmd.Context(), opts.rounds, failed, err)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rounds, %d engines, max length %d\n",
				opts.rounds, len(engines), opts.maxLen)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.rounds, "rounds", 200, "Number of random arrays")
	cmd.Flags().IntVar(&opts.maxLen, "max-len", 300, "Maximum array length")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Random seed")
	return cmd
}

// verifyEngines returns the engines checked against the reference: a fixed
// set of lane counts plus the runtime and configured widths, each with both
// tail strategies.
func verifyEngines(a *app) ([]*engine.Engine[int32], error) {
	counts := []int{2, 3, 4, 8, 16, lane.MaxLanes[int32]()}
	if a.cfg.Lanes > 0 {
		counts = append(counts, a.cfg.Lanes)
	}

	var engines []*engine.Engine[int32]
	for _, n := range lo.Uniq(counts) {
		for _, mode := range []lane.TailMode{lane.TailScalar, lane.TailOverlap} {
			e, err := engine.New[int32](engine.WithLanes(n), engine.WithTail(mode))
			if err != nil {
				return nil, err
			}
			engines = append(engines, e)
		}
	}
	return engines, nil
}

// runVerify checks opts.rounds random inputs concurrently and returns the
// number of failed rounds and the first failure.
func runVerify(ctx context.Context, engines []*engine.Engine[int32], pool *workerpool.Pool, workers int, opts verifyOptions) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var failed atomic.Int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for round := range opts.rounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := verifyRound(engines, pool, opts, round); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	return int(failed.Load()), err
}

func verifyRound(engines []*engine.Engine[int32], pool *workerpool.Pool, opts verifyOptions, round int) error {
	r := rand.New(rand.NewPCG(opts.seed, uint64(round)))
	n := r.IntN(opts.maxLen + 1)

	// Half the rounds use a narrow range so searches hit duplicates; the
	// rest use the full range so sums wrap.
	gen := func(int) int32 { return int32(r.Uint32()) }
	if round%2 == 0 {
		gen = func(int) int32 { return int32(r.IntN(21) - 10) }
	}
	a := lo.Times(n, gen)
	b := lo.Times(n, gen)
	keys := []int32{gen(0), 11}
	if n > 0 {
		keys = append(keys, a[r.IntN(n)])
	}
	k := gen(0)

	ref := engine.Scalar[int32]()
	want, err := ref.Reduce([][]int32{a, b}, engine.SumOf(0), engine.SquaresOf(0), engine.ProductsOf(0, 1))
	if err != nil {
		return err
	}
	wantScaled := slices.Clone(a)
	ref.Scale(wantScaled, k)

	for _, e := range engines {
		fail := func(op string, got, want any) error {
			return fmt.Errorf("round %d (n=%d): %v %s: got %v, want %v", round, n, e, op, got, want)
		}

		got, err := e.Reduce([][]int32{a, b}, engine.SumOf(0), engine.SquaresOf(0), engine.ProductsOf(0, 1))
		if err != nil {
			return err
		}
		if !slices.Equal(got, want) {
			return fail("reduce", got, want)
		}
		got, err = e.ReduceParallel(pool, [][]int32{a, b}, engine.SumOf(0), engine.SquaresOf(0), engine.ProductsOf(0, 1))
		if err != nil {
			return err
		}
		if !slices.Equal(got, want) {
			return fail("reduce/parallel", got, want)
		}

		for _, kind := range []engine.Kind{engine.KindMin, engine.KindMax} {
			if got, want := e.Extremum(a, kind), ref.Extremum(a, kind); got != want {
				return fail(kind.String(), got, want)
			}
			if got, want := e.ExtremumParallel(pool, a, kind), ref.Extremum(a, kind); got != want {
				return fail(kind.String()+"/parallel", got, want)
			}
		}

		for _, key := range keys {
			if got, want := e.Find(a, key), ref.Find(a, key); got != want {
				return fail(fmt.Sprintf("find(%d)", key), got, want)
			}
			if got, want := e.FindParallel(pool, a, key), ref.Find(a, key); got != want {
				return fail(fmt.Sprintf("find(%d)/parallel", key), got, want)
			}
			if got, want := e.Count(a, key), ref.Count(a, key); got != want {
				return fail(fmt.Sprintf("count(%d)", key), got, want)
			}
		}

		scaled := slices.Clone(a)
		e.Scale(scaled, k)
		if !slices.Equal(scaled, wantScaled) {
			return fail(fmt.Sprintf("scale(%d)", k), scaled, wantScaled)
		}
	}
	return nil
}
