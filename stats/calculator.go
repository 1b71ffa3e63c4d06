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

package stats

import (
	"errors"
	"fmt"

	"github.com/go-lanes/lanes/engine"
	"github.com/go-lanes/lanes/lane"
	"github.com/go-lanes/lanes/workerpool"
)

var (
	// ErrEmpty is returned by the Strict methods for empty input.
	ErrEmpty = engine.ErrEmpty

	// ErrZeroVariance is returned by CorrelationStrict when either input is
	// constant, which leaves the coefficient undefined.
	ErrZeroVariance = errors.New("zero variance")
)

// Calculator computes statistics with one engine pass per call.
type Calculator[T lane.SignedInts] struct {
	e    *engine.Engine[T]
	pool *workerpool.Pool
}

// Option configures a Calculator.
type Option func(*calcOptions)

type calcOptions struct {
	pool *workerpool.Pool
}

// WithPool spreads the reductions over pool. The results are unchanged.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *calcOptions) {
		o.pool = pool
	}
}

// New returns a Calculator running on e. A nil e uses engine.Default.
func New[T lane.SignedInts](e *engine.Engine[T], opts ...Option) *Calculator[T] {
	var o calcOptions
	for _, opt := range opts {
		opt(&o)
	}
	if e == nil {
		e = engine.Default[T]()
	}
	return &Calculator[T]{e: e, pool: o.pool}
}

// Engine returns the engine used for the reductions.
func (c *Calculator[T]) Engine() *engine.Engine[T] {
	return c.e
}

func (c *Calculator[T]) reduce(arrays [][]T, terms ...engine.Term) ([]T, error) {
	return c.e.ReduceParallel(c.pool, arrays, terms...)
}

// Moments returns the sum and sum of squares of a in one pass.
func (c *Calculator[T]) Moments(a []T) Moments[T] {
	sums, _ := c.reduce([][]T{a}, engine.SumOf(0), engine.SquaresOf(0))
	return Moments[T]{N: len(a), Sum: sums[0], SumSquares: sums[1]}
}

// CrossMoments returns all five sums of a and b in one pass.
func (c *Calculator[T]) CrossMoments(a, b []T) (CrossMoments[T], error) {
	sums, err := c.reduce([][]T{a, b},
		engine.SumOf(0), engine.SumOf(1),
		engine.SquaresOf(0), engine.SquaresOf(1),
		engine.ProductsOf(0, 1))
	if err != nil {
		return CrossMoments[T]{}, fmt.Errorf("stats: %w", err)
	}
	return CrossMoments[T]{
		N:           len(a),
		SumA:        sums[0],
		SumB:        sums[1],
		SumSquaresA: sums[2],
		SumSquaresB: sums[3],
		SumProducts: sums[4],
	}, nil
}

// Mean returns the arithmetic mean of a; NaN when a is empty.
func (c *Calculator[T]) Mean(a []T) float64 {
	sums, _ := c.reduce([][]T{a}, engine.SumOf(0))
	return Moments[T]{N: len(a), Sum: sums[0]}.Mean()
}

// Variance returns the population variance of a; NaN when a is empty.
func (c *Calculator[T]) Variance(a []T) float64 {
	return c.Moments(a).Variance()
}

// StdDev returns the population standard deviation of a.
func (c *Calculator[T]) StdDev(a []T) float64 {
	return c.Moments(a).StdDev()
}

// Covariance returns the population covariance of a and b, reducing only
// the three sums it needs.
func (c *Calculator[T]) Covariance(a, b []T) (float64, error) {
	sums, err := c.reduce([][]T{a, b}, engine.ProductsOf(0, 1), engine.SumOf(0), engine.SumOf(1))
	if err != nil {
		return 0, fmt.Errorf("stats: %w", err)
	}
	m := CrossMoments[T]{N: len(a), SumProducts: sums[0], SumA: sums[1], SumB: sums[2]}
	return m.Covariance(), nil
}

// Correlation returns the Pearson correlation coefficient of a and b.
// Constant or empty inputs yield NaN or ±Inf.
func (c *Calculator[T]) Correlation(a, b []T) (float64, error) {
	m, err := c.CrossMoments(a, b)
	if err != nil {
		return 0, err
	}
	return m.Correlation(), nil
}

// Describe returns count, sum, extrema, mean, variance and standard
// deviation of a. Min and Max are the identity values when a is empty.
func (c *Calculator[T]) Describe(a []T) Summary[T] {
	m := c.Moments(a)
	return Summary[T]{
		N:        m.N,
		Sum:      m.Sum,
		Min:      c.e.ExtremumParallel(c.pool, a, engine.KindMin),
		Max:      c.e.ExtremumParallel(c.pool, a, engine.KindMax),
		Mean:     m.Mean(),
		Variance: m.Variance(),
		StdDev:   m.StdDev(),
	}
}

// MeanStrict is Mean returning ErrEmpty for an empty array.
func (c *Calculator[T]) MeanStrict(a []T) (float64, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("stats: mean: %w", ErrEmpty)
	}
	return c.Mean(a), nil
}

// VarianceStrict is Variance returning ErrEmpty for an empty array.
func (c *Calculator[T]) VarianceStrict(a []T) (float64, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("stats: variance: %w", ErrEmpty)
	}
	return c.Variance(a), nil
}

// CorrelationStrict is Correlation returning ErrEmpty for empty arrays and
// ErrZeroVariance when either array is constant.
func (c *Calculator[T]) CorrelationStrict(a, b []T) (float64, error) {
	m, err := c.CrossMoments(a, b)
	if err != nil {
		return 0, err
	}
	if m.N == 0 {
		return 0, fmt.Errorf("stats: correlation: %w", ErrEmpty)
	}
	if m.VarianceA() <= 0 || m.VarianceB() <= 0 {
		return 0, fmt.Errorf("stats: correlation: %w", ErrZeroVariance)
	}
	return m.Correlation(), nil
}
