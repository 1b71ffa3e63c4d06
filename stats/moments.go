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

// Package stats derives descriptive statistics from the integer reductions
// of package engine.
//
// All statistics are population statistics (divide by N) computed in
// float64 from raw sums:
//
//	mean       = Σa / N
//	variance   = Σa² / N - mean²
//	covariance = Σab / N - meanA·meanB
//	correlation = covariance / (stddevA · stddevB)
//
// The raw sums are T-typed and wrap on overflow exactly like the engine
// does. Empty or constant inputs are not special-cased: 0/0 yields NaN and
// x/0 yields ±Inf, following float64 arithmetic. The Strict methods of
// Calculator report those cases as errors instead.
package stats

import (
	"math"

	"github.com/go-lanes/lanes/lane"
)

// Moments holds the sums needed for the mean and variance of one array.
type Moments[T lane.SignedInts] struct {
	N          int
	Sum        T
	SumSquares T
}

// Mean returns Sum / N.
func (m Moments[T]) Mean() float64 {
	return float64(m.Sum) / float64(m.N)
}

// Variance returns the population variance E[x²] - E[x]².
func (m Moments[T]) Variance() float64 {
	mean := m.Mean()
	return float64(m.SumSquares)/float64(m.N) - mean*mean
}

// StdDev returns the square root of Variance.
func (m Moments[T]) StdDev() float64 {
	return math.Sqrt(m.Variance())
}

// CrossMoments holds the sums needed for covariance and correlation of two
// equal-length arrays.
type CrossMoments[T lane.SignedInts] struct {
	N           int
	SumA        T
	SumB        T
	SumSquaresA T
	SumSquaresB T
	SumProducts T
}

// A returns the moments of the first array.
func (m CrossMoments[T]) A() Moments[T] {
	return Moments[T]{N: m.N, Sum: m.SumA, SumSquares: m.SumSquaresA}
}

// B returns the moments of the second array.
func (m CrossMoments[T]) B() Moments[T] {
	return Moments[T]{N: m.N, Sum: m.SumB, SumSquares: m.SumSquaresB}
}

func (m CrossMoments[T]) MeanA() float64     { return m.A().Mean() }
func (m CrossMoments[T]) MeanB() float64     { return m.B().Mean() }
func (m CrossMoments[T]) VarianceA() float64 { return m.A().Variance() }
func (m CrossMoments[T]) VarianceB() float64 { return m.B().Variance() }

// Covariance returns the population covariance E[ab] - E[a]·E[b]. It only
// reads N, SumA, SumB and SumProducts.
func (m CrossMoments[T]) Covariance() float64 {
	return float64(m.SumProducts)/float64(m.N) - m.MeanA()*m.MeanB()
}

// Correlation returns the Pearson correlation coefficient.
func (m CrossMoments[T]) Correlation() float64 {
	return m.Covariance() / (m.A().StdDev() * m.B().StdDev())
}

// Summary describes a single array.
type Summary[T lane.SignedInts] struct {
	N        int
	Sum      T
	Min      T
	Max      T
	Mean     float64
	Variance float64
	StdDev   float64
}
