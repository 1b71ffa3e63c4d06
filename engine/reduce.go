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

package engine

import (
	"fmt"

	"github.com/go-lanes/lanes/lane"
)

// Op is the per-element contribution of a reduction term.
type Op int

const (
	// OpSum accumulates a[i].
	OpSum Op = iota
	// OpSumSquares accumulates a[i]*a[i].
	OpSumSquares
	// OpSumProducts accumulates a[i]*b[i].
	OpSumProducts
)

func (o Op) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpSumSquares:
		return "sum-squares"
	case OpSumProducts:
		return "sum-products"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Term is one requested reduction. A and B index the arrays passed to
// Reduce; B is only read by OpSumProducts.
type Term struct {
	Op   Op
	A, B int
}

// SumOf requests the sum of arrays[i].
func SumOf(i int) Term { return Term{Op: OpSum, A: i} }

// SquaresOf requests the sum of squares of arrays[i].
func SquaresOf(i int) Term { return Term{Op: OpSumSquares, A: i} }

// ProductsOf requests the sum of element-wise products of arrays[i] and arrays[j].
func ProductsOf(i, j int) Term { return Term{Op: OpSumProducts, A: i, B: j} }

func (t Term) String() string {
	if t.Op == OpSumProducts {
		return fmt.Sprintf("%v(%d,%d)", t.Op, t.A, t.B)
	}
	return fmt.Sprintf("%v(%d)", t.Op, t.A)
}

// Reduce computes every term over the equal-length arrays in a single pass.
//
// Each whole-vector chunk loads every referenced array once and updates one
// accumulator per term; the remainder is folded in with scalar arithmetic
// and each accumulator is collapsed once at the end. Results are identical
// to a plain left-to-right loop in T, including wraparound on overflow.
// Empty arrays yield zero for every term.
func (e *Engine[T]) Reduce(arrays [][]T, terms ...Term) ([]T, error) {
	n, err := validate(arrays, terms)
	if err != nil {
		return nil, err
	}
	return e.reduceRange(arrays, 0, n, terms), nil
}

// Sum returns the wrapping sum of a.
func (e *Engine[T]) Sum(a []T) T {
	return e.reduceRange([][]T{a}, 0, len(a), []Term{SumOf(0)})[0]
}

// SumSquares returns the wrapping sum of a[i]*a[i].
func (e *Engine[T]) SumSquares(a []T) T {
	return e.reduceRange([][]T{a}, 0, len(a), []Term{SquaresOf(0)})[0]
}

// Dot returns the wrapping dot product of a and b.
func (e *Engine[T]) Dot(a, b []T) (T, error) {
	sums, err := e.Reduce([][]T{a, b}, ProductsOf(0, 1))
	if err != nil {
		return 0, err
	}
	return sums[0], nil
}

// validate checks the arrays and terms of a Reduce call and returns the
// common length.
func validate[T lane.SignedInts](arrays [][]T, terms []Term) (int, error) {
	if len(arrays) == 0 {
		return 0, ErrNoArrays
	}
	n := len(arrays[0])
	for i, a := range arrays[1:] {
		if len(a) != n {
			return 0, &ErrLengthMismatch{Index: i + 1, Expected: n, Actual: len(a)}
		}
	}
	for _, t := range terms {
		if !t.valid(len(arrays)) {
			return 0, &ErrInvalidTerm{Term: t, Arrays: len(arrays)}
		}
	}
	return n, nil
}

func (t Term) valid(arrays int) bool {
	inRange := func(i int) bool { return i >= 0 && i < arrays }
	switch t.Op {
	case OpSum, OpSumSquares:
		return inRange(t.A)
	case OpSumProducts:
		return inRange(t.A) && inRange(t.B)
	default:
		return false
	}
}

// reduceRange evaluates terms over [start, end) of already validated arrays.
func (e *Engine[T]) reduceRange(arrays [][]T, start, end int, terms []Term) []T {
	d := e.d

	used := make([]bool, len(arrays))
	for _, t := range terms {
		used[t.A] = true
		if t.Op == OpSumProducts {
			used[t.B] = true
		}
	}

	acc := make([]lane.Vec[T], len(terms))
	for i := range acc {
		acc[i] = lane.Zero(d)
	}
	rest := make([]T, len(terms))
	vecs := make([]lane.Vec[T], len(arrays))

	lane.ProcessWithTail(d.Lanes(), end-start,
		func(offset int) bool {
			for i, a := range arrays {
				if used[i] {
					vecs[i] = lane.Load(d, a[start+offset:])
				}
			}
			for i, t := range terms {
				switch t.Op {
				case OpSum:
					acc[i] = lane.Add(acc[i], vecs[t.A])
				case OpSumSquares:
					acc[i] = lane.Add(acc[i], lane.Mul(vecs[t.A], vecs[t.A]))
				case OpSumProducts:
					acc[i] = lane.Add(acc[i], lane.Mul(vecs[t.A], vecs[t.B]))
				}
			}
			return false
		},
		func(offset, count int) {
			for j := start + offset; j < start+offset+count; j++ {
				for i, t := range terms {
					x := arrays[t.A][j]
					switch t.Op {
					case OpSum:
						rest[i] += x
					case OpSumSquares:
						rest[i] += x * x
					case OpSumProducts:
						rest[i] += x * arrays[t.B][j]
					}
				}
			}
		},
	)

	out := make([]T, len(terms))
	for i := range terms {
		out[i] = lane.ReduceSum(acc[i]) + rest[i]
	}
	return out
}
