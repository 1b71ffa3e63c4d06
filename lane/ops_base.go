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

package lane

import "fmt"

// This file provides the portable implementations of the lane operations.
// Every operation works on whole vectors; integer arithmetic wraps at the
// element width exactly like the Go operators.

// Load creates a vector from the first d.Lanes() elements of src
// (unaligned load). It panics if src is shorter than one vector.
func Load[T SignedInts](d Desc[T], src []T) Vec[T] {
	n := d.Lanes()
	if len(src) < n {
		panic(fmt.Sprintf("lane: Load of %d elements into %d lanes", len(src), n))
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes all lanes of v to dst (unaligned store). It panics if dst is
// shorter than one vector.
func Store[T SignedInts](v Vec[T], dst []T) {
	if len(dst) < len(v.data) {
		panic(fmt.Sprintf("lane: Store of %d lanes into %d elements", len(v.data), len(dst)))
	}
	copy(dst, v.data)
}

// Set creates a vector with all lanes set to value (broadcast).
func Set[T SignedInts](d Desc[T], value T) Vec[T] {
	data := make([]T, d.Lanes())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T SignedInts](d Desc[T]) Vec[T] {
	return Vec[T]{data: make([]T, d.Lanes())}
}

// Add performs lane-wise wrapping addition.
func Add[T SignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication keeping the low bits of each
// product (mullo).
func Mul[T SignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum.
func Min[T SignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum.
func Max[T SignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// ReduceSum collapses v to the wrapping sum of its lanes.
//
// The fold is pairwise: the upper half is added onto the lower half until a
// single lane remains. With an odd lane count the middle lane is carried to
// the next round unchanged. Wrapping addition is associative, so the result
// equals a left-to-right sum.
func ReduceSum[T SignedInts](v Vec[T]) T {
	n := len(v.data)
	if n == 0 {
		return 0
	}
	buf := make([]T, n)
	copy(buf, v.data)
	for n > 1 {
		half := n / 2
		for i := range half {
			buf[i] += buf[n-half+i]
		}
		n -= half
	}
	return buf[0]
}

// ReduceMin returns the smallest lane, comparing lanes one by one.
func ReduceMin[T SignedInts](v Vec[T]) T {
	if len(v.data) == 0 {
		return MaxValue[T]()
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the largest lane, comparing lanes one by one.
func ReduceMax[T SignedInts](v Vec[T]) T {
	if len(v.data) == 0 {
		return MinValue[T]()
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
