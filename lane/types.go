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

// Package lane provides a portable fixed-width integer vector for
// lane-parallel reductions and searches.
//
// A Vec holds exactly Lanes() values of one signed integer type and every
// operation touches all of them: there is no partial-lane masking, so callers
// are expected to handle array remainders themselves (see ProcessWithTail and
// ProcessOverlap). Arithmetic wraps at the element width, exactly like the
// scalar Go operators, which keeps lane-parallel and one-lane results
// bit-identical.
//
// Basic usage:
//
//	import "github.com/go-lanes/lanes/lane"
//
//	d := lane.Of[int32](lane.FixedTag256{})  // 8 lanes
//	acc := lane.Zero(d)
//	for i := 0; i+d.Lanes() <= len(data); i += d.Lanes() {
//		acc = lane.Add(acc, lane.Load(d, data[i:]))
//	}
//	total := lane.ReduceSum(acc)
package lane

// SignedInts is a constraint for the fixed-width signed integer types that
// can be stored in lanes.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// MaxLaneCount is the largest lane count a Desc can describe. Masks are
// stored as one bit per lane in a uint64.
const MaxLaneCount = 64

// Vec is a vector of exactly Lanes() integers.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T SignedInts] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lane values. Intended for tests and debugging.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is the result of a lane-wise comparison, one bit per lane.
//
// Bit i is set when lane i compared true. Masks are created by Equal.
type Mask[T SignedInts] struct {
	bits  uint64
	lanes int
}

// NumLanes returns the number of lanes covered by this mask.
func (m Mask[T]) NumLanes() int {
	return m.lanes
}

// GetBit returns whether lane i is set.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.lanes {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}
