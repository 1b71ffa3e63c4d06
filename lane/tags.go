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

// Tag represents a register size that determines how many lanes a Desc
// uses for a given element type.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
type ScalableTag struct{}

// Width returns the current runtime register width in bytes.
func (ScalableTag) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag) Name() string {
	return currentLevel.String()
}

// FixedTag128 forces 128-bit vectors (SSE2, NEON).
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int { return 16 }

// Name returns "128bit".
func (FixedTag128) Name() string { return "128bit" }

// FixedTag256 forces 256-bit vectors (AVX2). For int32 this is the
// 8-lane configuration.
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int { return 32 }

// Name returns "256bit".
func (FixedTag256) Name() string { return "256bit" }

// FixedTag512 forces 512-bit vectors (AVX-512).
type FixedTag512 struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512) Width() int { return 64 }

// Name returns "512bit".
func (FixedTag512) Name() string { return "512bit" }

// ScalarTag selects a single lane regardless of element type. Lane-parallel
// algorithms run with a ScalarTag degrade to the plain scalar loop, which
// makes it the reference configuration.
type ScalarTag struct{}

// Width returns 0; a Desc built from it always has one lane.
func (ScalarTag) Width() int { return 0 }

// Name returns "scalar".
func (ScalarTag) Name() string { return "scalar" }

// Desc fixes the lane count used by Load, Set and Zero for element type T.
type Desc[T SignedInts] struct {
	lanes int
}

// Of returns a descriptor with as many lanes of T as fit in tag's width.
func Of[T SignedInts](tag Tag) Desc[T] {
	return Desc[T]{lanes: lanesFor[T](tag.Width())}
}

// Fixed returns a descriptor with exactly n lanes. It panics unless
// 1 <= n <= MaxLaneCount.
func Fixed[T SignedInts](n int) Desc[T] {
	if n < 1 || n > MaxLaneCount {
		panic(fmt.Sprintf("lane: lane count %d out of range [1, %d]", n, MaxLaneCount))
	}
	return Desc[T]{lanes: n}
}

// Scalable returns a descriptor for the current runtime width.
func Scalable[T SignedInts]() Desc[T] {
	return Of[T](ScalableTag{})
}

// Lanes returns the number of lanes. The zero Desc reports one lane.
func (d Desc[T]) Lanes() int {
	if d.lanes == 0 {
		return 1
	}
	return d.lanes
}

// String implements fmt.Stringer.
func (d Desc[T]) String() string {
	var zero T
	return fmt.Sprintf("%dx%T", d.Lanes(), zero)
}
