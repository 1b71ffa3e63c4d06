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

import "math/bits"

// Equal performs lane-wise equality comparison.
func Equal[T SignedInts](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	var m uint64
	for i := range n {
		if a.data[i] == b.data[i] {
			m |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: m, lanes: n}
}

// AllFalse reports whether no lane is set. It is the cheap "is the mask
// entirely zero" test used to skip chunks without a match.
func AllFalse[T SignedInts](m Mask[T]) bool {
	return m.bits == 0
}

// BitsFromMask converts the mask to an integer where bit i is lane i.
func BitsFromMask[T SignedInts](m Mask[T]) uint64 {
	return m.bits
}

// FindFirstTrue returns the lowest set lane, or -1 if none is set.
func FindFirstTrue[T SignedInts](m Mask[T]) int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// CountTrue returns the number of set lanes.
func CountTrue[T SignedInts](m Mask[T]) int {
	return bits.OnesCount64(m.bits)
}
