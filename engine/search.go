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

import "github.com/go-lanes/lanes/lane"

// Find returns the lowest index i with a[i] == key, or -1. The remainder is
// handled with the configured tail mode.
func (e *Engine[T]) Find(a []T, key T) int { return e.find(a, key, e.tail) }

// FindScalarTail is Find with the remainder compared element by element.
func (e *Engine[T]) FindScalarTail(a []T, key T) int { return e.find(a, key, lane.TailScalar) }

// FindOverlap is Find with the remainder covered by the vector starting at
// len(a)-Lanes(). The re-read indices were already ruled out by the
// previous vector, so the first match in that window is still the leftmost.
func (e *Engine[T]) FindOverlap(a []T, key T) int { return e.find(a, key, lane.TailOverlap) }

// Contains reports whether key occurs in a.
func (e *Engine[T]) Contains(a []T, key T) bool { return e.Find(a, key) >= 0 }

// Count returns the number of elements equal to key.
func (e *Engine[T]) Count(a []T, key T) int {
	d := e.d
	keys := lane.Set(d, key)
	count := 0
	lane.ProcessWithTail(d.Lanes(), len(a),
		func(offset int) bool {
			count += lane.CountTrue(lane.Equal(keys, lane.Load(d, a[offset:])))
			return false
		},
		func(offset, n int) {
			for _, x := range a[offset : offset+n] {
				if x == key {
					count++
				}
			}
		},
	)
	return count
}

func (e *Engine[T]) find(a []T, key T, mode lane.TailMode) int {
	d := e.d
	lanes := d.Lanes()
	keys := lane.Set(d, key)

	idx := -1
	probe := func(offset int) bool {
		m := lane.Equal(keys, lane.Load(d, a[offset:]))
		if lane.AllFalse(m) {
			return false
		}
		idx = offset + lane.FindFirstTrue(m)
		return true
	}

	if mode == lane.TailOverlap && lane.ProcessOverlap(lanes, len(a), probe) {
		return idx
	}

	lane.ProcessWithTail(lanes, len(a), probe, func(offset, count int) {
		for i := offset; i < offset+count; i++ {
			if a[i] == key {
				idx = i
				return
			}
		}
	})
	return idx
}
