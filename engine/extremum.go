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

// Kind selects between the minimum and maximum reductions.
type Kind int

const (
	KindMin Kind = iota
	KindMax
)

func (k Kind) String() string {
	switch k {
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Identity returns the value that leaves the reduction unchanged: the
// largest T for min and the smallest T for max.
func Identity[T lane.SignedInts](kind Kind) T {
	if kind == KindMax {
		return lane.MinValue[T]()
	}
	return lane.MaxValue[T]()
}

// Pick combines two candidates under kind.
func Pick[T lane.SignedInts](kind Kind, x, y T) T {
	if kind == KindMax {
		return max(x, y)
	}
	return min(x, y)
}

// Min returns the smallest element of a, or lane.MaxValue for an empty array.
func (e *Engine[T]) Min(a []T) T { return e.extremum(a, KindMin, e.tail) }

// Max returns the largest element of a, or lane.MinValue for an empty array.
func (e *Engine[T]) Max(a []T) T { return e.extremum(a, KindMax, e.tail) }

// Extremum returns the minimum or maximum of a with the configured tail mode.
func (e *Engine[T]) Extremum(a []T, kind Kind) T { return e.extremum(a, kind, e.tail) }

// MinScalarTail is Min with the remainder handled element by element.
func (e *Engine[T]) MinScalarTail(a []T) T { return e.extremum(a, KindMin, lane.TailScalar) }

// MaxScalarTail is Max with the remainder handled element by element.
func (e *Engine[T]) MaxScalarTail(a []T) T { return e.extremum(a, KindMax, lane.TailScalar) }

// MinOverlap is Min with the remainder covered by one overlapping vector
// ending at the last element. Arrays shorter than one vector fall back to
// scalar code.
func (e *Engine[T]) MinOverlap(a []T) T { return e.extremum(a, KindMin, lane.TailOverlap) }

// MaxOverlap is the Max counterpart of MinOverlap.
func (e *Engine[T]) MaxOverlap(a []T) T { return e.extremum(a, KindMax, lane.TailOverlap) }

// MinChecked is Min returning ErrEmpty instead of the identity.
func (e *Engine[T]) MinChecked(a []T) (T, error) {
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	return e.Min(a), nil
}

// MaxChecked is Max returning ErrEmpty instead of the identity.
func (e *Engine[T]) MaxChecked(a []T) (T, error) {
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	return e.Max(a), nil
}

// ArgMin returns the lowest index holding the minimum, or -1 if a is empty.
func (e *Engine[T]) ArgMin(a []T) int {
	if len(a) == 0 {
		return -1
	}
	return e.Find(a, e.Min(a))
}

// ArgMax returns the lowest index holding the maximum, or -1 if a is empty.
func (e *Engine[T]) ArgMax(a []T) int {
	if len(a) == 0 {
		return -1
	}
	return e.Find(a, e.Max(a))
}

func (e *Engine[T]) extremum(a []T, kind Kind, mode lane.TailMode) T {
	d := e.d
	lanes := d.Lanes()

	combine, collapse := lane.Min[T], lane.ReduceMin[T]
	if kind == KindMax {
		combine, collapse = lane.Max[T], lane.ReduceMax[T]
	}
	identity := Identity[T](kind)

	acc := lane.Set(d, identity)
	full := func(offset int) bool {
		acc = combine(acc, lane.Load(d, a[offset:]))
		return false
	}

	if mode == lane.TailOverlap && lane.ProcessOverlap(lanes, len(a), full) {
		return collapse(acc)
	}

	rest := identity
	lane.ProcessWithTail(lanes, len(a), full, func(offset, count int) {
		for _, x := range a[offset : offset+count] {
			rest = Pick(kind, rest, x)
		}
	})
	return Pick(kind, collapse(acc), rest)
}
