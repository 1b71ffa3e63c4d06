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

import (
	"fmt"
	"strings"
)

// TailMode selects how the 0..lanes-1 trailing elements of an array are
// handled after the last whole vector.
type TailMode int

const (
	// TailScalar processes the remainder one element at a time.
	TailScalar TailMode = iota

	// TailOverlap re-reads one whole vector ending at the last element.
	// Elements already seen are visited twice, so it only suits idempotent
	// operations (min, max, equality search).
	TailOverlap
)

// String returns "scalar" or "overlap".
func (m TailMode) String() string {
	switch m {
	case TailScalar:
		return "scalar"
	case TailOverlap:
		return "overlap"
	default:
		return fmt.Sprintf("TailMode(%d)", int(m))
	}
}

// ParseTailMode parses "scalar" or "overlap" (case-insensitive).
func ParseTailMode(s string) (TailMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "":
		return TailScalar, nil
	case "overlap":
		return TailOverlap, nil
	default:
		return TailScalar, fmt.Errorf("lane: unknown tail mode %q", s)
	}
}

// ProcessWithTail walks a size-element array in whole vectors of lanes
// elements and then hands the remainder to tailFn.
//
// It calls:
//   - fullFn(offset) for each whole vector, in ascending offset order
//   - tailFn(offset, count) once for the count < lanes trailing elements,
//     if any
//
// fullFn returns true to stop early; tailFn is not called in that case.
//
// Example:
//
//	lane.ProcessWithTail(d.Lanes(), len(data),
//	    func(offset int) bool {
//	        acc = lane.Add(acc, lane.Load(d, data[offset:]))
//	        return false
//	    },
//	    func(offset, count int) {
//	        for _, x := range data[offset : offset+count] {
//	            rest += x
//	        }
//	    },
//	)
func ProcessWithTail(lanes, size int, fullFn func(offset int) bool, tailFn func(offset, count int)) {
	whole := FullLength(size, lanes)
	for offset := 0; offset < whole; offset += lanes {
		if fullFn(offset) {
			return
		}
	}
	if remaining := size - whole; remaining > 0 {
		tailFn(whole, remaining)
	}
}

// ProcessOverlap is ProcessWithTail without a tail function: when size is
// not a multiple of lanes it calls fullFn one more time at size-lanes, a
// window that overlaps the previous vector and ends at the last element.
//
// It returns false without calling fullFn when size < lanes; the caller has
// no whole vector to work with and must fall back to scalar code.
func ProcessOverlap(lanes, size int, fullFn func(offset int) bool) bool {
	if size < lanes {
		return false
	}
	whole := FullLength(size, lanes)
	for offset := 0; offset < whole; offset += lanes {
		if fullFn(offset) {
			return true
		}
	}
	if whole != size {
		fullFn(size - lanes)
	}
	return true
}

// FullLength returns size rounded down to a multiple of lanes: the number of
// elements covered by whole vectors.
func FullLength(size, lanes int) int {
	if lanes <= 1 {
		return size
	}
	return size - size%lanes
}

// AlignedSize rounds size up to the next multiple of lanes.
func AlignedSize(size, lanes int) int {
	if lanes <= 1 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
