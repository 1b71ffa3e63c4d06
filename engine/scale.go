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

// Scale multiplies every element of a by k in place, keeping the low bits
// of each product.
//
// Whole vectors are processed while a full vector still fits; the remaining
// elements are scaled one at a time. Scale never uses the overlap tail,
// which would multiply part of the array twice.
func (e *Engine[T]) Scale(a []T, k T) {
	d := e.d
	factor := lane.Set(d, k)
	lane.ProcessWithTail(d.Lanes(), len(a),
		func(offset int) bool {
			lane.Store(lane.Mul(lane.Load(d, a[offset:]), factor), a[offset:])
			return false
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				a[i] *= k
			}
		},
	)
}

// ScaleMatrix scales the rows x cols row-major matrix stored at the front
// of a. Elements past rows*cols are left untouched.
func (e *Engine[T]) ScaleMatrix(a []T, rows, cols int, k T) error {
	if rows < 0 || cols < 0 || (cols > 0 && rows > len(a)/cols) {
		return &ErrShape{Rows: rows, Cols: cols, Len: len(a)}
	}
	e.Scale(a[:rows*cols], k)
	return nil
}
