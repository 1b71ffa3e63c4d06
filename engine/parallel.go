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

import "github.com/go-lanes/lanes/workerpool"

// The parallel variants split the index space into contiguous spans whose
// lengths are multiples of Lanes() (pool.Spans), run the sequential code on
// each span, and combine the partial results in span order. A nil pool runs
// everything on the calling goroutine. Results equal the sequential methods.

// ReduceParallel is Reduce spread over pool.
func (e *Engine[T]) ReduceParallel(pool *workerpool.Pool, arrays [][]T, terms ...Term) ([]T, error) {
	n, err := validate(arrays, terms)
	if err != nil {
		return nil, err
	}

	spans := pool.Spans(n, e.Lanes())
	partial := make([][]T, len(spans))
	pool.Each(spans, func(i int, s workerpool.Span) {
		partial[i] = e.reduceRange(arrays, s.Start, s.End, terms)
	})

	out := make([]T, len(terms))
	for _, p := range partial {
		for i, x := range p {
			out[i] += x
		}
	}
	return out, nil
}

// ExtremumParallel is Extremum spread over pool.
func (e *Engine[T]) ExtremumParallel(pool *workerpool.Pool, a []T, kind Kind) T {
	spans := pool.Spans(len(a), e.Lanes())
	partial := make([]T, len(spans))
	pool.Each(spans, func(i int, s workerpool.Span) {
		partial[i] = e.extremum(a[s.Start:s.End], kind, e.tail)
	})

	result := Identity[T](kind)
	for _, x := range partial {
		result = Pick(kind, result, x)
	}
	return result
}

// FindParallel is Find spread over pool. Every span is searched to
// completion; the hit from the lowest span wins.
func (e *Engine[T]) FindParallel(pool *workerpool.Pool, a []T, key T) int {
	spans := pool.Spans(len(a), e.Lanes())
	hits := make([]int, len(spans))
	pool.Each(spans, func(i int, s workerpool.Span) {
		hits[i] = e.find(a[s.Start:s.End], key, e.tail)
		if hits[i] >= 0 {
			hits[i] += s.Start
		}
	})

	for _, h := range hits {
		if h >= 0 {
			return h
		}
	}
	return -1
}

// ScaleParallel is Scale spread over pool. Spans are disjoint, so workers
// never write the same element.
func (e *Engine[T]) ScaleParallel(pool *workerpool.Pool, a []T, k T) {
	spans := pool.Spans(len(a), e.Lanes())
	pool.Each(spans, func(_ int, s workerpool.Span) {
		e.Scale(a[s.Start:s.End], k)
	})
}
