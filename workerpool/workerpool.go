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

// Package workerpool provides a persistent, reusable worker pool for
// partitioned array work. A Pool is created once and reused across many
// calls, so splitting a large reduction across cores costs no goroutine
// spawns per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	spans := pool.Spans(len(data), 8)
//	partial := make([]int32, len(spans))
//	pool.Each(spans, func(i int, s workerpool.Span) {
//	    partial[i] = sum(data[s.Start:s.End])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of work and the barrier to signal.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// Span is the half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns End - Start.
func (s Span) Len() int {
	return s.End - s.Start
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Spans splits [0, n) into at most NumWorkers contiguous spans in ascending
// order. Every span except the last has a length that is a multiple of
// align, so each partition starts on a whole-vector boundary. A nil or
// closed pool yields a single span.
func (p *Pool) Spans(n, align int) []Span {
	if n <= 0 {
		return nil
	}
	if align < 1 {
		align = 1
	}

	workers := 1
	if p != nil && !p.closed.Load() {
		workers = p.numWorkers
	}

	chunk := (n + workers - 1) / workers
	chunk = ((chunk + align - 1) / align) * align

	spans := make([]Span, 0, workers)
	for start := 0; start < n; start += chunk {
		spans = append(spans, Span{Start: start, End: min(start+chunk, n)})
	}
	return spans
}

// Each runs fn(i, spans[i]) for every span on the pool and blocks until all
// calls return. With a single span, or a nil or closed pool, the calls run
// sequentially on the calling goroutine.
func (p *Pool) Each(spans []Span, fn func(i int, s Span)) {
	if len(spans) == 0 {
		return
	}

	if p == nil || p.closed.Load() || len(spans) == 1 {
		for i, s := range spans {
			fn(i, s)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(spans))
	for i, s := range spans {
		p.workC <- workItem{
			fn:      func() { fn(i, s) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor executes fn over [0, n) split into contiguous ranges, one per
// worker. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.Each(p.Spans(n, 1), func(_ int, s Span) {
		fn(s.Start, s.End)
	})
}
