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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestSpans(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		n, align int
		want     []Span
	}{
		{0, 8, nil},
		{3, 8, []Span{{0, 3}}},
		{100, 1, []Span{{0, 25}, {25, 50}, {50, 75}, {75, 100}}},
		{100, 8, []Span{{0, 32}, {32, 64}, {64, 96}, {96, 100}}},
		{20, 8, []Span{{0, 8}, {8, 16}, {16, 20}}},
	}
	for _, tt := range tests {
		got := pool.Spans(tt.n, tt.align)
		if len(got) != len(tt.want) {
			t.Errorf("Spans(%d, %d) = %v, want %v", tt.n, tt.align, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Spans(%d, %d)[%d] = %v, want %v", tt.n, tt.align, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSpansCoverRange(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for n := 1; n < 200; n++ {
		spans := pool.Spans(n, 8)
		next := 0
		for i, s := range spans {
			if s.Start != next {
				t.Fatalf("n=%d: span %d starts at %d, want %d", n, i, s.Start, next)
			}
			if i < len(spans)-1 && s.Len()%8 != 0 {
				t.Fatalf("n=%d: span %d has unaligned length %d", n, i, s.Len())
			}
			next = s.End
		}
		if next != n {
			t.Fatalf("n=%d: spans end at %d", n, next)
		}
		if len(spans) > pool.NumWorkers() {
			t.Fatalf("n=%d: %d spans for %d workers", n, len(spans), pool.NumWorkers())
		}
	}
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	spans := pool.Spans(1000, 8)
	sums := make([]int, len(spans))
	pool.Each(spans, func(i int, s Span) {
		for j := s.Start; j < s.End; j++ {
			sums[i] += j
		}
	})

	total := 0
	for _, s := range sums {
		total += s
	}
	if want := 999 * 1000 / 2; total != want {
		t.Errorf("total = %d, want %d", total, want)
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // second close is a no-op

	if got := len(pool.Spans(100, 1)); got != 1 {
		t.Errorf("closed pool: %d spans, want 1", got)
	}

	var calls atomic.Int32
	pool.ParallelFor(10, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 10 {
			t.Errorf("closed pool: range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("closed pool: %d calls, want 1", calls.Load())
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool
	count := 0
	pool.ParallelFor(5, func(start, end int) {
		count += end - start
	})
	if count != 5 {
		t.Errorf("nil pool: covered %d indices, want 5", count)
	}
}
