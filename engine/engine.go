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

// Package engine implements lane-parallel reductions, extrema, searches and
// scaling over signed integer slices.
//
// One Engine serves every operation: it streams the input through
// whole-vector chunks of its lane count, keeps one accumulator per requested
// reduction, collapses each accumulator once, and handles the remainder
// either element by element (TailScalar) or, for idempotent operations, by
// re-reading the last whole vector (TailOverlap).
//
// An Engine with one lane (Scalar) runs the same code as the plain
// left-to-right loop and serves as the reference implementation: every other
// configuration returns bit-identical results, including fixed-width
// wraparound on overflow.
//
// Example:
//
//	e := engine.Default[int32]()
//	total := e.Sum(data)
//	idx := e.Find(data, 42)
package engine

import (
	"fmt"

	"github.com/go-lanes/lanes/lane"
)

// Engine runs reductions, searches and scaling with a fixed lane count and
// tail strategy. It holds no mutable state and is safe for concurrent use.
type Engine[T lane.SignedInts] struct {
	d    lane.Desc[T]
	tail lane.TailMode
}

type options struct {
	tag   lane.Tag
	lanes int
	tail  lane.TailMode
}

// Option configures an Engine.
type Option func(*options)

// WithTag sizes the lane count from a register width tag. It is ignored
// when WithLanes is also given.
func WithTag(tag lane.Tag) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// WithLanes sets an explicit lane count in [1, lane.MaxLaneCount].
// Zero keeps the tag-derived width.
func WithLanes(n int) Option {
	return func(o *options) {
		o.lanes = n
	}
}

// WithTail selects how Min, Max and Find handle the array remainder.
// Sums and Scale always finish with scalar code.
func WithTail(mode lane.TailMode) Option {
	return func(o *options) {
		o.tail = mode
	}
}

// New returns an Engine configured by opts. Without options it uses the
// runtime register width and TailScalar.
func New[T lane.SignedInts](opts ...Option) (*Engine[T], error) {
	o := options{tag: lane.ScalableTag{}, tail: lane.TailScalar}
	for _, opt := range opts {
		opt(&o)
	}

	if o.tail != lane.TailScalar && o.tail != lane.TailOverlap {
		return nil, fmt.Errorf("engine: %w: %v", ErrInvalidOption, o.tail)
	}

	var d lane.Desc[T]
	switch {
	case o.lanes < 0 || o.lanes > lane.MaxLaneCount:
		return nil, fmt.Errorf("engine: %w: lane count %d", ErrInvalidOption, o.lanes)
	case o.lanes > 0:
		d = lane.Fixed[T](o.lanes)
	case o.tag != nil:
		d = lane.Of[T](o.tag)
	default:
		d = lane.Scalable[T]()
	}

	return &Engine[T]{d: d, tail: o.tail}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew[T lane.SignedInts](opts ...Option) *Engine[T] {
	e, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns an Engine using the runtime register width and TailScalar.
func Default[T lane.SignedInts]() *Engine[T] {
	return &Engine[T]{d: lane.Scalable[T](), tail: lane.TailScalar}
}

// Scalar returns the one-lane reference Engine.
func Scalar[T lane.SignedInts]() *Engine[T] {
	return &Engine[T]{d: lane.Of[T](lane.ScalarTag{}), tail: lane.TailScalar}
}

// Lanes returns the number of elements processed per vector.
func (e *Engine[T]) Lanes() int {
	return e.d.Lanes()
}

// Tail returns the configured tail strategy.
func (e *Engine[T]) Tail() lane.TailMode {
	return e.tail
}

// String implements fmt.Stringer.
func (e *Engine[T]) String() string {
	return fmt.Sprintf("engine(%v, tail=%v)", e.d, e.tail)
}
