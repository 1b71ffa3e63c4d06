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
	"errors"
	"fmt"
)

var (
	// ErrNoArrays is returned by Reduce when called without input arrays.
	ErrNoArrays = errors.New("no input arrays")

	// ErrEmpty is returned by the checked extremum variants for an empty
	// array, where the unchecked forms return the identity element.
	ErrEmpty = errors.New("empty array")

	// ErrInvalidOption is returned by New for an out-of-range setting.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidInput is the cause of every typed argument error below, so
	// callers can test for the whole class with errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrLengthMismatch indicates that arrays combined element by element have
// different lengths.
type ErrLengthMismatch struct {
	// Index is the position of the offending array in the argument list.
	Index    int
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: array %d has %d elements, expected %d", e.Index, e.Actual, e.Expected)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidInput }

// ErrInvalidTerm indicates a reduction term with an unknown op or an array
// index outside the argument list.
type ErrInvalidTerm struct {
	Term   Term
	Arrays int
}

func (e *ErrInvalidTerm) Error() string {
	return fmt.Sprintf("invalid term %v for %d arrays", e.Term, e.Arrays)
}

func (e *ErrInvalidTerm) Unwrap() error { return ErrInvalidInput }

// ErrShape indicates a rows x cols matrix shape that does not fit the
// backing slice.
type ErrShape struct {
	Rows, Cols int
	Len        int
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("shape %dx%d does not fit %d elements", e.Rows, e.Cols, e.Len)
}

func (e *ErrShape) Unwrap() error { return ErrInvalidInput }
