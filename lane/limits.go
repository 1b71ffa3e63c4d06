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
	"math"
	"unsafe"
)

// MaxValue returns the largest value representable by T. It is the identity
// element of a running minimum.
func MaxValue[T SignedInts]() T {
	var limit int64
	switch sizeOf[T]() {
	case 1:
		limit = math.MaxInt8
	case 2:
		limit = math.MaxInt16
	case 4:
		limit = math.MaxInt32
	default:
		limit = math.MaxInt64
	}
	return T(limit)
}

// MinValue returns the smallest value representable by T. It is the identity
// element of a running maximum.
func MinValue[T SignedInts]() T {
	var limit int64
	switch sizeOf[T]() {
	case 1:
		limit = math.MinInt8
	case 2:
		limit = math.MinInt16
	case 4:
		limit = math.MinInt32
	default:
		limit = math.MinInt64
	}
	return T(limit)
}

// sizeOf returns the size of T in bytes.
func sizeOf[T SignedInts]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
