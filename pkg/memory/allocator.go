// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned (wrapped) by an allocator which cannot satisfy a
// request.
var ErrOutOfMemory = errors.New("out of memory")

// Allocator hands out contiguous buffers of elements, and takes them back
// again.  Every buffer obtained from Alloc must be returned to Free exactly
// once, and must not be used afterwards.  Buffers are always correctly aligned
// for T.
type Allocator[T any] interface {
	// Alloc returns a fresh, zeroed buffer of exactly n elements, or an error
	// wrapping ErrOutOfMemory.
	Alloc(n uint) ([]T, error)
	// Free returns a buffer previously obtained from Alloc.
	Free([]T)
}

// ============================================================================
// Heap
// ============================================================================

// Heap is the default allocator, which simply defers to the Go runtime.
type Heap[T any] struct{}

// NewHeap constructs a new heap allocator.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Alloc implementation for Allocator interface.  A request whose total size
// exceeds what the runtime can allocate is reported as out of memory.
func (Heap[T]) Alloc(n uint) (buf []T, err error) {
	// Guard against a length which cannot even be represented.
	if n > uint(maxInt) {
		return nil, fmt.Errorf("cannot allocate %d elements: %w", n, ErrOutOfMemory)
	}
	// make panics when n * sizeof(T) is out of range
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("cannot allocate %d elements (%v): %w", n, r, ErrOutOfMemory)
		}
	}()
	//
	return make([]T, n), nil
}

// Free implementation for Allocator interface.  The buffer is cleared so that
// anything its elements reference can be collected.
func (Heap[T]) Free(buf []T) {
	clear(buf)
}

const maxInt = int(^uint(0) >> 1)
