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
	"fmt"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

// Bounded is an allocator which limits the total number of elements live at
// any one time.  It additionally keeps track of every buffer it has handed out,
// such that a buffer freed twice (or never allocated here) is caught.  Buffers
// are identified by address, hence zero-sized element types are not supported.
// This is not safe for concurrent use.
type Bounded[T any] struct {
	// Maximum number of elements which can be live at once.
	limit uint
	// Number of elements currently live.
	live uint
	// Number of successful allocations.
	allocs uint
	// Number of frees.
	frees uint
	// Live buffers, keyed by the address of their first element.
	buffers map[*T]uint
}

// NewBounded constructs an allocator which permits at most limit elements to
// be live at any one time.  This panics for a zero-sized element type, since
// its buffers cannot be told apart.
func NewBounded[T any](limit uint) *Bounded[T] {
	if unsafe.Sizeof(*new(T)) == 0 {
		panic("zero-sized element type")
	}
	//
	return &Bounded[T]{limit: limit, buffers: make(map[*T]uint)}
}

// Alloc implementation for Allocator interface.
func (p *Bounded[T]) Alloc(n uint) ([]T, error) {
	if n == 0 {
		// Zero-length buffers have no identity to track.
		panic("zero-length allocation")
	} else if n > p.limit-p.live {
		log.Debugf("refusing allocation of %d elements (%d of %d live)", n, p.live, p.limit)
		//
		return nil, fmt.Errorf("cannot allocate %d elements (%d of %d live): %w", n, p.live, p.limit, ErrOutOfMemory)
	}
	//
	buf, err := Heap[T]{}.Alloc(n)
	if err != nil {
		return nil, err
	}
	//
	p.buffers[&buf[0]] = n
	p.live += n
	p.allocs++
	//
	return buf, nil
}

// Free implementation for Allocator interface.
func (p *Bounded[T]) Free(buf []T) {
	if len(buf) == 0 {
		panic("free of empty buffer")
	}
	//
	n, ok := p.buffers[&buf[0]]
	//
	if !ok {
		panic("double free (or buffer not owned by this allocator)")
	} else if n != uint(len(buf)) {
		panic(fmt.Sprintf("free of %d elements, but %d allocated", len(buf), n))
	}
	//
	delete(p.buffers, &buf[0])
	clear(buf)
	p.live -= n
	p.frees++
}

// Limit returns the maximum number of elements which can be live at once.
func (p *Bounded[T]) Limit() uint {
	return p.limit
}

// Live returns the number of elements currently live.
func (p *Bounded[T]) Live() uint {
	return p.live
}

// Allocs returns the number of successful allocations made so far.
func (p *Bounded[T]) Allocs() uint {
	return p.allocs
}

// Frees returns the number of buffers freed so far.
func (p *Bounded[T]) Frees() uint {
	return p.frees
}
