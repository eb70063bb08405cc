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
package vector

import (
	"fmt"

	"github.com/consensys/go-linalg/pkg/memory"
)

// Destructible can be implemented by element types which need to know when
// the vector holding them gives up its storage.  Destroy is called exactly once
// per constructed element, in reverse order of construction.
type Destructible interface {
	Destroy()
}

// builder fills a freshly allocated buffer one element at a time.  Unless it
// is finished, abandoning a builder destructs the elements constructed so far
// and frees the buffer.  The intended usage is:
//
//	b, err := newBuilder(alloc, n)
//	...
//	defer b.abandon()
//	...
//	return b.finish()
//
// Thus, both an early error return and a panic in the middle of construction
// leave nothing behind.
type builder[R any] struct {
	alloc memory.Allocator[R]
	buf   []R
	// Number of elements constructed so far.
	count int
	// Signals the buffer has been handed off (or already released).
	done bool
}

func newBuilder[R any](alloc memory.Allocator[R], n uint) (*builder[R], error) {
	buf, err := alloc.Alloc(n)
	//
	if err != nil {
		return nil, fmt.Errorf("vector of %d elements: %w", n, err)
	} else if uint(len(buf)) != n {
		panic(fmt.Sprintf("allocator returned %d elements (requested %d)", len(buf), n))
	}
	//
	return &builder[R]{alloc: alloc, buf: buf}, nil
}

func (b *builder[R]) full() bool {
	return b.count == len(b.buf)
}

func (b *builder[R]) push(element R) {
	b.buf[b.count] = element
	b.count++
}

// finish hands off the completed buffer.
func (b *builder[R]) finish() []R {
	if !b.full() {
		panic(fmt.Sprintf("incomplete vector (%d of %d elements)", b.count, len(b.buf)))
	}
	//
	b.done = true
	//
	return b.buf
}

// abandon rolls back an unfinished builder.
func (b *builder[R]) abandon() {
	if b.done {
		return
	}
	//
	b.done = true
	destroy(b.buf[:b.count])
	b.alloc.Free(b.buf)
}

// destroy notifies constructed elements, last first.
func destroy[R any](elements []R) {
	for i := len(elements) - 1; i >= 0; i-- {
		if d, ok := any(&elements[i]).(Destructible); ok {
			d.Destroy()
		}
	}
}
