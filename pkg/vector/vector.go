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
	"iter"
	"slices"
	"strings"

	"github.com/consensys/go-linalg/pkg/algebra"
	"github.com/consensys/go-linalg/pkg/memory"
)

// Vector is a non-empty, fixed-length sequence of elements drawn from a ring.
// A vector exclusively owns its storage, which is obtained from (and returned
// to) an allocator.  Once released (or moved from) a vector holds no storage,
// has length zero and cannot be used in arithmetic.  The zero value of Vector
// is such a released vector.
//
// Operations on two vectors require them to have the same length, and indices
// must be within bounds.  These are programming errors, and violating them
// panics.
type Vector[R any, S algebra.Ring[R]] struct {
	values []R
	alloc  memory.Allocator[R]
}

// Native is a vector of primitive numbers.
type Native[T algebra.Number] = Vector[T, algebra.Native[T]]

// Real is a vector of primitive numbers which support division.
type Real[T algebra.Fractional] = Vector[T, algebra.NativeField[T]]

// Over is a vector of method-based ring elements.
type Over[E algebra.RingElement[E]] = Vector[E, algebra.Elements[E]]

// OverField is a vector of method-based field elements.
type OverField[E algebra.FieldElement[E]] = Vector[E, algebra.ElementField[E]]

// Option configures the construction of a vector.
type Option[R any] func(*options[R])

type options[R any] struct {
	alloc memory.Allocator[R]
}

// WithAllocator determines the allocator from which storage is obtained.  The
// allocator is retained, and results of arithmetic on the vector are allocated
// from it as well.
func WithAllocator[R any](alloc memory.Allocator[R]) Option[R] {
	return func(o *options[R]) {
		o.alloc = alloc
	}
}

func allocator[R any](opts []Option[R]) memory.Allocator[R] {
	var cfg = options[R]{memory.NewHeap[R]()}
	//
	for _, opt := range opts {
		opt(&cfg)
	}
	//
	return cfg.alloc
}

// ============================================================================
// Construction
// ============================================================================

// New constructs a vector of n copies of a given value.  This panics if n is
// zero, and fails if storage cannot be allocated.
func New[R any, S algebra.Ring[R]](n uint, value R, opts ...Option[R]) (*Vector[R, S], error) {
	if n == 0 {
		panic("vector cannot be empty")
	}
	//
	return build[R, S](allocator(opts), n, func(uint) R { return value })
}

// Zero constructs a vector of n copies of the additive identity.
func Zero[R any, S algebra.Ring[R]](n uint, opts ...Option[R]) (*Vector[R, S], error) {
	return New[R, S](n, algebra.Zero[R, S](), opts...)
}

// One constructs a vector of n copies of the multiplicative identity.
func One[R any, S algebra.Ring[R]](n uint, opts ...Option[R]) (*Vector[R, S], error) {
	return New[R, S](n, algebra.One[R, S](), opts...)
}

// FromSlice constructs a vector holding a copy of the given elements.  This
// panics if there are none.
func FromSlice[R any, S algebra.Ring[R]](elements []R, opts ...Option[R]) (*Vector[R, S], error) {
	if len(elements) == 0 {
		panic("vector cannot be empty")
	}
	//
	return build[R, S](allocator(opts), uint(len(elements)), func(i uint) R { return elements[i] })
}

// FromSeq constructs a vector from a sequence, which must be non-empty and
// which is traversed twice: once to measure it, and once to copy it.  This
// panics if the second traversal yields fewer elements than the first.
func FromSeq[R any, S algebra.Ring[R]](seq iter.Seq[R], opts ...Option[R]) (*Vector[R, S], error) {
	var n uint
	//
	for range seq {
		n++
	}
	//
	if n == 0 {
		panic("vector cannot be empty")
	}
	//
	var alloc = allocator(opts)
	//
	b, err := newBuilder(alloc, n)
	if err != nil {
		return nil, err
	}
	//
	defer b.abandon()
	//
	for element := range seq {
		if b.full() {
			break
		}
		//
		b.push(element)
	}
	//
	return &Vector[R, S]{b.finish(), alloc}, nil
}

// Convert constructs a vector by converting each of the given items.  If a
// conversion fails, those elements constructed already are destructed, the
// storage is released and the error is returned.  This panics if there are no
// items.
func Convert[T any, R any, S algebra.Ring[R]](items []T, conv func(T) (R, error),
	opts ...Option[R]) (*Vector[R, S], error) {
	//
	if len(items) == 0 {
		panic("vector cannot be empty")
	}
	//
	var alloc = allocator(opts)
	//
	b, err := newBuilder(alloc, uint(len(items)))
	if err != nil {
		return nil, err
	}
	//
	defer b.abandon()
	//
	for i, item := range items {
		element, err := conv(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		//
		b.push(element)
	}
	//
	return &Vector[R, S]{b.finish(), alloc}, nil
}

// build allocates n elements, and constructs each using a given function.
func build[R any, S algebra.Ring[R]](alloc memory.Allocator[R], n uint, fn func(uint) R) (*Vector[R, S], error) {
	b, err := newBuilder(alloc, n)
	if err != nil {
		return nil, err
	}
	//
	defer b.abandon()
	//
	for i := range n {
		b.push(fn(i))
	}
	//
	return &Vector[R, S]{b.finish(), alloc}, nil
}

// ============================================================================
// Ownership
// ============================================================================

// Clone makes a deep copy of this vector, using fresh storage from the same
// allocator.
func (v *Vector[R, S]) Clone() (*Vector[R, S], error) {
	v.checkLive()
	//
	return build[R, S](v.alloc, v.Len(), func(i uint) R { return v.values[i] })
}

// Move transfers this vector's storage into a new vector, leaving this vector
// released.  No allocation takes place.
func (v *Vector[R, S]) Move() *Vector[R, S] {
	moved := &Vector[R, S]{v.values, v.alloc}
	v.values = nil
	//
	return moved
}

// Release destructs all elements and returns the storage to its allocator.
// Releasing a vector which is already released (or moved from) has no effect.
func (v *Vector[R, S]) Release() {
	if v.values == nil {
		return
	}
	//
	destroy(v.values)
	v.alloc.Free(v.values)
	v.values = nil
}

// Assign replaces the contents of this vector with a deep copy of another.  If
// the copy cannot be allocated, this vector is left unchanged.
func (v *Vector[R, S]) Assign(other *Vector[R, S]) error {
	if v == other {
		return nil
	}
	//
	clone, err := other.Clone()
	if err != nil {
		return err
	}
	//
	v.Release()
	v.values, v.alloc = clone.values, clone.alloc
	//
	return nil
}

// Take replaces the contents of this vector by moving those of another.  The
// other vector is left released.
func (v *Vector[R, S]) Take(other *Vector[R, S]) {
	if v == other {
		return
	}
	//
	v.Release()
	v.values, v.alloc = other.values, other.alloc
	other.values = nil
}

// ============================================================================
// Access
// ============================================================================

// Len returns the number of elements in this vector.
func (v *Vector[R, S]) Len() uint {
	return uint(len(v.values))
}

// At returns a pointer to the element at a given index, through which it can
// be read or updated.  The index must be in bounds.
func (v *Vector[R, S]) At(index uint) *R {
	return &v.values[index]
}

// Get returns the element at a given index.
func (v *Vector[R, S]) Get(index uint) R {
	return *v.At(index)
}

// All iterates the elements of this vector along with their indices.
func (v *Vector[R, S]) All() iter.Seq2[uint, R] {
	return func(yield func(uint, R) bool) {
		for i, element := range v.values {
			if !yield(uint(i), element) {
				return
			}
		}
	}
}

// Values returns a copy of the elements of this vector.
func (v *Vector[R, S]) Values() []R {
	return slices.Clone(v.values)
}

func (v *Vector[R, S]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, element := range v.values {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprint(element))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

func (v *Vector[R, S]) checkLive() {
	if v.values == nil {
		panic("use of released vector")
	}
}
