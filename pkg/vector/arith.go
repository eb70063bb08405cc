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

	"github.com/consensys/go-linalg/pkg/algebra"
)

// ============================================================================
// Vector-vector operations
// ============================================================================

// Add returns the elementwise sum v + w as a new vector.
func (v *Vector[R, S]) Add(w *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.zip(w, ring.Add)
}

// AddAssign updates v to v + w, returning v.
func (v *Vector[R, S]) AddAssign(w *Vector[R, S]) *Vector[R, S] {
	var ring S
	//
	return v.zipInPlace(w, ring.Add)
}

// Sub returns the elementwise difference v - w as a new vector.
func (v *Vector[R, S]) Sub(w *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.zip(w, ring.Sub)
}

// SubAssign updates v to v - w, returning v.
func (v *Vector[R, S]) SubAssign(w *Vector[R, S]) *Vector[R, S] {
	var ring S
	//
	return v.zipInPlace(w, ring.Sub)
}

// Mul returns the elementwise product v * w as a new vector.
func (v *Vector[R, S]) Mul(w *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.zip(w, ring.Mul)
}

// MulAssign updates v to v * w, returning v.
func (v *Vector[R, S]) MulAssign(w *Vector[R, S]) *Vector[R, S] {
	var ring S
	//
	return v.zipInPlace(w, ring.Mul)
}

// Dot returns the sum of the elementwise products of v and w.
func (v *Vector[R, S]) Dot(w *Vector[R, S]) R {
	var ring S
	//
	v.checkSameLength(w)
	//
	acc := ring.Zero()
	//
	for i := range v.values {
		acc = ring.Add(acc, ring.Mul(v.values[i], w.values[i]))
	}
	//
	return acc
}

// ============================================================================
// Scalar operations
// ============================================================================

// AddScalar returns v[i] + r for every i as a new vector.
func (v *Vector[R, S]) AddScalar(r R) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Add(x, r) })
}

// AddScalarAssign updates v[i] to v[i] + r for every i, returning v.
func (v *Vector[R, S]) AddScalarAssign(r R) *Vector[R, S] {
	var ring S
	//
	return v.applyInPlace(func(x R) R { return ring.Add(x, r) })
}

// SubScalar returns v[i] - r for every i as a new vector.
func (v *Vector[R, S]) SubScalar(r R) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Sub(x, r) })
}

// SubScalarAssign updates v[i] to v[i] - r for every i, returning v.
func (v *Vector[R, S]) SubScalarAssign(r R) *Vector[R, S] {
	var ring S
	//
	return v.applyInPlace(func(x R) R { return ring.Sub(x, r) })
}

// MulScalar returns v[i] * r for every i as a new vector.
func (v *Vector[R, S]) MulScalar(r R) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Mul(x, r) })
}

// MulScalarAssign updates v[i] to v[i] * r for every i, returning v.
func (v *Vector[R, S]) MulScalarAssign(r R) *Vector[R, S] {
	var ring S
	//
	return v.applyInPlace(func(x R) R { return ring.Mul(x, r) })
}

// ScalarAdd returns r + v[i] for every i as a new vector.
func ScalarAdd[R any, S algebra.Ring[R]](r R, v *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Add(r, x) })
}

// ScalarSub returns r - v[i] for every i as a new vector.  Observe this is not
// the same as v.SubScalar(r).
func ScalarSub[R any, S algebra.Ring[R]](r R, v *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Sub(r, x) })
}

// ScalarMul returns r * v[i] for every i as a new vector.
func ScalarMul[R any, S algebra.Ring[R]](r R, v *Vector[R, S]) (*Vector[R, S], error) {
	var ring S
	//
	return v.apply(func(x R) R { return ring.Mul(r, x) })
}

// Div returns v[i] / r for every i as a new vector.  This is only available
// for vectors over a field.
func Div[R any, S algebra.Field[R]](v *Vector[R, S], r R) (*Vector[R, S], error) {
	var field S
	//
	return v.apply(func(x R) R { return field.Div(x, r) })
}

// ScalarDiv returns r / v[i] for every i as a new vector.
func ScalarDiv[R any, S algebra.Field[R]](r R, v *Vector[R, S]) (*Vector[R, S], error) {
	var field S
	//
	return v.apply(func(x R) R { return field.Div(r, x) })
}

// DivAssign updates v[i] to v[i] / r for every i, returning v.  This is only
// available for vectors over a field.
func DivAssign[R any, S algebra.Field[R]](v *Vector[R, S], r R) *Vector[R, S] {
	var field S
	//
	return v.applyInPlace(func(x R) R { return field.Div(x, r) })
}

// ============================================================================
// Helpers
// ============================================================================

func (v *Vector[R, S]) zip(w *Vector[R, S], op func(R, R) R) (*Vector[R, S], error) {
	v.checkSameLength(w)
	//
	return build[R, S](v.alloc, v.Len(), func(i uint) R { return op(v.values[i], w.values[i]) })
}

func (v *Vector[R, S]) zipInPlace(w *Vector[R, S], op func(R, R) R) *Vector[R, S] {
	v.checkSameLength(w)
	//
	for i := range v.values {
		v.values[i] = op(v.values[i], w.values[i])
	}
	//
	return v
}

func (v *Vector[R, S]) apply(op func(R) R) (*Vector[R, S], error) {
	v.checkLive()
	//
	return build[R, S](v.alloc, v.Len(), func(i uint) R { return op(v.values[i]) })
}

func (v *Vector[R, S]) applyInPlace(op func(R) R) *Vector[R, S] {
	v.checkLive()
	//
	for i := range v.values {
		v.values[i] = op(v.values[i])
	}
	//
	return v
}

func (v *Vector[R, S]) checkSameLength(w *Vector[R, S]) {
	v.checkLive()
	w.checkLive()
	//
	if len(v.values) != len(w.values) {
		panic(fmt.Sprintf("vector length mismatch (%d vs %d)", len(v.values), len(w.values)))
	}
}
