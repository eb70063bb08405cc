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
package algebra

import "golang.org/x/exp/constraints"

// Fractional captures the primitive types which form a field.  Integers are
// deliberately absent, even though they support "/".
type Fractional interface {
	constraints.Float | constraints.Complex
}

// FieldElement captures a ring element which is additionally closed under
// division.
type FieldElement[E any] interface {
	RingElement[E]
	// Div returns x / y
	Div(y E) E
}

// Field provides the arithmetic for a field over a given element type R.
type Field[R any] interface {
	Ring[R]
	// Div returns x / y
	Div(x, y R) R
}

// NativeField is the field over a primitive floating point (or complex) type.
type NativeField[T Fractional] struct {
	Native[T]
}

// Div x / y
func (NativeField[T]) Div(x, y T) T {
	return x / y
}

// ElementField is the field over a type which carries its own arithmetic.
type ElementField[E FieldElement[E]] struct {
	Elements[E]
}

// Div x / y
func (ElementField[E]) Div(x, y E) E {
	return x.Div(y)
}
