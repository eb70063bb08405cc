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

// Number captures the primitive arithmetic types.  These are rings without
// needing to declare anything, using 0 and 1 as their identities.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// RingElement captures a type which is closed under addition, subtraction and
// multiplication, and which can produce its own additive and multiplicative
// identities.  All methods must be declared on the value receiver, such that
// they can be called equally on values, variables and pointers.  Zero and One
// are invoked on the zero value of E and must not panic.
type RingElement[E any] interface {
	// Add returns x + y
	Add(y E) E
	// Sub returns x - y
	Sub(y E) E
	// Mul returns x * y
	Mul(y E) E
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
}

// Ring provides the arithmetic for a given element type R.  A ring is stateless
// and must be usable as its zero value.  Generic code which needs arithmetic
// over R is parameterised by a Ring, rather than by R alone, so that primitive
// types and method-based elements can be handled uniformly.
type Ring[R any] interface {
	// Add returns x + y
	Add(x, y R) R
	// Sub returns x - y
	Sub(x, y R) R
	// Mul returns x * y
	Mul(x, y R) R
	// Zero returns the additive identity of the ring.
	Zero() R
	// One returns the multiplicative identity of the ring.
	One() R
}

// Zero returns the additive identity of a given ring.
func Zero[R any, S Ring[R]]() R {
	var ring S
	//
	return ring.Zero()
}

// One returns the multiplicative identity of a given ring.
func One[R any, S Ring[R]]() R {
	var ring S
	//
	return ring.One()
}

// ============================================================================
// Native
// ============================================================================

// Native is the ring over a primitive numeric type, implemented with the
// language's own operators.
type Native[T Number] struct{}

// Add x + y
func (Native[T]) Add(x, y T) T {
	return x + y
}

// Sub x - y
func (Native[T]) Sub(x, y T) T {
	return x - y
}

// Mul x * y
func (Native[T]) Mul(x, y T) T {
	return x * y
}

// Zero returns 0
func (Native[T]) Zero() T {
	return 0
}

// One returns 1
func (Native[T]) One() T {
	return 1
}

// ============================================================================
// Elements
// ============================================================================

// Elements is the ring over a type which carries its own arithmetic.
type Elements[E RingElement[E]] struct{}

// Add x + y
func (Elements[E]) Add(x, y E) E {
	return x.Add(y)
}

// Sub x - y
func (Elements[E]) Sub(x, y E) E {
	return x.Sub(y)
}

// Mul x * y
func (Elements[E]) Mul(x, y E) E {
	return x.Mul(y)
}

// Zero asks the zero value of E for the additive identity.
func (Elements[E]) Zero() E {
	var element E
	//
	return element.Zero()
}

// One asks the zero value of E for the multiplicative identity.
func (Elements[E]) One() E {
	var element E
	//
	return element.One()
}
