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

import (
	"math"
	"testing"

	"github.com/consensys/go-linalg/pkg/util/assert"
)

func Test_Native_Identities(t *testing.T) {
	checkIntegerIdentities[int](t)
	checkIntegerIdentities[int8](t)
	checkIntegerIdentities[int16](t)
	checkIntegerIdentities[int32](t)
	checkIntegerIdentities[int64](t)
	checkIntegerIdentities[uint](t)
	checkIntegerIdentities[uint8](t)
	checkIntegerIdentities[uint16](t)
	checkIntegerIdentities[uint32](t)
	checkIntegerIdentities[uint64](t)
	checkIntegerIdentities[uintptr](t)
}

func Test_Native_Float_Identities(t *testing.T) {
	// Bitwise, so that -0.0 would not pass for 0.0
	assert.Equal(t, uint32(0), math.Float32bits(Zero[float32, Native[float32]]()))
	assert.Equal(t, math.Float32bits(1), math.Float32bits(One[float32, Native[float32]]()))
	assert.Equal(t, uint64(0), math.Float64bits(Zero[float64, NativeField[float64]]()))
	assert.Equal(t, math.Float64bits(1), math.Float64bits(One[float64, NativeField[float64]]()))
}

func Test_Native_Complex_Identities(t *testing.T) {
	var (
		zero = Zero[complex128, NativeField[complex128]]()
		one  = One[complex64, NativeField[complex64]]()
	)
	//
	assert.Equal(t, uint64(0), math.Float64bits(real(zero)))
	assert.Equal(t, uint64(0), math.Float64bits(imag(zero)))
	assert.Equal(t, math.Float32bits(1), math.Float32bits(real(one)))
	assert.Equal(t, uint32(0), math.Float32bits(imag(one)))
}

func Test_Native_Arithmetic(t *testing.T) {
	var ring Native[int]
	//
	assert.Equal(t, 7, ring.Add(3, 4))
	assert.Equal(t, -1, ring.Sub(3, 4))
	assert.Equal(t, 12, ring.Mul(3, 4))
	// Wrapping, as for the underlying type
	var bytes Native[uint8]
	//
	assert.Equal(t, uint8(4), bytes.Add(250, 10))
	assert.Equal(t, uint8(255), bytes.Sub(0, 1))
}

func Test_NativeField_Div(t *testing.T) {
	var field NativeField[float64]
	//
	assert.Equal(t, 0.5, field.Div(1, 2))
	assert.True(t, math.IsInf(field.Div(1, 0), 1))
}

func Test_Elements_Arithmetic(t *testing.T) {
	var ring ElementField[mod7]
	//
	assert.Equal(t, mod7(0), ring.Zero())
	assert.Equal(t, mod7(1), ring.One())
	assert.Equal(t, mod7(2), ring.Add(5, 4))
	assert.Equal(t, mod7(6), ring.Sub(3, 4))
	assert.Equal(t, mod7(6), ring.Mul(5, 4))
	// 3 * 5 = 15 = 1 (mod 7)
	assert.Equal(t, mod7(5), ring.Div(1, 3))
}

func checkIntegerIdentities[T Number](t *testing.T) {
	assert.Equal(t, T(0), Zero[T, Native[T]]())
	assert.Equal(t, T(1), One[T, Native[T]]())
}

// mod7 is the field of integers modulo 7, carrying its own arithmetic on an
// integer kind.
type mod7 uint8

func (x mod7) Add(y mod7) mod7 { return (x + y) % 7 }

func (x mod7) Sub(y mod7) mod7 { return (x + 7 - y) % 7 }

func (x mod7) Mul(y mod7) mod7 { return (x * y) % 7 }

func (x mod7) Div(y mod7) mod7 {
	// Exhaustive search suffices for such a small field
	for z := range mod7(7) {
		if y.Mul(z) == x {
			return z
		}
	}
	//
	panic("division by zero")
}

func (x mod7) Zero() mod7 { return 0 }

func (x mod7) One() mod7 { return 1 }
