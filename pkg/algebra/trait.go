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

import "reflect"

// The binary operators required of every ring element.
var ringOperators = []string{"Add", "Sub", "Mul"}

// The nullary identity factories required of every ring element.
var ringIdentities = []string{"Zero", "One"}

// RingOf determines whether a given type qualifies as a ring element.
func RingOf[T any]() bool {
	return IsRing(reflect.TypeFor[T]())
}

// FieldOf determines whether a given type qualifies as a field element.
func FieldOf[T any]() bool {
	return IsField(reflect.TypeFor[T]())
}

// IsRing determines whether a given type qualifies as a ring element.  This
// holds for all primitive numeric types, and for any other (non-pointer,
// non-interface) type whose value method set exactly matches RingElement.  A
// type which fails to qualify simply yields false.
func IsRing(t reflect.Type) bool {
	switch {
	case t == nil:
		return false
	case isNumeric(t.Kind()):
		return true
	default:
		return hasRingMethods(t)
	}
}

// IsField determines whether a given type qualifies as a field element.  This
// holds for floating point and complex types, and for any ring element which
// additionally provides an exactly matching Div method.  Primitive integers
// never qualify.
func IsField(t reflect.Type) bool {
	switch {
	case t == nil:
		return false
	case isFractional(t.Kind()):
		return true
	default:
		return hasRingMethods(t) && hasBinaryMethod(t, "Div")
	}
}

func hasRingMethods(t reflect.Type) bool {
	// Elements must be values, such that identities are not handed out by
	// reference.
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	//
	for _, name := range ringOperators {
		if !hasBinaryMethod(t, name) {
			return false
		}
	}
	//
	for _, name := range ringIdentities {
		if !hasNullaryMethod(t, name) {
			return false
		}
	}
	//
	return true
}

// Check t has a value method "func (t) name(t) t".  Observe that the method
// type obtained from a reflect.Type includes the receiver as its first input.
func hasBinaryMethod(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)
	//
	if !ok || m.Type.IsVariadic() {
		return false
	}
	//
	return m.Type.NumIn() == 2 && m.Type.In(1) == t && m.Type.NumOut() == 1 && m.Type.Out(0) == t
}

// Check t has a value method "func (t) name() t".
func hasNullaryMethod(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)
	//
	if !ok {
		return false
	}
	//
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == t
}

func isNumeric(kind reflect.Kind) bool {
	return isIntegral(kind) || isFractional(kind)
}

func isIntegral(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFractional(kind reflect.Kind) bool {
	switch kind {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
