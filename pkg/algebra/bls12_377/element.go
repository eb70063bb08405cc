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
package bls12_377

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element of the BLS12-377 scalar field.  This wraps fr.Element, whose
// arithmetic is pointer based, with value-based arithmetic so as to be usable
// as a field element.
type Element struct {
	fr.Element
}

// New constructs the element representing x.
func New(x uint64) Element {
	var res fr.Element
	//
	res.SetUint64(x)
	//
	return Element{res}
}

// Parse constructs an element from a string, which is either decimal or has a
// base prefix (e.g. "0x").  Values are reduced modulo the field order.
func Parse(s string) (Element, error) {
	var res fr.Element
	//
	if _, err := res.SetString(s); err != nil {
		return Element{}, fmt.Errorf("invalid bls12-377 element \"%s\": %w", s, err)
	}
	//
	return Element{res}, nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Div x / y, or 0 if y = 0.
func (x Element) Div(y Element) Element {
	var res fr.Element
	//
	res.Div(&x.Element, &y.Element)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// Zero returns the additive identity.
func (x Element) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (x Element) One() Element {
	return Element{fr.One()}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

func (x Element) String() string {
	return x.Element.String()
}
