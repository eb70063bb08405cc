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
package cmd

import (
	"strconv"
	"strings"

	"github.com/consensys/go-linalg/pkg/algebra"
	"github.com/consensys/go-linalg/pkg/algebra/bls12_377"
	"github.com/consensys/go-linalg/pkg/algebra/gf251"
	"github.com/consensys/go-linalg/pkg/algebra/koalabear"
)

// INT64 is the ring of (wrapping) 64-bit integers.
var INT64 = ringDomain[int64, algebra.Native[int64]]("int64", parseInt64)

// FLOAT64 is the (approximate) field of 64-bit floating point numbers.
var FLOAT64 = fieldDomain[float64, algebra.NativeField[float64]]("float64", parseFloat64)

// GF_251 is a tiny prime field, mostly useful for experimentation.
var GF_251 = fieldDomain[gf251.Element, algebra.ElementField[gf251.Element]]("gf251", gf251.Parse)

// KOALABEAR is the 31-bit KoalaBear prime field.
var KOALABEAR = fieldDomain[koalabear.Element, algebra.ElementField[koalabear.Element]]("koalabear",
	koalabear.Parse)

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = fieldDomain[bls12_377.Element, algebra.ElementField[bls12_377.Element]]("bls12-377",
	bls12_377.Parse)

// DOMAINS determines the set of supported domains.
var DOMAINS = []Domain{
	INT64,
	FLOAT64,
	GF_251,
	KOALABEAR,
	BLS12_377,
}

// Domain describes a set of elements over which vectors can be evaluated.
type Domain struct {
	// Name used to select this domain on the command line.
	Name string
	// Indicates whether division is available.
	Field bool
	// Constructs an engine for evaluating vectors over this domain.
	engine func(settings) engine
}

// GetDomain returns the domain corresponding with the given name, or nil no
// such domain exists.
func GetDomain(name string) *Domain {
	for i := range DOMAINS {
		if DOMAINS[i].Name == name {
			return &DOMAINS[i]
		}
	}
	//
	return nil
}

// Supports determines whether a given elementwise (or scalar) operation can be
// evaluated over this domain.
func (d *Domain) Supports(op string) bool {
	switch op {
	case "add", "sub", "mul":
		return true
	case "div":
		return d.Field
	default:
		return false
	}
}

func ringDomain[R any, S algebra.Ring[R]](name string, parse func(string) (R, error)) Domain {
	return Domain{name, false, func(cfg settings) engine {
		return newRingEngine[R, S](name, parse, cfg)
	}}
}

func fieldDomain[R any, S algebra.Field[R]](name string, parse func(string) (R, error)) Domain {
	return Domain{name, true, func(cfg settings) engine {
		return newFieldEngine[R, S](name, parse, cfg)
	}}
}

func domainNames() string {
	var names = make([]string, len(DOMAINS))
	//
	for i, d := range DOMAINS {
		names[i] = d.Name
	}
	//
	return strings.Join(names, ", ")
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
