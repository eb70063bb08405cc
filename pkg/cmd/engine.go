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
	"errors"
	"fmt"

	"github.com/consensys/go-linalg/pkg/algebra"
	"github.com/consensys/go-linalg/pkg/memory"
	"github.com/consensys/go-linalg/pkg/vector"
	"github.com/prometheus/client_golang/prometheus"
)

// settings determine how vectors are allocated when evaluating a command.
type settings struct {
	// Maximum number of elements live at once, or zero for no limit.
	budget uint
	// Registry for allocator metrics, or nil if these are not collected.
	registry prometheus.Registerer
}

// engine evaluates vector operations over some domain, taking arguments and
// producing results in textual form.
type engine interface {
	// Elementwise computes "lhs op rhs", where op is one of add, sub or mul.
	elementwise(op string, lhs string, rhs string) ([]string, error)
	// Dot computes the dot product of two vectors.
	dot(lhs string, rhs string) (string, error)
	// Scalar computes "v op s" for every element v of a vector, or "s op v"
	// when the scalar is on the left.  Here, op is one of add, sub, mul or
	// div.
	scalar(op string, left bool, scalar string, rhs string) ([]string, error)
	// Fill constructs a vector of n zeros (or ones).
	fill(n uint, one bool) ([]string, error)
}

// ringEngine evaluates operations over elements R whose arithmetic is given by
// S.  Division is available only when a divide function is provided.
type ringEngine[R any, S algebra.Ring[R]] struct {
	domain string
	parse  func(string) (R, error)
	alloc  memory.Allocator[R]
	divide func(r R, left bool, v *vector.Vector[R, S]) (*vector.Vector[R, S], error)
}

func newRingEngine[R any, S algebra.Ring[R]](domain string, parse func(string) (R, error),
	cfg settings) *ringEngine[R, S] {
	//
	var alloc memory.Allocator[R] = memory.NewHeap[R]()
	//
	if cfg.budget != 0 {
		alloc = memory.NewBounded[R](cfg.budget)
	}
	//
	if cfg.registry != nil {
		alloc = memory.NewInstrumented(alloc, cfg.registry, domain)
	}
	//
	return &ringEngine[R, S]{domain: domain, parse: parse, alloc: alloc}
}

func newFieldEngine[R any, S algebra.Field[R]](domain string, parse func(string) (R, error),
	cfg settings) *ringEngine[R, S] {
	//
	var p = newRingEngine[R, S](domain, parse, cfg)
	//
	p.divide = func(r R, left bool, v *vector.Vector[R, S]) (*vector.Vector[R, S], error) {
		if left {
			return vector.ScalarDiv(r, v)
		}
		//
		return vector.Div(v, r)
	}
	//
	return p
}

func (p *ringEngine[R, S]) elementwise(op string, lhs string, rhs string) ([]string, error) {
	x, y, err := p.pair(lhs, rhs)
	if err != nil {
		return nil, err
	}
	//
	defer x.Release()
	defer y.Release()
	//
	var res *vector.Vector[R, S]
	//
	switch op {
	case "add":
		res, err = x.Add(y)
	case "sub":
		res, err = x.Sub(y)
	case "mul":
		res, err = x.Mul(y)
	default:
		return nil, fmt.Errorf("unknown operation \"%s\"", op)
	}
	//
	return p.render(res, err)
}

func (p *ringEngine[R, S]) dot(lhs string, rhs string) (string, error) {
	x, y, err := p.pair(lhs, rhs)
	if err != nil {
		return "", err
	}
	//
	defer x.Release()
	defer y.Release()
	//
	return fmt.Sprint(x.Dot(y)), nil
}

func (p *ringEngine[R, S]) scalar(op string, left bool, scalar string, rhs string) ([]string, error) {
	r, err := p.parse(scalar)
	if err != nil {
		return nil, fmt.Errorf("scalar: %w", err)
	}
	//
	v, err := p.vector(rhs)
	if err != nil {
		return nil, err
	}
	//
	defer v.Release()
	//
	var res *vector.Vector[R, S]
	//
	switch {
	case op == "add" && left:
		res, err = vector.ScalarAdd(r, v)
	case op == "add":
		res, err = v.AddScalar(r)
	case op == "sub" && left:
		res, err = vector.ScalarSub(r, v)
	case op == "sub":
		res, err = v.SubScalar(r)
	case op == "mul" && left:
		res, err = vector.ScalarMul(r, v)
	case op == "mul":
		res, err = v.MulScalar(r)
	case op == "div" && p.divide != nil:
		res, err = p.divide(r, left, v)
	case op == "div":
		return nil, fmt.Errorf("division is not supported over %s", p.domain)
	default:
		return nil, fmt.Errorf("unknown operation \"%s\"", op)
	}
	//
	return p.render(res, err)
}

func (p *ringEngine[R, S]) fill(n uint, one bool) ([]string, error) {
	var (
		res *vector.Vector[R, S]
		err error
	)
	//
	if n == 0 {
		return nil, errors.New("vector cannot be empty")
	} else if one {
		res, err = vector.One[R, S](n, vector.WithAllocator(p.alloc))
	} else {
		res, err = vector.Zero[R, S](n, vector.WithAllocator(p.alloc))
	}
	//
	return p.render(res, err)
}

// Parse two vectors of matching length.
func (p *ringEngine[R, S]) pair(lhs string, rhs string) (*vector.Vector[R, S], *vector.Vector[R, S], error) {
	x, err := p.vector(lhs)
	if err != nil {
		return nil, nil, err
	}
	//
	y, err := p.vector(rhs)
	if err != nil {
		x.Release()
		return nil, nil, err
	}
	//
	if x.Len() != y.Len() {
		err = fmt.Errorf("vector length mismatch (%d vs %d)", x.Len(), y.Len())
		x.Release()
		y.Release()
		//
		return nil, nil, err
	}
	//
	return x, y, nil
}

// Parse a vector from a comma-separated list of elements.
func (p *ringEngine[R, S]) vector(arg string) (*vector.Vector[R, S], error) {
	v, err := vector.Convert[string, R, S](splitVector(arg), p.parse, vector.WithAllocator(p.alloc))
	if err != nil {
		return nil, fmt.Errorf("vector \"%s\": %w", arg, err)
	}
	//
	return v, nil
}

// Render (and then release) the outcome of an operation.
func (p *ringEngine[R, S]) render(v *vector.Vector[R, S], err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	//
	defer v.Release()
	//
	var items = make([]string, 0, v.Len())
	//
	for _, element := range v.All() {
		items = append(items, fmt.Sprint(element))
	}
	//
	return items, nil
}
