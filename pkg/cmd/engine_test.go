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
	"strings"
	"testing"

	"github.com/consensys/go-linalg/pkg/memory"
	"github.com/consensys/go-linalg/pkg/util/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_Domain_01(t *testing.T) {
	for _, domain := range DOMAINS {
		d := GetDomain(domain.Name)
		assert.True(t, d != nil, "domain %s", domain.Name)
		assert.Equal(t, domain.Name, d.Name)
	}
	//
	assert.True(t, GetDomain("int32") == nil)
	assert.False(t, INT64.Field)
	assert.True(t, FLOAT64.Field)
	assert.True(t, BLS12_377.Field)
}

func Test_Domain_02(t *testing.T) {
	for _, op := range []string{"add", "sub", "mul"} {
		assert.True(t, INT64.Supports(op), "int64 %s", op)
		assert.True(t, GF_251.Supports(op), "gf251 %s", op)
	}
	// Division only over fields
	assert.False(t, INT64.Supports("div"))
	assert.True(t, FLOAT64.Supports("div"))
	assert.True(t, KOALABEAR.Supports("div"))
	assert.False(t, GF_251.Supports("pow"))
	// Agrees with what each engine actually accepts
	for _, domain := range DOMAINS {
		_, err := domain.engine(settings{}).scalar("div", false, "1", "1")
		assert.Equal(t, domain.Supports("div"), err == nil, "div over %s", domain.Name)
	}
}

func Test_Engine_Elementwise(t *testing.T) {
	checkElementwise(t, INT64, "add", "1,2,3", "10, 20, 30", "11", "22", "33")
	checkElementwise(t, INT64, "sub", "1,2,3", "3,2,1", "-2", "0", "2")
	checkElementwise(t, INT64, "mul", "0x10,2", "2,2", "32", "4")
	checkElementwise(t, FLOAT64, "mul", "0.5,1.5", "4,2", "2", "3")
	checkElementwise(t, GF_251, "add", "250,1", "1,1", "0", "2")
	checkElementwise(t, KOALABEAR, "sub", "0", "1", "2130706432")
	checkElementwise(t, BLS12_377, "mul", "3,4", "5,6", "15", "24")
}

func Test_Engine_Dot(t *testing.T) {
	checkDot(t, INT64, "1,2,3", "4,5,6", "32")
	checkDot(t, FLOAT64, "1,2,3", "4,5,6", "32")
	checkDot(t, GF_251, "100,200", "100,200", "51")
	checkDot(t, BLS12_377, "1,2,3", "4,5,6", "32")
}

func Test_Engine_Scalar(t *testing.T) {
	checkScalar(t, INT64, "mul", false, "2", "1,2,3", "2", "4", "6")
	checkScalar(t, INT64, "mul", true, "2", "1,2,3", "2", "4", "6")
	checkScalar(t, INT64, "add", true, "1", "1,2", "2", "3")
	checkScalar(t, INT64, "sub", false, "10", "1,2", "-9", "-8")
	checkScalar(t, INT64, "sub", true, "10", "1,2", "9", "8")
	checkScalar(t, FLOAT64, "div", false, "4", "1,2", "0.25", "0.5")
	checkScalar(t, FLOAT64, "div", true, "4", "1,2", "4", "2")
	checkScalar(t, GF_251, "div", false, "2", "1", "126")
	checkScalar(t, KOALABEAR, "div", true, "1", "0", "0")
}

func Test_Engine_Fill(t *testing.T) {
	checkFill(t, INT64, 3, false, "0", "0", "0")
	checkFill(t, INT64, 3, true, "1", "1", "1")
	checkFill(t, FLOAT64, 2, true, "1", "1")
	checkFill(t, GF_251, 2, true, "1", "1")
	checkFill(t, BLS12_377, 1, true, "1")
}

func Test_Engine_Errors(t *testing.T) {
	var p = INT64.engine(settings{})
	//
	_, err := p.elementwise("add", "1,2", "1,2,3")
	assert.Equal(t, "vector length mismatch (2 vs 3)", err.Error())
	_, err = p.elementwise("add", "1,x", "1,2")
	assert.True(t, err != nil && strings.Contains(err.Error(), "element 1"))
	_, err = p.elementwise("pow", "1", "2")
	assert.True(t, err != nil)
	_, err = p.dot("", "1")
	assert.True(t, err != nil)
	_, err = p.scalar("div", false, "2", "1,2")
	assert.Equal(t, "division is not supported over int64", err.Error())
	_, err = p.scalar("add", false, "two", "1,2")
	assert.True(t, err != nil && strings.HasPrefix(err.Error(), "scalar:"))
	_, err = p.fill(0, false)
	assert.True(t, err != nil)
}

func Test_Engine_Budget(t *testing.T) {
	var p = INT64.engine(settings{budget: 5})
	// Operands fit, but the result does not
	_, err := p.elementwise("add", "1,2", "3,4")
	assert.ErrorIs(t, err, memory.ErrOutOfMemory)
	//
	items, err := p.fill(5, true)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(items))
	// Everything is released after each operation
	_, err = p.fill(6, true)
	assert.ErrorIs(t, err, memory.ErrOutOfMemory)
}

func Test_Engine_Stats(t *testing.T) {
	var (
		registry = prometheus.NewRegistry()
		p        = GF_251.engine(settings{registry: registry})
	)
	//
	_, err := p.elementwise("add", "1,2,3", "4,5,6")
	assert.NoError(t, err)
	//
	families, err := registry.Gather()
	assert.NoError(t, err)
	assert.Equal(t, 4, len(families))
	// Two operands and one result
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP linalg_memory_allocations_total Number of buffers allocated.
# TYPE linalg_memory_allocations_total counter
linalg_memory_allocations_total{element="gf251"} 3
# HELP linalg_memory_frees_total Number of buffers freed.
# TYPE linalg_memory_frees_total counter
linalg_memory_frees_total{element="gf251"} 3
# HELP linalg_memory_live_elements Number of elements currently allocated.
# TYPE linalg_memory_live_elements gauge
linalg_memory_live_elements{element="gf251"} 0
`), "linalg_memory_allocations_total", "linalg_memory_frees_total", "linalg_memory_live_elements"))
}

func Test_WrapVector_01(t *testing.T) {
	assert.Equal(t, []string{"[1, 2, 3]"}, wrapVector([]string{"1", "2", "3"}, 80))
	assert.Equal(t, []string{"[1, 2,", " 3]"}, wrapVector([]string{"1", "2", "3"}, 8))
	assert.Equal(t, []string{"[1,", " 2,", " 3]"}, wrapVector([]string{"1", "2", "3"}, 3))
	assert.Equal(t, []string{"[123456]"}, wrapVector([]string{"123456"}, 4))
	assert.Equal(t, []string{"[]"}, wrapVector(nil, 80))
}

func Test_SplitVector_01(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, splitVector(" 1, 2 ,3"))
	assert.Equal(t, []string{""}, splitVector(""))
}

func checkElementwise(t *testing.T, domain Domain, op string, lhs string, rhs string, expected ...string) {
	items, err := domain.engine(settings{}).elementwise(op, lhs, rhs)
	assert.NoError(t, err, "%s %s %s (%s)", op, lhs, rhs, domain.Name)
	assert.Equal(t, expected, items, "%s %s %s (%s)", op, lhs, rhs, domain.Name)
}

func checkDot(t *testing.T, domain Domain, lhs string, rhs string, expected string) {
	result, err := domain.engine(settings{}).dot(lhs, rhs)
	assert.NoError(t, err)
	assert.Equal(t, expected, result, "%s . %s (%s)", lhs, rhs, domain.Name)
}

func checkScalar(t *testing.T, domain Domain, op string, left bool, scalar string, rhs string, expected ...string) {
	items, err := domain.engine(settings{}).scalar(op, left, scalar, rhs)
	assert.NoError(t, err)
	assert.Equal(t, expected, items, "%s %s %s (%s, left=%t)", op, scalar, rhs, domain.Name, left)
}

func checkFill(t *testing.T, domain Domain, n uint, one bool, expected ...string) {
	items, err := domain.engine(settings{}).fill(n, one)
	assert.NoError(t, err)
	assert.Equal(t, expected, items, "fill %d (%s)", n, domain.Name)
}
