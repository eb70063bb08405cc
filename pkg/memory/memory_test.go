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
package memory

import (
	"testing"

	"github.com/consensys/go-linalg/pkg/util/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_Heap_01(t *testing.T) {
	var heap = NewHeap[int]()
	//
	buf, err := heap.Alloc(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(buf))
	assert.Equal(t, []int{0, 0, 0, 0, 0}, buf)
	//
	buf[2] = 7
	heap.Free(buf)
	assert.Equal(t, 0, buf[2])
}

func Test_Heap_02(t *testing.T) {
	var heap = NewHeap[uint64]()
	//
	_, err := heap.Alloc(^uint(0))
	assert.ErrorIs(t, err, ErrOutOfMemory)
	// Representable length, but far too many bytes
	buf, err := heap.Alloc(1 << 60)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.True(t, buf == nil)
}

func Test_Bounded_01(t *testing.T) {
	var alloc = NewBounded[int](10)
	//
	a, err := alloc.Alloc(4)
	assert.NoError(t, err)
	b, err := alloc.Alloc(6)
	assert.NoError(t, err)
	assert.Equal(t, uint(10), alloc.Live())
	assert.Equal(t, uint(2), alloc.Allocs())
	// Budget exhausted
	_, err = alloc.Alloc(1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, uint(2), alloc.Allocs())
	//
	alloc.Free(a)
	assert.Equal(t, uint(6), alloc.Live())
	// Room again
	c, err := alloc.Alloc(4)
	assert.NoError(t, err)
	alloc.Free(b)
	alloc.Free(c)
	assert.Equal(t, uint(0), alloc.Live())
	assert.Equal(t, uint(3), alloc.Frees())
}

func Test_Bounded_02(t *testing.T) {
	var alloc = NewBounded[int](10)
	//
	buf, err := alloc.Alloc(3)
	assert.NoError(t, err)
	alloc.Free(buf)
	// Second free must be caught
	assert.Panics(t, func() { alloc.Free(buf) })
	assert.Equal(t, uint(1), alloc.Frees())
}

func Test_Bounded_03(t *testing.T) {
	var alloc = NewBounded[int](10)
	// Foreign buffer
	assert.Panics(t, func() { alloc.Free(make([]int, 2)) })
	// Truncated buffer
	buf, err := alloc.Alloc(3)
	assert.NoError(t, err)
	assert.Panics(t, func() { alloc.Free(buf[:2]) })
	// Zero-length request
	assert.Panics(t, func() { _, _ = alloc.Alloc(0) })
}

func Test_Bounded_04(t *testing.T) {
	// Within budget, but too large for the runtime
	var alloc = NewBounded[uint64](^uint(0))
	//
	_, err := alloc.Alloc(1 << 60)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, uint(0), alloc.Live())
	assert.Equal(t, uint(0), alloc.Allocs())
}

func Test_Bounded_05(t *testing.T) {
	// Every buffer of a zero-sized type would share one address
	assert.Panics(t, func() { NewBounded[struct{}](10) })
	assert.Panics(t, func() { NewBounded[[0]int](10) })
}

func Test_Instrumented_01(t *testing.T) {
	var (
		reg   = prometheus.NewRegistry()
		alloc = NewInstrumented[int](NewBounded[int](8), reg, "int")
	)
	//
	a, err := alloc.Alloc(5)
	assert.NoError(t, err)
	_, err = alloc.Alloc(5)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	//
	assert.Equal(t, 1.0, testutil.ToFloat64(alloc.allocs))
	assert.Equal(t, 1.0, testutil.ToFloat64(alloc.failures))
	assert.Equal(t, 5.0, testutil.ToFloat64(alloc.live))
	//
	alloc.Free(a)
	assert.Equal(t, 1.0, testutil.ToFloat64(alloc.frees))
	assert.Equal(t, 0.0, testutil.ToFloat64(alloc.live))
	// Everything is visible through the registry
	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Equal(t, 4, len(families))
}

func Test_Instrumented_02(t *testing.T) {
	var reg = prometheus.NewRegistry()
	//
	NewInstrumented[int](NewHeap[int](), reg, "int")
	// Same element label cannot be registered twice
	assert.Panics(t, func() { NewInstrumented[int](NewHeap[int](), reg, "int") })
	// But a different one can
	NewInstrumented[float64](NewHeap[float64](), reg, "float64")
}
