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
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps an allocator and records what passes through it as
// Prometheus metrics.
type Instrumented[T any] struct {
	inner    Allocator[T]
	allocs   prometheus.Counter
	frees    prometheus.Counter
	failures prometheus.Counter
	live     prometheus.Gauge
}

// NewInstrumented wraps a given allocator, registering its metrics with reg.
// The element name distinguishes allocators for different element types which
// share a registry.  This panics if the metrics are already registered.
func NewInstrumented[T any](inner Allocator[T], reg prometheus.Registerer, element string) *Instrumented[T] {
	var (
		labels = prometheus.Labels{"element": element}
		p      = &Instrumented[T]{inner: inner}
	)
	//
	p.allocs = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linalg", Subsystem: "memory", Name: "allocations_total",
		Help: "Number of buffers allocated.", ConstLabels: labels,
	})
	p.frees = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linalg", Subsystem: "memory", Name: "frees_total",
		Help: "Number of buffers freed.", ConstLabels: labels,
	})
	p.failures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linalg", Subsystem: "memory", Name: "allocation_failures_total",
		Help: "Number of allocation requests which could not be satisfied.", ConstLabels: labels,
	})
	p.live = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "linalg", Subsystem: "memory", Name: "live_elements",
		Help: "Number of elements currently allocated.", ConstLabels: labels,
	})
	//
	reg.MustRegister(p.allocs, p.frees, p.failures, p.live)
	//
	return p
}

// Alloc implementation for Allocator interface.
func (p *Instrumented[T]) Alloc(n uint) ([]T, error) {
	buf, err := p.inner.Alloc(n)
	//
	if err != nil {
		p.failures.Inc()
		return nil, err
	}
	//
	p.allocs.Inc()
	p.live.Add(float64(n))
	//
	return buf, nil
}

// Free implementation for Allocator interface.
func (p *Instrumented[T]) Free(buf []T) {
	n := len(buf)
	//
	p.inner.Free(buf)
	p.frees.Inc()
	p.live.Sub(float64(n))
}
