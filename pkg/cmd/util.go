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
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get the domain selected on the command line, or exit if there is no such
// domain.
func getDomain(cmd *cobra.Command) *Domain {
	var (
		name   = GetString(cmd, "domain")
		domain = GetDomain(name)
	)
	//
	if domain == nil {
		fmt.Printf("unknown domain \"%s\" (expected one of %s)\n", name, domainNames())
		os.Exit(2)
	}
	//
	return domain
}

// Construct the engine for the domain selected on the command line, along with
// the registry collecting its allocator statistics (if requested).
func getEngine(cmd *cobra.Command) (engine, *prometheus.Registry) {
	var (
		domain   = getDomain(cmd)
		registry *prometheus.Registry
	)
	//
	cfg := settings{budget: GetUint(cmd, "budget")}
	//
	if GetFlag(cmd, "stats") {
		registry = prometheus.NewRegistry()
		cfg.registry = registry
	}
	//
	log.Debugf("evaluating %s over %s", cmd.Name(), domain.Name)
	//
	return domain.engine(cfg), registry
}

// Check the outcome of evaluating a command, reporting any error and exiting.
func checkError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Report the allocator statistics gathered in a given registry (if any).
func logStats(registry *prometheus.Registry) {
	if registry == nil {
		return
	}
	//
	families, err := registry.Gather()
	if err != nil {
		log.Errorf("gathering statistics: %v", err)
		return
	}
	//
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var value float64
			//
			if counter := metric.GetCounter(); counter != nil {
				value = counter.GetValue()
			} else if gauge := metric.GetGauge(); gauge != nil {
				value = gauge.GetValue()
			}
			//
			log.Infof("%s = %v", family.GetName(), value)
		}
	}
}

// Split a vector argument into its (trimmed) elements.
func splitVector(arg string) []string {
	var items = strings.Split(arg, ",")
	//
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	//
	return items
}
