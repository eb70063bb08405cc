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

	"github.com/consensys/go-linalg/pkg/util"
	"github.com/spf13/cobra"
)

var addCmd = elementwiseCmd("add", "add two vectors elementwise.")

var subCmd = elementwiseCmd("sub", "subtract one vector from another elementwise.")

var mulCmd = elementwiseCmd("mul", "multiply two vectors elementwise.")

var dotCmd = &cobra.Command{
	Use:   "dot [flags] vector vector",
	Short: "compute the dot product of two vectors.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		engine, registry := getEngine(cmd)
		result, err := engine.dot(args[0], args[1])
		checkError(err)
		fmt.Println(result)
		logStats(registry)
		stats.Log(cmd.Name())
	},
}

// Construct a command for a given elementwise operation.
func elementwiseCmd(op string, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] vector vector", op),
		Short: short,
		Long: fmt.Sprintf(`Apply "%s" to each pair of corresponding elements from two
	vectors of the same length, producing a vector of results.`, op),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				fmt.Println(cmd.UsageString())
				os.Exit(1)
			}
			//
			stats := util.NewPerfStats()
			engine, registry := getEngine(cmd)
			result, err := engine.elementwise(op, args[0], args[1])
			checkError(err)
			printVector(result)
			logStats(registry)
			stats.Log(cmd.Name())
		},
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(dotCmd)
}
