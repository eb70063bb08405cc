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
	"strconv"

	"github.com/consensys/go-linalg/pkg/util"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill [flags] size",
	Short: "construct a vector of zeros (or ones).",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		n, err := strconv.ParseUint(args[0], 10, 0)
		checkError(err)
		//
		stats := util.NewPerfStats()
		engine, registry := getEngine(cmd)
		result, err := engine.fill(uint(n), GetFlag(cmd, "one"))
		checkError(err)
		printVector(result)
		logStats(registry)
		stats.Log(cmd.Name())
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().Bool("one", false, "fill with the multiplicative identity, rather than zero")
}
