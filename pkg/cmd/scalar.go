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

var scalarCmd = &cobra.Command{
	Use:   "scalar [flags] scalar vector",
	Short: "combine a scalar with every element of a vector.",
	Long: `Combine a scalar with every element of a vector using a given
	operation (add, sub, mul or div).  By default the scalar is the right-hand
	operand, such that "scalar --op sub 1 3,4" gives 2,3.  With --left the
	scalar is the left-hand operand instead, giving -2,-3.  Division is only
	available over fields.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		op := GetString(cmd, "op")
		left := GetFlag(cmd, "left")
		//
		if domain := getDomain(cmd); !domain.Supports(op) {
			fmt.Printf("operation \"%s\" is not supported over %s\n", op, domain.Name)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		engine, registry := getEngine(cmd)
		result, err := engine.scalar(op, left, args[0], args[1])
		checkError(err)
		printVector(result)
		logStats(registry)
		stats.Log(cmd.Name())
	},
}

func init() {
	rootCmd.AddCommand(scalarCmd)
	scalarCmd.Flags().String("op", "mul", "operation to apply (add, sub, mul or div)")
	scalarCmd.Flags().Bool("left", false, "make the scalar the left-hand operand")
}
