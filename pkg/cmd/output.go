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

	"golang.org/x/term"
)

// Width assumed for a terminal whose size cannot be determined.
const defaultWidth = 80

// Print the elements of a vector to stdout.  On a terminal, these are shown
// as "[a, b, c]" wrapped to the terminal's width.  Otherwise, each element is
// printed on its own line.
func printVector(items []string) {
	var fd = int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		for _, item := range items {
			fmt.Println(item)
		}
		//
		return
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	//
	for _, line := range wrapVector(items, uint(width)) {
		fmt.Println(line)
	}
}

// Format the elements of a vector as "[a, b, c]", broken into lines of at most
// a given width.  A line is only exceeded when a single element is too wide
// for it.  Continuation lines are indented by one space, such that elements
// line up after the opening bracket.
func wrapVector(items []string, width uint) []string {
	var (
		lines []string
		line  strings.Builder
	)
	//
	if len(items) == 0 {
		return []string{"[]"}
	}
	//
	line.WriteString("[")
	//
	for i, item := range items {
		if i+1 < len(items) {
			item += ","
		} else {
			item += "]"
		}
		//
		if i != 0 && uint(line.Len()+1+len(item)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		//
		if i != 0 {
			line.WriteString(" ")
		}
		//
		line.WriteString(item)
	}
	//
	return append(lines, line.String())
}
