// SPDX-License-Identifier: MIT

// Package main is the entry point for the sparsedata CLI.
package main

import "github.com/katalvlaran/sparsedata/cmd"

func main() {
	cmd.Execute()
}
