// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary provides an MSD inspection tool that reads MSD documents
// from files or stdin and dumps their tokens and parameters, converts
// them to JSON or YAML, reformats them with canonical escapes, or
// explores them interactively.

package main

import (
	"os"

	"github.com/smdbs01/go-msd/cmd/go-msd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
