// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "json" subcommand.

package cmd

import (
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Convert an MSD document to JSON",
	Long: `Json parses an MSD document and prints it as a JSON array of
component lists. The form is lossless: duplicate keys and parameters
with more than two components survive the conversion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	params, err := readDocument(args)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), documentComponents(params))
}
