// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "yaml" subcommand.

package cmd

import (
	"github.com/spf13/cobra"
)

var yamlCmd = &cobra.Command{
	Use:   "yaml [file]",
	Short: "Convert an MSD document to YAML",
	Long: `Yaml parses an MSD document and prints it as a YAML sequence of
component lists, the same lossless form the json subcommand uses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runYAML,
}

func init() {
	rootCmd.AddCommand(yamlCmd)
}

func runYAML(cmd *cobra.Command, args []string) error {
	params, err := readDocument(args)
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), documentComponents(params))
}
