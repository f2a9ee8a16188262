// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "fmt" subcommand.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/smdbs01/go-msd"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat an MSD document with canonical escapes",
	Long: `Fmt parses an MSD document and serializes it back, one parameter
per line with canonical escaping. Comments and stray text do not
survive the round trip. With --escapes=false the output targets
parsers without escape support and fails on components that cannot
be represented that way.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	params, err := readDocument(args)
	if err != nil {
		return err
	}
	out, err := msd.Serialize(params, parserOptions()...)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
