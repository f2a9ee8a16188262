// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "tokens" subcommand, a scanner-level dump of
// an MSD document.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smdbs01/go-msd"
)

// tokenRecord is the structured form of a scanned token.
type tokenRecord struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of an MSD document",
	Long: `Tokens scans an MSD document and prints one line per token. The
token texts concatenate to the original input, so the dump shows
exactly how the scanner carved the document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	scanner, err := msd.NewScanner(in, parserOptions()...)
	if err != nil {
		return err
	}

	var records []tokenRecord
	var tok msd.Token
	for {
		err := scanner.Scan(&tok)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		records = append(records, tokenRecord{Type: tok.Type.String(), Text: tok.Text})
	}

	return writeOutput(cmd.OutOrStdout(), records, func(w io.Writer) error {
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%-15s %q\n", r.Type, r.Text); err != nil {
				return err
			}
		}
		return nil
	})
}
