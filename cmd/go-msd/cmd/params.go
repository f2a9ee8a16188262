// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "params" subcommand, a parameter-level view of
// an MSD document.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smdbs01/go-msd"
)

var paramsCmd = &cobra.Command{
	Use:   "params [file]",
	Short: "Print the parameters of an MSD document",
	Long: `Params parses an MSD document and prints one line per parameter in
"key: value" form. Stray text between parameters is reported as a
warning on stderr and parsing continues; pass --ignore-stray to
silence the warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}

func runParams(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	parser, err := msd.NewParser(in, parserOptions()...)
	if err != nil {
		return err
	}

	var params []msd.Parameter
	var param msd.Parameter
	for {
		err := parser.Parse(&param)
		if err == io.EOF {
			break
		}
		var stray *msd.StrayTextError
		if errors.As(err, &stray) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		params = append(params, param)
	}

	return writeOutput(cmd.OutOrStdout(), documentComponents(params), func(w io.Writer) error {
		for _, p := range params {
			var err error
			if p.HasValue() {
				_, err = fmt.Fprintf(w, "%s: %s\n", p.Key(), strings.Join(p.Components[1:], ":"))
			} else {
				_, err = fmt.Fprintln(w, p.Key())
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// documentComponents flattens parameters into their component lists,
// the lossless structured form shared by the params, json and yaml
// subcommands.
func documentComponents(params []msd.Parameter) [][]string {
	docs := make([][]string, len(params))
	for i, p := range params {
		docs[i] = p.Components
	}
	return docs
}
