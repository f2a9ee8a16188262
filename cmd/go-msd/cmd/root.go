// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the go-msd command line interface.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smdbs01/go-msd"
)

// version is the current version of the go-msd CLI tool.
const version = "0.1.0"

var (
	flagEscapes     bool
	flagIgnoreStray bool
	flagOutput      string
	flagConfig      string
)

var rootCmd = &cobra.Command{
	Use:   "go-msd",
	Short: "Inspect and convert MSD documents",
	Long: `go-msd reads MSD documents ("#KEY:VALUE;" records, as used by
simfile formats such as SM, SSC and DWI) from a file or stdin and
dumps their tokens and parameters, converts them to JSON or YAML,
reformats them with canonical escapes, or explores them in an
interactive shell.`,
	Version:           version,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagEscapes, "escapes", true, "support escape sequences (disable for DWI and legacy SM)")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreStray, "ignore-stray", false, "ignore stray text between parameters instead of failing")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
}

// loadSettings merges config file values into the flag variables.
// Flags given on the command line win over the config file.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	flags := cmd.Flags()
	if cfg.Escapes != nil && !flags.Changed("escapes") {
		flagEscapes = *cfg.Escapes
	}
	if cfg.IgnoreStrayText != nil && !flags.Changed("ignore-stray") {
		flagIgnoreStray = *cfg.IgnoreStrayText
	}
	if cfg.Output != "" && !flags.Changed("output") {
		flagOutput = cfg.Output
	}
	return nil
}

// parserOptions translates the resolved settings into parser options.
func parserOptions() []msd.Option {
	opts := []msd.Option{msd.WithEscapes(flagEscapes)}
	if flagIgnoreStray {
		opts = append(opts, msd.WithIgnoreStrayText())
	}
	return opts
}

// openInput returns the document source for a command: the file named
// by the first argument, or stdin when no argument (or "-") is given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readDocument parses the whole input into a parameter slice.
func readDocument(args []string) ([]msd.Parameter, error) {
	in, err := openInput(args)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return msd.Parse(data, parserOptions()...)
}
