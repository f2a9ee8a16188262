// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the output format helpers shared by the go-msd
// subcommands.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeOutput renders v according to --output. The text form is
// produced by textFn; json and yaml marshal v directly.
func writeOutput(w io.Writer, v any, textFn func(io.Writer) error) error {
	switch flagOutput {
	case "text":
		return textFn(w)
	case "json":
		return writeJSON(w, v)
	case "yaml":
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", flagOutput)
	}
}
