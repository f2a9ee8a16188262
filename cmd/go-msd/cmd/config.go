// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the TOML config file support for the go-msd tool.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the go-msd tool configuration. Boolean settings are
// pointers so that an absent key leaves the flag default untouched.
type Config struct {
	Escapes         *bool  `toml:"escapes"`
	IgnoreStrayText *bool  `toml:"ignore_stray_text"`
	Output          string `toml:"output"`
}

// defaultConfigPaths lists the locations probed when --config is not given.
func defaultConfigPaths() []string {
	return []string{
		"./go-msd.toml",
		filepath.Join(os.Getenv("HOME"), ".config/go-msd/config.toml"),
	}
}

// loadConfig reads the config file at path, or the first default
// location that exists when path is empty. A missing default config
// is not an error; a missing explicit --config path is.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		for _, p := range defaultConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return nil, nil
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
