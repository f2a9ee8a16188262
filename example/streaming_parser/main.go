// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Streaming Parser demonstrates pull-based parsing with recovery
// from stray text.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smdbs01/go-msd"
)

func main() {
	msdData := `#TITLE:Springtime;
#ARTIST:Kommisar;
oops, stray text
#OFFSET:-0.090;
`

	parser, err := msd.NewParser(strings.NewReader(msdData))
	if err != nil {
		panic(err)
	}

	var param msd.Parameter
	for {
		err := parser.Parse(&param)
		if err == io.EOF {
			break
		}
		var strayErr *msd.StrayTextError
		if errors.As(err, &strayErr) {
			// Not fatal: report and keep parsing.
			fmt.Printf("warning: %s\n", strayErr)
			continue
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s = %q\n", param.Key(), param.Value())
	}
}
