// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Token Scanner demonstrates reading the raw MSD token stream.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/smdbs01/go-msd"
)

func main() {
	msdData := "#TITLE:Spring\\:time; // escaped colon\n"

	scanner, err := msd.NewScanner(strings.NewReader(msdData))
	if err != nil {
		panic(err)
	}

	var tok msd.Token
	for {
		err := scanner.Scan(&tok)
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-15s %q\n", tok.Type, tok.Text)
	}
}
