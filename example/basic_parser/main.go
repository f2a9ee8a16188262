// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Basic Parser demonstrates one-shot parsing of an MSD document.

package main

import (
	"fmt"

	"github.com/smdbs01/go-msd"
)

func main() {
	msdData := `#VERSION:0.83;
#TITLE:Springtime;
#SUBTITLE:;
#ARTIST:Kommisar;
#BPMS:0.000=170.000;
`

	params, err := msd.Parse([]byte(msdData))
	if err != nil {
		panic(err)
	}

	for _, param := range params {
		fmt.Printf("%s = %q\n", param.Key(), param.Value())
	}
}
