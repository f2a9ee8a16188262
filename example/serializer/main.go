// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Serializer demonstrates writing parameters back out as MSD.

package main

import (
	"fmt"

	"github.com/smdbs01/go-msd"
)

func main() {
	params := []msd.Parameter{
		{Components: []string{"TITLE", "Springtime"}},
		{Components: []string{"ARTIST", "Kommisar"}},
		{Components: []string{"CREDIT", "ratings: 9/10; fun//fast"}},
	}

	out, err := msd.Serialize(params)
	if err != nil {
		panic(err)
	}

	fmt.Print(string(out))
}
