// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ssebide/ssebide-chain/cmd/ssebide/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ssebide failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
