// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"github.com/spf13/cobra"

	"github.com/ssebide/ssebide-chain/consts"
	"github.com/ssebide/ssebide-chain/utils"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints out the version",
		RunE:  versionFunc,
	}
	return cmd
}

func versionFunc(*cobra.Command, []string) error {
	utils.Outf("{{cyan}}%s@%s{{/}}\n", consts.Name, consts.Version)
	return nil
}
