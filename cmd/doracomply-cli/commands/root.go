// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doracomply-cli",
	Short: "Management cli",
	Long:  `The doracomply cli can be used to administer a running doracomply instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
