// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package main

import (
	"log/slog"
	"os"

	"github.com/doracomply/doracomply/cmd/doracomply-cli/commands"
	"github.com/doracomply/doracomply/shared"

	_ "github.com/lib/pq"
)

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewAPIKeyCommand())
	commands.GetRootCmd().AddCommand(commands.NewRegisterCommand())
}

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if err := commands.GetRootCmd().Execute(); err != nil {
		slog.Error("error executing command", "err", err)
		os.Exit(1)
	}
}
