// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/doracomply/doracomply/database"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run the pending database migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				slog.Error("could not read migration version", "err", err)
				return
			}
			slog.Info("migrations finished", "version", version, "dirty", dirty)
		},
	}

	return &migrate
}
