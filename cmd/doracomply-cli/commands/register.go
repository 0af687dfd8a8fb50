// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/doracomply/doracomply/database"
	"github.com/doracomply/doracomply/database/repositories"
	"github.com/doracomply/doracomply/services"
)

func NewRegisterCommand() *cobra.Command {
	register := cobra.Command{
		Use:   "register",
		Short: "Work with the register of information",
	}

	register.AddCommand(newRegisterExportCommand())
	return &register
}

func newRegisterExportCommand() *cobra.Command {
	export := cobra.Command{
		Use:   "export",
		Short: "Export the register of information of an organization as CSV to stdout",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			orgSlug, _ := cmd.Flags().GetString("org")

			db, err := database.Factory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			org, err := repositories.NewOrgRepository(db).ReadBySlug(orgSlug)
			if err != nil {
				slog.Error("could not find organization", "err", err, "slug", orgSlug)
				return
			}

			registerService := services.NewRegisterService(
				repositories.NewRegisterEntryRepository(db),
				repositories.NewDocumentRepository(db),
				repositories.NewVendorRepository(db),
			)

			data, err := registerService.ExportCSV(org.ID)
			if err != nil {
				slog.Error("could not export register", "err", err)
				return
			}

			_, _ = os.Stdout.Write(data)
		},
	}

	export.Flags().String("org", "", "organization slug")
	_ = export.MarkFlagRequired("org")

	return &export
}
