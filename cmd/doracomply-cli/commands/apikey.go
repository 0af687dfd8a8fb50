// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/doracomply/doracomply/database"
	"github.com/doracomply/doracomply/database/repositories"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/services"
)

func NewAPIKeyCommand() *cobra.Command {
	apiKey := cobra.Command{
		Use:   "api-key",
		Short: "Manage api keys",
	}

	apiKey.AddCommand(newAPIKeyCreateCommand())
	return &apiKey
}

func newAPIKeyCreateCommand() *cobra.Command {
	create := cobra.Command{
		Use:   "create",
		Short: "Mint an api key for a user. The cleartext token is printed exactly once.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			orgSlug, _ := cmd.Flags().GetString("org")
			userID, _ := cmd.Flags().GetString("user")
			scopes, _ := cmd.Flags().GetString("scopes")
			description, _ := cmd.Flags().GetString("description")

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

			apiKeyService := services.NewAPIKeyService(repositories.NewAPIKeyRepository(db))
			_, token, err := apiKeyService.CreateToken(org.ID, userID, dtos.APIKeyCreateRequest{
				Description: description,
				Scopes:      scopes,
			})
			if err != nil {
				slog.Error("could not create api key", "err", err)
				return
			}

			fmt.Println(token)
		},
	}

	create.Flags().String("org", "", "organization slug")
	create.Flags().String("user", "", "user id the key acts as")
	create.Flags().String("scopes", "read", "whitespace separated scopes")
	create.Flags().String("description", "created via cli", "key description")
	_ = create.MarkFlagRequired("org")
	_ = create.MarkFlagRequired("user")

	return &create
}
