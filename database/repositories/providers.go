// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/doracomply/doracomply/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewOrgRepository, fx.As(new(shared.OrganizationRepository))),
		fx.Annotate(NewVendorRepository, fx.As(new(shared.VendorRepository))),
		fx.Annotate(NewContractRepository, fx.As(new(shared.ContractRepository))),
		fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository))),
		fx.Annotate(NewRiskRepository, fx.As(new(shared.RiskRepository))),
		fx.Annotate(NewRegisterEntryRepository, fx.As(new(shared.RegisterEntryRepository))),
		fx.Annotate(NewAPIKeyRepository, fx.As(new(shared.APIKeyRepository))),
		fx.Annotate(NewWebhookIntegrationRepository, fx.As(new(shared.WebhookIntegrationRepository))),
		fx.Annotate(NewWebhookDeliveryRepository, fx.As(new(shared.WebhookDeliveryRepository))),
		fx.Annotate(NewNotificationRepository, fx.As(new(shared.NotificationRepository))),
		fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository))),
		fx.Annotate(NewOrgRiskHistoryRepository, fx.As(new(shared.OrgRiskHistoryRepository))),
	),
)
