// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"go.uber.org/fx"

	"github.com/doracomply/doracomply/shared"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewOrgService, fx.As(new(shared.OrgService))),
		fx.Annotate(NewVendorService, fx.As(new(shared.VendorService))),
		fx.Annotate(NewAPIKeyService, fx.As(new(shared.APIKeyService))),
		fx.Annotate(NewWebhookDispatchService, fx.As(new(shared.WebhookDispatcher))),
		fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationService))),
		fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService))),
		fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService))),
		fx.Annotate(NewFilesystemStorage, fx.As(new(shared.ObjectStorage))),
	),
	fx.Provide(NewDocumentService),
	fx.Provide(NewRegisterService),
	fx.Provide(NewCopilotService),
)
