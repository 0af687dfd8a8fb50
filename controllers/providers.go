// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"go.uber.org/fx"
)

// Module provides all http controllers
var Module = fx.Options(
	fx.Provide(
		NewOrgController,
		NewVendorController,
		NewContractController,
		NewRiskController,
		NewDocumentController,
		NewRegisterController,
		NewDashboardController,
		NewWebhookController,
		NewNotificationController,
		NewAPIKeyController,
		NewCopilotController,
		NewGleifController,
	),
)
