// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewOrgRouter),
	fx.Provide(NewVendorRouter),
	fx.Provide(NewContractRouter),
	fx.Provide(NewRiskRouter),
	fx.Provide(NewDocumentRouter),
	fx.Provide(NewRegisterRouter),
	fx.Provide(NewWebhookRouter),
	fx.Provide(NewDashboardRouter),
)
