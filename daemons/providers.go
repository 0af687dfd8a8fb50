// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"time"

	"go.uber.org/fx"

	"github.com/doracomply/doracomply/shared"
)

// DaemonRunner encapsulates background job dependencies and lifecycle
type DaemonRunner struct {
	configService          shared.ConfigService
	contractRepository     shared.ContractRepository
	organizationRepository shared.OrganizationRepository
	riskRepository         shared.RiskRepository
	integrationRepository  shared.WebhookIntegrationRepository
	deliveryRepository     shared.WebhookDeliveryRepository
	dispatcher             shared.WebhookDispatcher
	notificationService    shared.NotificationService
	statisticsService      shared.StatisticsService
}

func NewDaemonRunner(
	configService shared.ConfigService,
	contractRepository shared.ContractRepository,
	organizationRepository shared.OrganizationRepository,
	riskRepository shared.RiskRepository,
	integrationRepository shared.WebhookIntegrationRepository,
	deliveryRepository shared.WebhookDeliveryRepository,
	dispatcher shared.WebhookDispatcher,
	notificationService shared.NotificationService,
	statisticsService shared.StatisticsService,
) *DaemonRunner {
	return &DaemonRunner{
		configService:          configService,
		contractRepository:     contractRepository,
		organizationRepository: organizationRepository,
		riskRepository:         riskRepository,
		integrationRepository:  integrationRepository,
		deliveryRepository:     deliveryRepository,
		dispatcher:             dispatcher,
		notificationService:    notificationService,
		statisticsService:      statisticsService,
	}
}

// Start initiates all background daemons
func (runner *DaemonRunner) Start() {
	go func() {
		runner.runDaemons()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			runner.runDaemons()
		}
	}()
}

var Module = fx.Module("daemons",
	fx.Provide(NewDaemonRunner),
)
