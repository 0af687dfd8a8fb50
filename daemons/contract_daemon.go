// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/monitoring"
	"github.com/doracomply/doracomply/transformer"
)

// CheckContractStatus fires contract.expiring and contract.expired events for
// every contract that crossed a lifecycle boundary since the last run. Events
// fire exactly once per boundary.
func (runner *DaemonRunner) CheckContractStatus(lastRun time.Time) error {
	start := time.Now()
	defer func() {
		monitoring.ContractStatusDaemonDuration.Observe(time.Since(start).Minutes())
	}()
	monitoring.ContractStatusDaemonAmount.Inc()

	now := time.Now()
	contracts, err := runner.contractRepository.GetExpiringBefore(now.Add(models.ExpiringSoonWindow))
	if err != nil {
		return err
	}

	orgs := map[string]models.Org{}
	for _, contract := range contracts {
		expiry := *contract.ExpiryDate

		expiringBoundary := expiry.Add(-models.ExpiringSoonWindow)
		enteredExpiring := expiringBoundary.After(lastRun) && !expiringBoundary.After(now)
		expired := expiry.After(lastRun) && !expiry.After(now)

		if !enteredExpiring && !expired {
			continue
		}

		org, ok := orgs[contract.OrgID.String()]
		if !ok {
			org, err = runner.organizationRepository.GetOrgByID(contract.OrgID)
			if err != nil {
				slog.Error("could not load org for contract", "err", err, "contractRef", contract.ContractRef)
				continue
			}
			orgs[contract.OrgID.String()] = org
		}

		dto := transformer.ContractDTOFromModel(contract, now)
		if expired {
			runner.dispatcher.Dispatch(org, dtos.EventContractExpired, dto)
			if err := runner.notificationService.Notify(org.ID, nil, dtos.NotificationContractExpiring,
				"Contract expired",
				fmt.Sprintf("Contract %s (%s) has expired.", contract.Title, contract.ContractRef)); err != nil {
				slog.Error("could not create contract notification", "err", err)
			}
		} else {
			runner.dispatcher.Dispatch(org, dtos.EventContractExpiring, dto)
			if err := runner.notificationService.Notify(org.ID, nil, dtos.NotificationContractExpiring,
				"Contract expiring soon",
				fmt.Sprintf("Contract %s (%s) expires on %s.", contract.Title, contract.ContractRef, expiry.Format("2006-01-02"))); err != nil {
				slog.Error("could not create contract notification", "err", err)
			}
		}
	}

	return nil
}
