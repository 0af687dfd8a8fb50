// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/doracomply/doracomply/dtos"
)

// NotifyOverdueRiskReviews creates a daily notification for every org with
// open risks whose review date has passed.
func (runner *DaemonRunner) NotifyOverdueRiskReviews() error {
	orgs, err := runner.organizationRepository.All()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, org := range orgs {
		overdue, err := runner.riskRepository.CountReviewOverdue(org.ID, now)
		if err != nil {
			slog.Error("could not count overdue reviews", "err", err, "org", org.Slug)
			continue
		}
		if overdue == 0 {
			continue
		}

		if err := runner.notificationService.Notify(org.ID, nil, dtos.NotificationRiskReviewDue,
			"Risk reviews overdue",
			fmt.Sprintf("%d open risks are past their review date.", overdue)); err != nil {
			slog.Error("could not create risk review notification", "err", err)
		}
	}

	return nil
}
