// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"log/slog"
	"time"

	"github.com/doracomply/doracomply/monitoring"
)

// SnapshotRiskDistributions writes one risk distribution snapshot per
// organization. The snapshots feed the risk history dashboard widget.
func (runner *DaemonRunner) SnapshotRiskDistributions() error {
	start := time.Now()
	defer func() {
		monitoring.StatisticsUpdateDuration.Observe(time.Since(start).Minutes())
	}()
	monitoring.StatisticsUpdateDaemonAmount.Inc()

	orgs, err := runner.organizationRepository.All()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, org := range orgs {
		if err := runner.statisticsService.SnapshotRiskDistribution(org.ID, now); err != nil {
			slog.Error("could not snapshot risk distribution", "err", err, "org", org.Slug)
			// continue with the next org
		}
	}

	return nil
}
