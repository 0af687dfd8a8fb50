// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/doracomply/doracomply/shared"
)

func lastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}

	return lastRun.Time, nil
}

func shouldRun(configService shared.ConfigService, key string, interval time.Duration) bool {
	lastRun, err := lastRunTime(configService, key)
	if err != nil {
		return false
	}

	return time.Since(lastRun) > interval
}

func markRan(configService shared.ConfigService, key string) error {
	return configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: time.Now(),
	})
}

func (runner *DaemonRunner) runDaemons() {
	daemonStart := time.Now()
	slog.Info("starting background jobs", "time", daemonStart)

	// failed webhook deliveries are retried on every tick
	start := time.Now()
	if err := runner.RedeliverFailedWebhooks(); err != nil {
		slog.Error("could not redeliver failed webhooks", "err", err)
	} else {
		slog.Info("webhook redelivery finished", "duration", time.Since(start))
	}

	if shouldRun(runner.configService, "daemon.contractStatus", 24*time.Hour) {
		start = time.Now()
		lastRun, err := lastRunTime(runner.configService, "daemon.contractStatus")
		if err == nil {
			if err := runner.CheckContractStatus(lastRun); err != nil {
				slog.Error("could not check contract status", "err", err)
				return
			}
			if err := markRan(runner.configService, "daemon.contractStatus"); err != nil {
				slog.Error("could not mark contractStatus as ran", "err", err)
			}
			slog.Info("contract status checked", "duration", time.Since(start))
		}
	}

	if shouldRun(runner.configService, "daemon.riskSnapshot", time.Hour) {
		start = time.Now()
		if err := runner.SnapshotRiskDistributions(); err != nil {
			slog.Error("could not snapshot risk distributions", "err", err)
			return
		}
		if err := markRan(runner.configService, "daemon.riskSnapshot"); err != nil {
			slog.Error("could not mark riskSnapshot as ran", "err", err)
		}
		slog.Info("risk distributions snapshotted", "duration", time.Since(start))
	}

	if shouldRun(runner.configService, "daemon.riskReviewNotify", 24*time.Hour) {
		start = time.Now()
		if err := runner.NotifyOverdueRiskReviews(); err != nil {
			slog.Error("could not notify overdue risk reviews", "err", err)
			return
		}
		if err := markRan(runner.configService, "daemon.riskReviewNotify"); err != nil {
			slog.Error("could not mark riskReviewNotify as ran", "err", err)
		}
		slog.Info("overdue risk reviews notified", "duration", time.Since(start))
	}

	if shouldRun(runner.configService, "daemon.webhookFailureNotify", 24*time.Hour) {
		start = time.Now()
		if err := runner.NotifyFailingWebhooks(); err != nil {
			slog.Error("could not notify failing webhooks", "err", err)
			return
		}
		if err := markRan(runner.configService, "daemon.webhookFailureNotify"); err != nil {
			slog.Error("could not mark webhookFailureNotify as ran", "err", err)
		}
		slog.Info("failing webhooks notified", "duration", time.Since(start))
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
}
