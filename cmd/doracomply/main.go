// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/doracomply/doracomply/accesscontrol"
	"github.com/doracomply/doracomply/controllers"
	"github.com/doracomply/doracomply/daemons"
	"github.com/doracomply/doracomply/database"
	"github.com/doracomply/doracomply/database/repositories"
	"github.com/doracomply/doracomply/integrations/aiint"
	"github.com/doracomply/doracomply/integrations/gleifint"
	"github.com/doracomply/doracomply/middlewares"
	"github.com/doracomply/doracomply/router"
	"github.com/doracomply/doracomply/services"
	"github.com/doracomply/doracomply/shared"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	cfg := database.GetPoolConfigFromEnv()
	pool := database.NewPgxConnPool(cfg)
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,
		accesscontrol.Module,
		gleifint.Module,
		aiint.Module,
		daemons.Module,

		// routers register their routes on construction
		fx.Invoke(func(OrgRouter router.OrgRouter) {}),
		fx.Invoke(func(SessionRouter router.SessionRouter) {}),
		fx.Invoke(func(VendorRouter router.VendorRouter) {}),
		fx.Invoke(func(ContractRouter router.ContractRouter) {}),
		fx.Invoke(func(RiskRouter router.RiskRouter) {}),
		fx.Invoke(func(DocumentRouter router.DocumentRouter) {}),
		fx.Invoke(func(RegisterRouter router.RegisterRouter) {}),
		fx.Invoke(func(WebhookRouter router.WebhookRouter) {}),
		fx.Invoke(func(DashboardRouter router.DashboardRouter) {}),

		fx.Invoke(startServer),
	).Run()
}

func startServer(lc fx.Lifecycle, e *echo.Echo, runner *daemons.DaemonRunner) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start()
			go func() {
				if err := e.Start(":" + port); err != nil {
					slog.Info("shutting down the server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		// no personally identifiable information leaves the process
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("failed to init sentry", "err", err)
	}
}
