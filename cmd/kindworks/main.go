// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/kindworks-dev/kindworks/config"
	"github.com/kindworks-dev/kindworks/controllers"
	"github.com/kindworks-dev/kindworks/database"
	"github.com/kindworks-dev/kindworks/database/repositories"
	"github.com/kindworks-dev/kindworks/middlewares"
	"github.com/kindworks-dev/kindworks/router"
	"github.com/kindworks-dev/kindworks/services"
	"github.com/kindworks-dev/kindworks/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

//	@title			kindworks API
//	@version		v1
//	@description	volunteer event registration API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg := config.FromEnv()

	db, err := shared.DatabaseFactory(cfg)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Provide(
			middlewares.Server,
			func(db shared.DB) shared.GroupRepository { return repositories.NewGroupRepository(db) },
			func(db shared.DB) shared.ProjectRepository { return repositories.NewProjectRepository(db) },
			func(db shared.DB) shared.InviteeRepository { return repositories.NewInviteeRepository(db) },
			func(db shared.DB) shared.RegistrantRepository { return repositories.NewRegistrantRepository(db) },
			func(db shared.DB) shared.ManagerRepository { return repositories.NewManagerRepository(db) },
			func(db shared.DB) shared.OrganizationRepository { return repositories.NewOrganizationRepository(db) },
			func(db shared.DB) shared.WebhookIntegrationRepository { return repositories.NewWebhookRepository(db) },
			func(cfg config.Config) shared.NotificationDispatcher { return services.NewNotificationService(cfg) },
			func() shared.WebhookDispatcher { return services.NewWebhookDispatcher() },
			func() shared.RosterParser { return services.NewRosterService() },
			func(
				groupRepository shared.GroupRepository,
				projectRepository shared.ProjectRepository,
				inviteeRepository shared.InviteeRepository,
				registrantRepository shared.RegistrantRepository,
				managerRepository shared.ManagerRepository,
				webhookRepository shared.WebhookIntegrationRepository,
				notificationDispatcher shared.NotificationDispatcher,
				webhookDispatcher shared.WebhookDispatcher,
				cfg config.Config,
			) controllers.RegistrationProcessor {
				return services.NewRegistrationService(groupRepository, projectRepository, inviteeRepository, registrantRepository, managerRepository, webhookRepository, notificationDispatcher, webhookDispatcher, cfg)
			},
			controllers.NewRegistrationController,
			controllers.NewWebhookController,
		),
		fx.Invoke(func(e *echo.Echo, registrationController *controllers.RegistrationController, webhookController *controllers.WebhookController) {
			api := router.NewAPIV1Router(e)
			router.RegisterRegistrationRoutes(api, registrationController)
			router.RegisterWebhookRoutes(api, webhookController)
		}),
		fx.Invoke(func(lc fx.Lifecycle, e *echo.Echo, shutdowner fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
							slog.Error("server stopped", "err", err)
							shutdowner.Shutdown() // nolint: errcheck
						}
					}()
					slog.Info("kindworks api listening", "port", cfg.Port, "version", config.Version)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					return e.Shutdown(ctx)
				},
			})
		}),
	)

	app.Run()
}
