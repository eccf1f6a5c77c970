// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/kindworks-dev/kindworks/controllers"
	"github.com/kindworks-dev/kindworks/shared"
)

func RegisterWebhookRoutes(api shared.Server, webhookController *controllers.WebhookController) {
	webhookRouter := api.Group("/webhooks")
	webhookRouter.GET("/", webhookController.List)
	webhookRouter.POST("/", webhookController.Save)
	webhookRouter.PUT("/", webhookController.Update)
	webhookRouter.DELETE("/:id/", webhookController.Delete)
}
