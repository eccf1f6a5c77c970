// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"github.com/kindworks-dev/kindworks/controllers"
	"github.com/kindworks-dev/kindworks/shared"
)

func RegisterRegistrationRoutes(api shared.Server, registrationController *controllers.RegistrationController) {
	registrationRouter := api.Group("/registrations")
	registrationRouter.POST("/bulk-upload/", registrationController.BulkUpload)
}
