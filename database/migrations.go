// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"github.com/kindworks-dev/kindworks/database/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.Manager{},
		&models.User{},
		&models.Project{},
		&models.Group{},
		&models.Invitee{},
		&models.Registrant{},
		&models.WebhookIntegration{},
	)
}
