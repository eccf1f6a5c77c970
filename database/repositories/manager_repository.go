// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"gorm.io/gorm"
)

type managerRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Manager]
}

func NewManagerRepository(db *gorm.DB) *managerRepository {
	return &managerRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Manager](db),
	}
}

func (g *managerRepository) ReadWithOrganization(id uuid.UUID) (models.Manager, error) {
	var manager models.Manager
	err := g.db.Preload("Organization").First(&manager, "id = ?", id).Error
	return manager, err
}
