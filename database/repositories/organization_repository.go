// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Organization]
}

func NewOrganizationRepository(db *gorm.DB) *organizationRepository {
	return &organizationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Organization](db),
	}
}
