// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/utils"
	"gorm.io/gorm"
)

type registrantRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Registrant]
}

func NewRegistrantRepository(db *gorm.DB) *registrantRepository {
	return &registrantRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Registrant](db),
	}
}

// FindDuplicate matches a prior registration through its user record. The
// uploaded address is compared against both auth addresses since either may
// carry the sign-in email depending on the identity provider.
func (g *registrantRepository) FindDuplicate(groupID uuid.UUID, firstName, lastName, email string) (models.Registrant, error) {
	var registrant models.Registrant
	err := g.db.Preload("User").
		Joins("JOIN users ON users.id = registrants.user_id").
		Where("registrants.group_id = ? AND LOWER(TRIM(users.first_name)) = ? AND LOWER(TRIM(users.last_name)) = ? AND (users.auth_id = ? OR users.auth_provider_email = ?)",
			groupID, utils.NormalizeName(firstName), utils.NormalizeName(lastName), email, email).
		First(&registrant).Error
	return registrant, err
}
