// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/utils"
	"gorm.io/gorm"
)

type inviteeRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Invitee]
}

func NewInviteeRepository(db *gorm.DB) *inviteeRepository {
	return &inviteeRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Invitee](db),
	}
}

func (g *inviteeRepository) FindDuplicate(groupID uuid.UUID, firstName, lastName, email string) (models.Invitee, error) {
	var invitee models.Invitee
	err := g.db.
		Where("group_id = ? AND LOWER(TRIM(first_name)) = ? AND LOWER(TRIM(last_name)) = ? AND email = ?",
			groupID, utils.NormalizeName(firstName), utils.NormalizeName(lastName), email).
		First(&invitee).Error
	return invitee, err
}
