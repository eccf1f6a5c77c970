// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/shared"
	"gorm.io/gorm"
)

type groupRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Group]
}

func NewGroupRepository(db *gorm.DB) *groupRepository {
	return &groupRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Group](db),
	}
}

func (g *groupRepository) FindByIDAndUniqueCode(id uuid.UUID, uniqueCode string) (models.Group, error) {
	var group models.Group
	err := g.db.Preload("Leader").Where("id = ? AND unique_code = ?", id, uniqueCode).First(&group).Error
	return group, err
}

func (g *groupRepository) IncrementInviteeCount(tx *gorm.DB, id uuid.UUID, count int) error {
	return g.GetDB(tx).Model(&models.Group{}).
		Where("id = ?", id).
		UpdateColumn("invitee_user_count", gorm.Expr("invitee_user_count + ?", count)).Error
}

func (g *groupRepository) ConsumeOpenSlots(tx *gorm.DB, id uuid.UUID, count int) error {
	res := g.GetDB(tx).Model(&models.Group{}).
		Where("id = ? AND open_user_slots >= ?", id, count).
		UpdateColumn("open_user_slots", gorm.Expr("open_user_slots - ?", count))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrInsufficientSlots
	}
	return nil
}
