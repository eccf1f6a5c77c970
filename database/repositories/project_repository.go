// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"github.com/kindworks-dev/kindworks/shared"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

// ConsumeOpenSlots moves count slots from the open pool into the registered
// count. A single guarded UPDATE keeps the counter from going negative under
// concurrent uploads.
func (g *projectRepository) ConsumeOpenSlots(tx *gorm.DB, id uuid.UUID, count int) error {
	res := g.GetDB(tx).Model(&models.Project{}).
		Where("id = ? AND open_user_slots >= ?", id, count).
		UpdateColumns(map[string]any{
			"open_user_slots":       gorm.Expr("open_user_slots - ?", count),
			"registered_user_count": gorm.Expr("registered_user_count + ?", count),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrInsufficientSlots
	}
	return nil
}
