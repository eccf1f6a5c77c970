// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/google/uuid"
	"github.com/kindworks-dev/kindworks/database/models"
	"gorm.io/gorm"
)

type webhookRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.WebhookIntegration]
}

func NewWebhookRepository(db *gorm.DB) *webhookRepository {
	return &webhookRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.WebhookIntegration](db),
	}
}

func (g *webhookRepository) FindByOrgID(orgID uuid.UUID) ([]models.WebhookIntegration, error) {
	var integrations []models.WebhookIntegration
	err := g.db.Where("org_id = ?", orgID).Find(&integrations).Error
	return integrations, err
}
