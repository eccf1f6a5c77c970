// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

type WebhookIntegration struct {
	Model
	Name   *string   `json:"name" gorm:"type:text"`
	OrgID  uuid.UUID `json:"orgId" gorm:"type:uuid;not null;index"`
	URL    string    `json:"url" gorm:"type:text;not null"`
	Secret *string   `json:"-" gorm:"type:text"`
}

func (WebhookIntegration) TableName() string {
	return "webhook_integrations"
}
