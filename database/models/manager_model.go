// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

type Manager struct {
	Model
	FirstName      string       `json:"firstName" gorm:"type:text"`
	LastName       string       `json:"lastName" gorm:"type:text"`
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;not null"`
	Organization   Organization `json:"organization" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
}

func (Manager) TableName() string {
	return "managers"
}
