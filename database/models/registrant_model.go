// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// Registrant is a confirmed registration of a platform user in a group. Bulk
// uploads only read it for duplicate detection.
type Registrant struct {
	Model
	GroupID uuid.UUID `json:"groupId" gorm:"type:uuid;not null;index"`
	Group   Group     `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
	UserID  uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	User    User      `json:"user" gorm:"foreignKey:UserID"`
}

func (Registrant) TableName() string {
	return "registrants"
}
