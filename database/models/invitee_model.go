// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// Invitee is a person invited to a group, pending confirmation. Email is
// optional - rows uploaded without a (valid) address are stored without one.
type Invitee struct {
	Model
	FirstName string    `json:"firstName" gorm:"type:text;not null"`
	LastName  string    `json:"lastName" gorm:"type:text;not null"`
	Email     *string   `json:"email" gorm:"type:text"`
	IsMinor   bool      `json:"isMinor" gorm:"default:false;not null"`
	GroupID   uuid.UUID `json:"groupId" gorm:"type:uuid;not null;index"`
	Group     Group     `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
}

func (Invitee) TableName() string {
	return "invitees"
}
