// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "github.com/google/uuid"

// Group is a sub-cohort of a project with its own invite capacity. The
// UniqueCode doubles as the shared secret of the bulk-upload endpoint.
type Group struct {
	Model
	Name       string    `json:"name" gorm:"type:text;not null"`
	UniqueCode string    `json:"uniqueCode" gorm:"type:text;uniqueIndex;not null"`
	ProjectID  uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project    Project   `json:"project" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	OpenUserSlots    int `json:"openUserSlots" gorm:"default:0;not null"`
	InviteeUserCount int `json:"inviteeUserCount" gorm:"default:0;not null"`

	LeaderID *uuid.UUID `json:"leaderId" gorm:"type:uuid"`
	Leader   *User      `json:"leader" gorm:"foreignKey:LeaderID"`
}

func (Group) TableName() string {
	return "groups"
}
