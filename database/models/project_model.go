// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectState string

const (
	ProjectStateActive    ProjectState = "active"
	ProjectStateCanceled  ProjectState = "canceled"
	ProjectStateCompleted ProjectState = "completed"
)

type Project struct {
	Model
	Name  string       `json:"name" gorm:"type:text;not null"`
	State ProjectState `json:"state" gorm:"type:text;default:'active';not null"`

	StartsAt   time.Time `json:"startsAt" gorm:"type:timestamp with time zone;not null"`
	FinishesAt time.Time `json:"finishesAt" gorm:"type:timestamp with time zone;not null"`

	OpenUserSlots       int `json:"openUserSlots" gorm:"default:0;not null"`
	RegisteredUserCount int `json:"registeredUserCount" gorm:"default:0;not null"`

	Address string `json:"address" gorm:"type:text"`
	// Task is the work description rendered into invitation mails.
	Task string `json:"task" gorm:"type:text"`

	ManagerID uuid.UUID `json:"managerId" gorm:"type:uuid;not null"`
	Manager   Manager   `json:"manager" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE;"`
}

func (Project) TableName() string {
	return "projects"
}
