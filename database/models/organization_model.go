// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

type Organization struct {
	Model
	Name string `json:"name" gorm:"type:text;not null"`
	// IsPartner marks organizations that participate in the outbound
	// invitee webhook integration.
	IsPartner bool `json:"isPartner" gorm:"default:false;not null"`
}

func (Organization) TableName() string {
	return "organizations"
}
