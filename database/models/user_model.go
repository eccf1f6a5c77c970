// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

type User struct {
	Model
	FirstName string `json:"firstName" gorm:"type:text"`
	LastName  string `json:"lastName" gorm:"type:text"`
	// AuthID is the identity-provider subject. For e-mail based providers it
	// carries the sign-in address, which is why duplicate detection matches
	// uploaded addresses against it.
	AuthID            *string `json:"-" gorm:"type:text;index"`
	AuthProviderEmail *string `json:"-" gorm:"type:text;index"`
}

func (User) TableName() string {
	return "users"
}
