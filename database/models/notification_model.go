// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import "github.com/google/uuid"

type Notification struct {
	Model
	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId"`

	UserID *string `json:"userId" gorm:"type:text;index"`

	Type  string `json:"type" gorm:"type:text;not null"`
	Title string `json:"title" gorm:"type:text;not null"`
	Body  string `json:"body" gorm:"type:text"`
	Read  bool   `json:"read" gorm:"default:false"`
}

func (Notification) TableName() string {
	return "notifications"
}
