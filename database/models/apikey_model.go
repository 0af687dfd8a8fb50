// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time  `json:"createdAt"`
	UserID      uuid.UUID  `json:"userId"`
	Description string     `json:"description" gorm:"type:text"`
	Fingerprint string     `json:"fingerprint"`
	Token       string     `json:"-" gorm:"uniqueIndex"`
	LastUsedAt  *time.Time `json:"lastUsedAt" gorm:"default:null"`
	Scopes      string     `json:"scopes" gorm:"type:text"` // whitespace separated scopes: read manage

	Org   Org       `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE;"`
	OrgID uuid.UUID `json:"orgId"`
}

func (a APIKey) TableName() string {
	return "api_keys"
}

// HashToken stores only the digest of a key, never the cleartext.
func (a APIKey) HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

func (a APIKey) GetUserID() string {
	return a.UserID.String()
}
