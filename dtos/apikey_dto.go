// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type APIKeyCreateRequest struct {
	Description string `json:"description" validate:"required"`
	Scopes      string `json:"scopes" validate:"required"`
}

type APIKeyDTO struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	Description string     `json:"description"`
	Scopes      string     `json:"scopes"`
	UserID      string     `json:"userId"`
	Fingerprint string     `json:"fingerprint"`
	LastUsedAt  *time.Time `json:"lastUsedAt"`
}

// APIKeyCreatedDTO is returned exactly once, on creation. The cleartext token
// is never stored.
type APIKeyCreatedDTO struct {
	APIKeyDTO
	Token string `json:"token"`
}

type WhoamiDTO struct {
	UserID string `json:"userId"`
	Scopes string `json:"scopes"`
}
