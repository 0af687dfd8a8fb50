// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
)

func APIKeyDTOFromModel(key models.APIKey) dtos.APIKeyDTO {
	return dtos.APIKeyDTO{
		ID:          key.ID,
		CreatedAt:   key.CreatedAt,
		Description: key.Description,
		Scopes:      key.Scopes,
		UserID:      key.GetUserID(),
		Fingerprint: key.Fingerprint,
		LastUsedAt:  key.LastUsedAt,
	}
}
