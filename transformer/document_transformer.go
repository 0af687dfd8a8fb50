// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/google/uuid"
)

func DocumentCreateRequestToModel(c dtos.DocumentCreateRequest, orgID uuid.UUID) models.Document {
	return models.Document{
		OrgID:       orgID,
		VendorID:    c.VendorID,
		FileName:    c.FileName,
		StorageKey:  c.StorageKey,
		ContentType: c.ContentType,
		Kind:        c.Kind,
		ParseStatus: string(dtos.ParsePending),
	}
}

func DocumentDTOFromModel(document models.Document) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:          document.ID,
		CreatedAt:   document.CreatedAt,
		UpdatedAt:   document.UpdatedAt,
		VendorID:    document.VendorID,
		FileName:    document.FileName,
		StorageKey:  document.StorageKey,
		ContentType: document.ContentType,
		Kind:        dtos.DocumentKind(document.Kind),
		ParseStatus: dtos.ParseStatus(document.ParseStatus),
		ParseError:  document.ParseError,
		ParsedAt:    document.ParsedAt,
		Metadata:    document.Metadata,
	}
}
