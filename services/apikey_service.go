// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type APIKeyService struct {
	apiKeyRepository shared.APIKeyRepository
}

func NewAPIKeyService(apiKeyRepository shared.APIKeyRepository) *APIKeyService {
	return &APIKeyService{
		apiKeyRepository: apiKeyRepository,
	}
}

// VerifyToken looks a cleartext token up by its digest. The last-used
// timestamp gets updated off the request path.
func (s *APIKeyService) VerifyToken(token string) (models.APIKey, error) {
	hash := models.APIKey{}.HashToken(token)

	apiKey, err := s.apiKeyRepository.GetByTokenHash(hash)
	if err != nil {
		return models.APIKey{}, err
	}

	go func() {
		if err := s.apiKeyRepository.MarkAsLastUsedNow(apiKey.ID); err != nil {
			slog.Error("could not update last used timestamp", "apiKeyID", apiKey.ID, "err", err)
		}
	}()

	return apiKey, nil
}

// CreateToken generates a fresh key. The cleartext is returned exactly once,
// only the digest is stored.
func (s *APIKeyService) CreateToken(orgID uuid.UUID, userID string, request dtos.APIKeyCreateRequest) (models.APIKey, string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return models.APIKey{}, "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return models.APIKey{}, "", err
	}
	token := hex.EncodeToString(raw)

	digest := sha256.Sum256([]byte(token))

	apiKey := models.APIKey{
		OrgID:       orgID,
		UserID:      userUUID,
		Description: request.Description,
		Scopes:      request.Scopes,
		Fingerprint: hex.EncodeToString(digest[:8]),
		Token:       models.APIKey{}.HashToken(token),
	}

	if err := s.apiKeyRepository.Create(nil, &apiKey); err != nil {
		return models.APIKey{}, "", err
	}

	return apiKey, token, nil
}
