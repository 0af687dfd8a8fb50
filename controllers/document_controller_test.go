// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/services"
	"github.com/doracomply/doracomply/shared"
)

type uploadDocumentRepository struct {
	shared.DocumentRepository
	document models.Document
	saved    *models.Document
}

func (f *uploadDocumentRepository) ReadForOrg(orgID uuid.UUID, id uuid.UUID) (models.Document, error) {
	return f.document, nil
}

func (f *uploadDocumentRepository) Save(tx shared.DB, document *models.Document) error {
	f.saved = document
	return nil
}

type recordingObjectStorage struct {
	key         string
	contentType string
	data        []byte
}

func (r *recordingObjectStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (r *recordingObjectStorage) Store(ctx context.Context, key string, contentType string, data []byte) error {
	r.key = key
	r.contentType = contentType
	r.data = data
	return nil
}

func TestDocumentUpload(t *testing.T) {
	org := models.Org{Model: models.Model{ID: uuid.New()}, Slug: "acme-bank"}
	documentID := uuid.New()

	uploadContext := func(body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		shared.SetOrg(ctx, org)
		ctx.SetParamNames("documentID")
		ctx.SetParamValues(documentID.String())
		return ctx, rec
	}

	t.Run("should store the content under an org scoped key", func(t *testing.T) {
		repository := &uploadDocumentRepository{document: models.Document{
			Model:       models.Model{ID: documentID},
			OrgID:       org.ID,
			FileName:    "report.pdf",
			ParseStatus: "pending",
		}}
		storage := &recordingObjectStorage{}
		controller := NewDocumentController(repository, services.NewDocumentService(repository, storage, nil, nil, nil))

		ctx, rec := uploadContext("soc2 report text", "application/pdf")
		require.NoError(t, controller.Upload(ctx))

		assert.Equal(t, 200, rec.Code)
		expectedKey := fmt.Sprintf("%s/%s", org.ID, documentID)
		assert.Equal(t, expectedKey, storage.key)
		assert.Equal(t, "application/pdf", storage.contentType)
		assert.Equal(t, []byte("soc2 report text"), storage.data)

		require.NotNil(t, repository.saved)
		assert.Equal(t, expectedKey, repository.saved.StorageKey)
		assert.Equal(t, "application/pdf", repository.saved.ContentType)
	})

	t.Run("should reject an empty body", func(t *testing.T) {
		repository := &uploadDocumentRepository{document: models.Document{
			Model: models.Model{ID: documentID},
			OrgID: org.ID,
		}}
		storage := &recordingObjectStorage{}
		controller := NewDocumentController(repository, services.NewDocumentService(repository, storage, nil, nil, nil))

		ctx, _ := uploadContext("", "")
		err := controller.Upload(ctx)

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
		assert.Empty(t, storage.key)
	})
}
