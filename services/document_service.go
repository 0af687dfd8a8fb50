// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	databasetypes "github.com/doracomply/doracomply/database/types"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/monitoring"
	"github.com/doracomply/doracomply/shared"
)

type DocumentService struct {
	documentRepository  shared.DocumentRepository
	objectStorage       shared.ObjectStorage
	extractor           shared.DocumentExtractor
	dispatcher          shared.WebhookDispatcher
	notificationService shared.NotificationService
}

func NewDocumentService(documentRepository shared.DocumentRepository, objectStorage shared.ObjectStorage, extractor shared.DocumentExtractor, dispatcher shared.WebhookDispatcher, notificationService shared.NotificationService) *DocumentService {
	return &DocumentService{
		documentRepository:  documentRepository,
		objectStorage:       objectStorage,
		extractor:           extractor,
		dispatcher:          dispatcher,
		notificationService: notificationService,
	}
}

// StoreContent writes the raw document content to the object storage and
// points the storage key of the document at it.
func (s *DocumentService) StoreContent(ctx context.Context, document *models.Document, contentType string, data []byte) error {
	key := fmt.Sprintf("%s/%s", document.OrgID, document.ID)
	if err := s.objectStorage.Store(ctx, key, contentType, data); err != nil {
		return fmt.Errorf("could not store document content: %w", err)
	}

	document.StorageKey = key
	if contentType != "" {
		document.ContentType = contentType
	}
	return s.documentRepository.Save(nil, document)
}

// StartParseJob flips the document to processing and runs the extraction in
// the background. A document that is already processing cannot be queued
// twice.
func (s *DocumentService) StartParseJob(org models.Org, document models.Document) error {
	if document.ParseStatus == string(dtos.ParseProcessing) {
		return fmt.Errorf("document is already being parsed")
	}

	document.ParseStatus = string(dtos.ParseProcessing)
	document.ParseError = nil
	if err := s.documentRepository.Save(nil, &document); err != nil {
		return err
	}

	go s.runParseJob(org, document)
	return nil
}

func (s *DocumentService) runParseJob(org models.Org, document models.Document) {
	start := time.Now()
	monitoring.DocumentParseAmount.Inc()
	defer func() {
		monitoring.DocumentParseDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	extraction, err := s.extract(ctx, document)
	if err != nil {
		monitoring.DocumentParseFailedAmount.Inc()
		slog.Error("document parse job failed", "document", document.ID, "err", err)

		document.ParseStatus = string(dtos.ParseFailed)
		document.ParseError = shared.Ptr(err.Error())
		if saveErr := s.documentRepository.Save(nil, &document); saveErr != nil {
			slog.Error("could not persist failed parse job", "document", document.ID, "err", saveErr)
		}

		s.dispatcher.Dispatch(org, dtos.EventDocumentFailed, document)
		return
	}

	metadata := databasetypes.JSONB{
		"auditFirm":     extraction.AuditFirm,
		"opinion":       extraction.Opinion,
		"periodStart":   extraction.PeriodStart,
		"periodEnd":     extraction.PeriodEnd,
		"trustCriteria": extraction.TrustCriteria,
	}
	extractionJSON, err := databasetypes.JSONBFromStruct(extraction)
	if err != nil {
		slog.Error("could not marshal extraction", "document", document.ID, "err", err)
		return
	}

	now := time.Now()
	document.ParseStatus = string(dtos.ParseCompleted)
	document.ParseError = nil
	document.ParsedAt = &now
	document.Metadata = metadata
	document.Extraction = extractionJSON

	if err := s.documentRepository.Save(nil, &document); err != nil {
		slog.Error("could not persist parse result", "document", document.ID, "err", err)
		return
	}

	s.dispatcher.Dispatch(org, dtos.EventDocumentParsed, document)
	if err := s.notificationService.Notify(org.ID, nil, dtos.NotificationDocumentParsed, "Document parsed", fmt.Sprintf("%s was parsed successfully", document.FileName)); err != nil {
		slog.Error("could not create parse notification", "document", document.ID, "err", err)
	}
}

func (s *DocumentService) extract(ctx context.Context, document models.Document) (dtos.SOC2Extraction, error) {
	data, err := s.objectStorage.Fetch(ctx, document.StorageKey)
	if err != nil {
		return dtos.SOC2Extraction{}, fmt.Errorf("could not fetch document content: %w", err)
	}

	return s.extractor.ExtractSOC2(ctx, string(data))
}
