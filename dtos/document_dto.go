// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type DocumentKind string

const (
	DocumentSOC2Report    DocumentKind = "soc2_report"
	DocumentContract      DocumentKind = "contract"
	DocumentQuestionnaire DocumentKind = "questionnaire"
	DocumentOther         DocumentKind = "other"
)

type ParseStatus string

const (
	ParsePending    ParseStatus = "pending"
	ParseProcessing ParseStatus = "processing"
	ParseCompleted  ParseStatus = "completed"
	ParseFailed     ParseStatus = "failed"
)

type DocumentCreateRequest struct {
	VendorID    *uuid.UUID `json:"vendorId"`
	FileName    string     `json:"fileName" validate:"required"`
	StorageKey  string     `json:"storageKey"`
	ContentType string     `json:"contentType" validate:"required"`
	Kind        string     `json:"kind" validate:"required,oneof=soc2_report contract questionnaire other"`
}

type DocumentDTO struct {
	ID          uuid.UUID      `json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	VendorID    *uuid.UUID     `json:"vendorId"`
	FileName    string         `json:"fileName"`
	StorageKey  string         `json:"storageKey"`
	ContentType string         `json:"contentType"`
	Kind        DocumentKind   `json:"kind"`
	ParseStatus ParseStatus    `json:"parseStatus"`
	ParseError  *string        `json:"parseError"`
	ParsedAt    *time.Time     `json:"parsedAt"`
	Metadata    map[string]any `json:"metadata"`
}

// SOC2Extraction is the structured result of parsing a SOC 2 report. Matches
// the schema the extraction output is validated against.
type SOC2Extraction struct {
	AuditFirm      string              `json:"auditFirm"`
	Opinion        string              `json:"opinion"`
	PeriodStart    string              `json:"periodStart"`
	PeriodEnd      string              `json:"periodEnd"`
	TrustCriteria  []string            `json:"trustCriteria"`
	Controls       []ExtractedControl  `json:"controls"`
	Exceptions     []ExtractedFinding  `json:"exceptions"`
	SubserviceOrgs []SubserviceOrg     `json:"subserviceOrgs"`
	CUECs          []ComplementaryUEC  `json:"cuecs"`
}

type ExtractedControl struct {
	ControlID   string `json:"controlId"`
	TSCCategory string `json:"tscCategory"`
	Description string `json:"description"`
}

type ExtractedFinding struct {
	ControlID   string `json:"controlId"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type SubserviceOrg struct {
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
	Carveout    bool   `json:"carveout"`
}

// ComplementaryUEC is a complementary user entity control the report expects
// the customer to operate.
type ComplementaryUEC struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
