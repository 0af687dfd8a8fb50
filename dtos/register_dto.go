// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/google/uuid"
)

type DataSensitivity string

const (
	DataSensitivityLow    DataSensitivity = "low"
	DataSensitivityMedium DataSensitivity = "medium"
	DataSensitivityHigh   DataSensitivity = "high"
)

type RegisterSource string

const (
	RegisterSourceManual     RegisterSource = "manual"
	RegisterSourceSOC2Import RegisterSource = "soc2_import"
)

type RegisterEntryCreateRequest struct {
	VendorID           uuid.UUID  `json:"vendorId" validate:"required"`
	ContractID         *uuid.UUID `json:"contractId"`
	FunctionName       string     `json:"functionName" validate:"required"`
	CriticalFunction   bool       `json:"criticalFunction"`
	DataSensitivity    string     `json:"dataSensitivity" validate:"required,oneof=low medium high"`
	ServiceType        string     `json:"serviceType" validate:"required"`
	CountryOfProvision string     `json:"countryOfProvision" validate:"required,len=2"`
	SubcontractorChain []string   `json:"subcontractorChain"`
}

type RegisterEntryDTO struct {
	ID                 uuid.UUID       `json:"id"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	VendorID           uuid.UUID       `json:"vendorId"`
	VendorName         string          `json:"vendorName"`
	ContractID         *uuid.UUID      `json:"contractId"`
	FunctionName       string          `json:"functionName"`
	CriticalFunction   bool            `json:"criticalFunction"`
	DataSensitivity    DataSensitivity `json:"dataSensitivity"`
	ServiceType        string          `json:"serviceType"`
	CountryOfProvision string          `json:"countryOfProvision"`
	SubcontractorChain []string        `json:"subcontractorChain"`
	Source             RegisterSource  `json:"source"`
}

type PopulateFromSOC2Request struct {
	DocumentID uuid.UUID  `json:"documentId" validate:"required"`
	VendorID   *uuid.UUID `json:"vendorId"`
}

type PopulateFromSOC2Response struct {
	CreatedEntries []RegisterEntryDTO        `json:"createdEntries"`
	Coverage       compliance.CoverageResult `json:"coverage"`
	Gaps           []compliance.Gap          `json:"gaps"`
}
