// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractActive       ContractStatus = "active"
	ContractExpiringSoon ContractStatus = "expiring_soon"
	ContractExpired      ContractStatus = "expired"
)

type ContractCreateRequest struct {
	VendorID         uuid.UUID                  `json:"vendorId" validate:"required"`
	ContractRef      string                     `json:"contractRef" validate:"required"`
	Title            string                     `json:"title" validate:"required"`
	StartDate        time.Time                  `json:"startDate" validate:"required"`
	ExpiryDate       *time.Time                 `json:"expiryDate"`
	NoticePeriodDays *int                       `json:"noticePeriodDays" validate:"omitempty,min=0"`
	AnnualValue      *float64                   `json:"annualValue" validate:"omitempty,min=0"`
	Currency         *string                    `json:"currency" validate:"omitempty,len=3"`
	Provisions       []compliance.ChecklistItem `json:"provisions" validate:"max=16,dive"`
}

type ContractPatchRequest struct {
	Title            *string                     `json:"title"`
	StartDate        *time.Time                  `json:"startDate"`
	ExpiryDate       *time.Time                  `json:"expiryDate"`
	NoticePeriodDays *int                        `json:"noticePeriodDays" validate:"omitempty,min=0"`
	AnnualValue      *float64                    `json:"annualValue" validate:"omitempty,min=0"`
	Currency         *string                     `json:"currency" validate:"omitempty,len=3"`
	Provisions       *[]compliance.ChecklistItem `json:"provisions" validate:"omitempty,max=16,dive"`
}

type ContractDTO struct {
	ID               uuid.UUID                  `json:"id"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
	VendorID         uuid.UUID                  `json:"vendorId"`
	ContractRef      string                     `json:"contractRef"`
	Title            string                     `json:"title"`
	StartDate        time.Time                  `json:"startDate"`
	ExpiryDate       *time.Time                 `json:"expiryDate"`
	NoticePeriodDays *int                       `json:"noticePeriodDays"`
	AnnualValue      *float64                   `json:"annualValue"`
	Currency         *string                    `json:"currency"`
	Status           ContractStatus             `json:"status"`
	Provisions       []compliance.ChecklistItem `json:"provisions"`
	ComplianceScore  float64                    `json:"complianceScore"`
}

// ContractComplianceDTO is the per-provision coverage breakdown of a single
// contract.
type ContractComplianceDTO struct {
	ContractRef string                     `json:"contractRef"`
	Score       float64                    `json:"score"`
	Tier        compliance.Tier            `json:"tier"`
	Provisions  []compliance.ChecklistItem `json:"provisions"`
	Missing     []compliance.ChecklistItem `json:"missing"`
	Partial     []compliance.ChecklistItem `json:"partial"`
}
