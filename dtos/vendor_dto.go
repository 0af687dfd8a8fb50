// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type VendorCriticality string

const (
	VendorCriticalityLow      VendorCriticality = "low"
	VendorCriticalityMedium   VendorCriticality = "medium"
	VendorCriticalityHigh     VendorCriticality = "high"
	VendorCriticalityCritical VendorCriticality = "critical"
)

type Substitutability string

const (
	SubstitutabilityEasy       Substitutability = "easy"
	SubstitutabilityDifficult  Substitutability = "difficult"
	SubstitutabilityImpossible Substitutability = "impossible"
)

type VendorCreateRequest struct {
	Name              string   `json:"name" validate:"required"`
	LEI               *string  `json:"lei" validate:"omitempty,len=20,alphanum"`
	Criticality       string   `json:"criticality" validate:"required,oneof=low medium high critical"`
	ServiceCategories []string `json:"serviceCategories"`
	Substitutability  string   `json:"substitutability" validate:"omitempty,oneof=easy difficult impossible"`
	Website           *string  `json:"website" validate:"omitempty,url"`
	ContactEmail      *string  `json:"contactEmail" validate:"omitempty,email"`
}

type VendorPatchRequest struct {
	Name              *string   `json:"name"`
	LEI               *string   `json:"lei" validate:"omitempty,len=20,alphanum"`
	Criticality       *string   `json:"criticality" validate:"omitempty,oneof=low medium high critical"`
	ServiceCategories *[]string `json:"serviceCategories"`
	Substitutability  *string   `json:"substitutability" validate:"omitempty,oneof=easy difficult impossible"`
	Website           *string   `json:"website" validate:"omitempty,url"`
	ContactEmail      *string   `json:"contactEmail" validate:"omitempty,email"`
}

type VendorDTO struct {
	ID                uuid.UUID         `json:"id"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	LEI               *string           `json:"lei"`
	LegalName         *string           `json:"legalName"`
	Jurisdiction      *string           `json:"jurisdiction"`
	GleifStatus       *string           `json:"gleifStatus"`
	LastGleifSync     *time.Time        `json:"lastGleifSync"`
	Criticality       VendorCriticality `json:"criticality"`
	ServiceCategories []string          `json:"serviceCategories"`
	Substitutability  Substitutability  `json:"substitutability"`
	Website           *string           `json:"website"`
	ContactEmail      *string           `json:"contactEmail"`
}

type VendorDetailsDTO struct {
	VendorDTO
	Contracts []ContractDTO `json:"contracts"`
	OpenRisks int           `json:"openRisks"`
}
