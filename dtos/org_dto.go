// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type NIS2Classification string

const (
	NIS2Essential  NIS2Classification = "essential"
	NIS2Important  NIS2Classification = "important"
	NIS2OutOfScope NIS2Classification = "out_of_scope"
)

type OrgCreateRequest struct {
	Name                   string  `json:"name" validate:"required"`
	LEI                    *string `json:"lei" validate:"omitempty,len=20,alphanum"`
	ContactEmail           *string `json:"contactEmail" validate:"omitempty,email"`
	Country                *string `json:"country"`
	Industry               *string `json:"industry"`
	NumberOfEmployees      *int    `json:"numberOfEmployees"`
	CriticalInfrastructure bool    `json:"criticalInfrastructure"`
	FinancialEntity        bool    `json:"financialEntity"`
	NIS2Classification     string  `json:"nis2Classification" validate:"omitempty,oneof=essential important out_of_scope"`
	Description            string  `json:"description"`
}

type OrgPatchRequest struct {
	Name                   *string `json:"name"`
	LEI                    *string `json:"lei" validate:"omitempty,len=20,alphanum"`
	ContactEmail           *string `json:"contactEmail" validate:"omitempty,email"`
	Country                *string `json:"country"`
	Industry               *string `json:"industry"`
	NumberOfEmployees      *int    `json:"numberOfEmployees"`
	CriticalInfrastructure *bool   `json:"criticalInfrastructure"`
	FinancialEntity        *bool   `json:"financialEntity"`
	NIS2Classification     *string `json:"nis2Classification" validate:"omitempty,oneof=essential important out_of_scope"`
	RiskTolerance          *int    `json:"riskTolerance" validate:"omitempty,min=1,max=25"`
	Description            *string `json:"description"`
}

type OrgDTO struct {
	ID                     uuid.UUID          `json:"id"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`
	Name                   string             `json:"name"`
	Slug                   string             `json:"slug"`
	LEI                    *string            `json:"lei"`
	ContactEmail           *string            `json:"contactEmail"`
	Country                *string            `json:"country"`
	Industry               *string            `json:"industry"`
	NumberOfEmployees      *int               `json:"numberOfEmployees"`
	CriticalInfrastructure bool               `json:"criticalInfrastructure"`
	FinancialEntity        bool               `json:"financialEntity"`
	NIS2Classification     NIS2Classification `json:"nis2Classification"`
	RiskTolerance          int                `json:"riskTolerance"`
	Description            string             `json:"description"`
}

type OrgDetailsDTO struct {
	OrgDTO
	Members []MemberDTO `json:"members"`
}

type MemberDTO struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
