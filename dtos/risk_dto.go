// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import (
	"time"

	"github.com/doracomply/doracomply/compliance"
	"github.com/google/uuid"
)

type RiskCategory string

// The nine NIS2 Article 21 measure categories.
const (
	RiskCategoryPoliciesRiskAnalysis RiskCategory = "policies_risk_analysis"
	RiskCategoryIncidentHandling     RiskCategory = "incident_handling"
	RiskCategoryBusinessContinuity   RiskCategory = "business_continuity"
	RiskCategorySupplyChain          RiskCategory = "supply_chain"
	RiskCategoryAcquisitionSecurity  RiskCategory = "acquisition_security"
	RiskCategoryEffectiveness        RiskCategory = "effectiveness_assessment"
	RiskCategoryCyberHygiene         RiskCategory = "cyber_hygiene"
	RiskCategoryCryptography         RiskCategory = "cryptography"
	RiskCategoryAccessControl        RiskCategory = "access_control_asset_mgmt"
)

type TreatmentStrategy string

const (
	TreatmentMitigate TreatmentStrategy = "mitigate"
	TreatmentAccept   TreatmentStrategy = "accept"
	TreatmentTransfer TreatmentStrategy = "transfer"
	TreatmentAvoid    TreatmentStrategy = "avoid"
)

type RiskStatus string

const (
	RiskOpen       RiskStatus = "open"
	RiskInProgress RiskStatus = "in_progress"
	RiskClosed     RiskStatus = "closed"
	RiskAccepted   RiskStatus = "accepted"
)

type RiskCreateRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	Category           string     `json:"category" validate:"required,oneof=policies_risk_analysis incident_handling business_continuity supply_chain acquisition_security effectiveness_assessment cyber_hygiene cryptography access_control_asset_mgmt"`
	InherentLikelihood int        `json:"inherentLikelihood" validate:"required,min=1,max=5"`
	InherentImpact     int        `json:"inherentImpact" validate:"required,min=1,max=5"`
	ResidualLikelihood int        `json:"residualLikelihood" validate:"required,min=1,max=5"`
	ResidualImpact     int        `json:"residualImpact" validate:"required,min=1,max=5"`
	Treatment          string     `json:"treatment" validate:"required,oneof=mitigate accept transfer avoid"`
	OwnerUserID        *string    `json:"ownerUserId"`
	VendorID           *uuid.UUID `json:"vendorId"`
	ReviewDate         *time.Time `json:"reviewDate"`
}

type RiskPatchRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Category           *string    `json:"category" validate:"omitempty,oneof=policies_risk_analysis incident_handling business_continuity supply_chain acquisition_security effectiveness_assessment cyber_hygiene cryptography access_control_asset_mgmt"`
	InherentLikelihood *int       `json:"inherentLikelihood" validate:"omitempty,min=1,max=5"`
	InherentImpact     *int       `json:"inherentImpact" validate:"omitempty,min=1,max=5"`
	ResidualLikelihood *int       `json:"residualLikelihood" validate:"omitempty,min=1,max=5"`
	ResidualImpact     *int       `json:"residualImpact" validate:"omitempty,min=1,max=5"`
	Treatment          *string    `json:"treatment" validate:"omitempty,oneof=mitigate accept transfer avoid"`
	Status             *string    `json:"status" validate:"omitempty,oneof=open in_progress closed accepted"`
	OwnerUserID        *string    `json:"ownerUserId"`
	VendorID           *uuid.UUID `json:"vendorId"`
	ReviewDate         *time.Time `json:"reviewDate"`
}

type RiskDTO struct {
	ID                 uuid.UUID         `json:"id"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Category           RiskCategory      `json:"category"`
	InherentLikelihood int               `json:"inherentLikelihood"`
	InherentImpact     int               `json:"inherentImpact"`
	InherentScore      int               `json:"inherentScore"`
	InherentLevel      compliance.Level  `json:"inherentLevel"`
	ResidualLikelihood int               `json:"residualLikelihood"`
	ResidualImpact     int               `json:"residualImpact"`
	ResidualScore      int               `json:"residualScore"`
	ResidualLevel      compliance.Level  `json:"residualLevel"`
	Treatment          TreatmentStrategy `json:"treatment"`
	Status             RiskStatus        `json:"status"`
	OwnerUserID        *string           `json:"ownerUserId"`
	VendorID           *uuid.UUID        `json:"vendorId"`
	ReviewDate         *time.Time        `json:"reviewDate"`

	ToleranceComparison compliance.ToleranceComparison `json:"toleranceComparison"`
}

// HeatMapDTO is the heat-map widget response: the grid plus the arrows from
// inherent to residual positions and the org tolerance line.
type HeatMapDTO struct {
	compliance.HeatMap
	Markers       []compliance.PositionMarker `json:"markers"`
	RiskTolerance int                         `json:"riskTolerance"`
}
