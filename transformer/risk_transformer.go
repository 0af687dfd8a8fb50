// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/utils"
	"github.com/google/uuid"
)

func RiskCreateRequestToModel(c dtos.RiskCreateRequest, orgID uuid.UUID) models.Risk {
	return models.Risk{
		OrgID:              orgID,
		Title:              c.Title,
		Description:        c.Description,
		Category:           c.Category,
		InherentLikelihood: c.InherentLikelihood,
		InherentImpact:     c.InherentImpact,
		ResidualLikelihood: c.ResidualLikelihood,
		ResidualImpact:     c.ResidualImpact,
		Treatment:          c.Treatment,
		Status:             string(dtos.RiskOpen),
		OwnerUserID:        c.OwnerUserID,
		VendorID:           c.VendorID,
		ReviewDate:         c.ReviewDate,
	}
}

func ApplyRiskPatchRequestToModel(p dtos.RiskPatchRequest, risk *models.Risk) bool {
	updated := false

	if p.Title != nil {
		updated = true
		risk.Title = *p.Title
	}

	if p.Description != nil {
		updated = true
		risk.Description = *p.Description
	}

	if p.Category != nil {
		updated = true
		risk.Category = *p.Category
	}

	if p.InherentLikelihood != nil {
		updated = true
		risk.InherentLikelihood = *p.InherentLikelihood
	}

	if p.InherentImpact != nil {
		updated = true
		risk.InherentImpact = *p.InherentImpact
	}

	if p.ResidualLikelihood != nil {
		updated = true
		risk.ResidualLikelihood = *p.ResidualLikelihood
	}

	if p.ResidualImpact != nil {
		updated = true
		risk.ResidualImpact = *p.ResidualImpact
	}

	if p.Treatment != nil {
		updated = true
		risk.Treatment = *p.Treatment
	}

	if p.Status != nil {
		updated = true
		risk.Status = *p.Status
	}

	if p.OwnerUserID != nil {
		updated = true
		risk.OwnerUserID = p.OwnerUserID
	}

	if p.VendorID != nil {
		updated = true
		risk.VendorID = p.VendorID
	}

	if p.ReviewDate != nil {
		updated = true
		risk.ReviewDate = p.ReviewDate
	}

	return updated
}

// RiskDTOFromModel derives the matrix scores, levels and the tolerance
// comparison. The residual score is what gets compared against the org
// tolerance.
func RiskDTOFromModel(risk models.Risk, riskTolerance int) dtos.RiskDTO {
	inherentScore := risk.InherentScore()
	residualScore := risk.ResidualScore()

	return dtos.RiskDTO{
		ID:                 risk.ID,
		CreatedAt:          risk.CreatedAt,
		UpdatedAt:          risk.UpdatedAt,
		Title:              risk.Title,
		Description:        risk.Description,
		Category:           dtos.RiskCategory(risk.Category),
		InherentLikelihood: risk.InherentLikelihood,
		InherentImpact:     risk.InherentImpact,
		InherentScore:      inherentScore,
		InherentLevel:      compliance.LevelForScore(inherentScore),
		ResidualLikelihood: risk.ResidualLikelihood,
		ResidualImpact:     risk.ResidualImpact,
		ResidualScore:      residualScore,
		ResidualLevel:      compliance.LevelForScore(residualScore),
		Treatment:          dtos.TreatmentStrategy(risk.Treatment),
		Status:             dtos.RiskStatus(risk.Status),
		OwnerUserID:        risk.OwnerUserID,
		VendorID:           risk.VendorID,
		ReviewDate:         risk.ReviewDate,

		ToleranceComparison: compliance.CompareTolerance(residualScore, riskTolerance),
	}
}

func HeatMapDTOFromRisks(risks []models.Risk, dim compliance.Dimension, riskTolerance int) dtos.HeatMapDTO {
	points := utils.Map(risks, models.Risk.ToRiskPoint)

	return dtos.HeatMapDTO{
		HeatMap:       compliance.BuildHeatMap(points, dim),
		Markers:       compliance.PositionMarkers(points),
		RiskTolerance: riskTolerance,
	}
}
