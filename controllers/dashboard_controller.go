// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/compliance"
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
	"github.com/doracomply/doracomply/transformer"
	"github.com/doracomply/doracomply/utils"
)

type DashboardController struct {
	contractRepository    shared.ContractRepository
	vendorRepository      shared.VendorRepository
	riskRepository        shared.RiskRepository
	riskHistoryRepository shared.OrgRiskHistoryRepository
}

func NewDashboardController(contractRepository shared.ContractRepository, vendorRepository shared.VendorRepository, riskRepository shared.RiskRepository, riskHistoryRepository shared.OrgRiskHistoryRepository) *DashboardController {
	return &DashboardController{
		contractRepository:    contractRepository,
		vendorRepository:      vendorRepository,
		riskRepository:        riskRepository,
		riskHistoryRepository: riskHistoryRepository,
	}
}

// ContractExpiry counts contracts per lifecycle state and lists the five
// contracts closest to their expiry date.
func (controller *DashboardController) ContractExpiry(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	contracts, err := controller.contractRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list contracts").WithInternal(err)
	}

	now := time.Now()
	widget := dtos.ContractExpiryWidgetDTO{
		NextToExpire: []dtos.ContractDTO{},
	}

	expiring := make([]models.Contract, 0, len(contracts))
	for _, contract := range contracts {
		switch contract.Status(now) {
		case dtos.ContractExpired:
			widget.Expired++
		case dtos.ContractExpiringSoon:
			widget.ExpiringSoon++
			expiring = append(expiring, contract)
		default:
			widget.Active++
			if contract.ExpiryDate != nil {
				expiring = append(expiring, contract)
			}
		}
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].ExpiryDate.Before(*expiring[j].ExpiryDate)
	})
	if len(expiring) > 5 {
		expiring = expiring[:5]
	}
	widget.NextToExpire = utils.Map(expiring, func(c models.Contract) dtos.ContractDTO {
		return transformer.ContractDTOFromModel(c, now)
	})

	return ctx.JSON(200, widget)
}

// VendorCriticality breaks the vendor inventory down by criticality tier.
func (controller *DashboardController) VendorCriticality(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	vendors, err := controller.vendorRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list vendors").WithInternal(err)
	}

	counts := map[dtos.VendorCriticality]int{
		dtos.VendorCriticalityLow:      0,
		dtos.VendorCriticalityMedium:   0,
		dtos.VendorCriticalityHigh:     0,
		dtos.VendorCriticalityCritical: 0,
	}
	for _, vendor := range vendors {
		counts[dtos.VendorCriticality(vendor.Criticality)]++
	}

	return ctx.JSON(200, dtos.VendorCriticalityWidgetDTO{
		Counts: counts,
		Total:  len(vendors),
	})
}

// ComplianceCoverage aggregates the provision checklists of all contracts and
// surfaces the five worst performing ones.
func (controller *DashboardController) ComplianceCoverage(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	contracts, err := controller.contractRepository.GetByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list contracts").WithInternal(err)
	}

	byTier := map[compliance.Tier]int{
		compliance.TierCompliant:      0,
		compliance.TierNeedsAttention: 0,
		compliance.TierNonCompliant:   0,
	}

	var sum float64
	for _, contract := range contracts {
		score := contract.ComplianceScore()
		sum += score
		byTier[compliance.TierForScore(score)]++
	}

	average := 0.0
	if len(contracts) > 0 {
		average = sum / float64(len(contracts))
	}

	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].ComplianceScore() < contracts[j].ComplianceScore()
	})
	worst := contracts
	if len(worst) > 5 {
		worst = worst[:5]
	}

	return ctx.JSON(200, dtos.ComplianceCoverageWidgetDTO{
		AverageScore: average,
		Tier:         compliance.TierForScore(average),
		ByTier:       byTier,
		WorstFive:    utils.Map(worst, transformer.ContractComplianceDTOFromModel),
	})
}

// OpenRisks summarizes the open part of the risk register against the
// tolerance of the organization.
func (controller *DashboardController) OpenRisks(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	risks, err := controller.riskRepository.GetOpenByOrgID(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list risks").WithInternal(err)
	}

	now := time.Now()
	overdue, err := controller.riskRepository.CountReviewOverdue(org.ID, now)
	if err != nil {
		return echo.NewHTTPError(500, "could not count overdue reviews").WithInternal(err)
	}

	widget := dtos.OpenRisksWidgetDTO{
		ByLevel: map[compliance.Level]int{
			compliance.LevelLow:      0,
			compliance.LevelMedium:   0,
			compliance.LevelHigh:     0,
			compliance.LevelCritical: 0,
		},
		ReviewOverdue: int(overdue),
	}

	for _, risk := range risks {
		switch dtos.RiskStatus(risk.Status) {
		case dtos.RiskOpen:
			widget.Open++
		case dtos.RiskInProgress:
			widget.InProgress++
		}

		score := risk.ResidualScore()
		widget.ByLevel[compliance.LevelForScore(score)]++
		if compliance.CompareTolerance(score, org.RiskTolerance) == compliance.ToleranceAbove {
			widget.AboveTolerance++
		}
	}

	return ctx.JSON(200, widget)
}

// RiskHistory returns the snapshot series of the last 30 days.
func (controller *DashboardController) RiskHistory(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	end := time.Now()
	start := end.AddDate(0, 0, -30)

	history, err := controller.riskHistoryRepository.GetHistory(org.ID, start, end)
	if err != nil {
		return echo.NewHTTPError(500, "could not load risk history").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(history, func(h models.OrgRiskHistory) dtos.RiskHistoryPointDTO {
		return dtos.RiskHistoryPointDTO{
			Time:     h.Time,
			Low:      h.Low,
			Medium:   h.Medium,
			High:     h.High,
			Critical: h.Critical,
		}
	}))
}
