// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type fakeRiskRepository struct {
	shared.RiskRepository
	open    []models.Risk
	overdue int64
}

func (f fakeRiskRepository) GetOpenByOrgID(orgID uuid.UUID) ([]models.Risk, error) {
	return f.open, nil
}

func (f fakeRiskRepository) CountReviewOverdue(orgID uuid.UUID, now time.Time) (int64, error) {
	return f.overdue, nil
}

type fakeContractRepository struct {
	shared.ContractRepository
	contracts []models.Contract
}

func (f fakeContractRepository) GetByOrgID(orgID uuid.UUID) ([]models.Contract, error) {
	return f.contracts, nil
}

func dashboardContext(e *echo.Echo, rec *httptest.ResponseRecorder, org models.Org) shared.Context {
	req := httptest.NewRequest("GET", "/", nil)
	ctx := e.NewContext(req, rec)
	shared.SetOrg(ctx, org)
	return ctx
}

func TestOpenRisksWidget(t *testing.T) {
	e := echo.New()
	org := models.Org{Name: "Acme Bank", RiskTolerance: 9}

	risks := []models.Risk{
		{Status: "open", ResidualLikelihood: 1, ResidualImpact: 2},
		{Status: "open", ResidualLikelihood: 4, ResidualImpact: 4},
		{Status: "in_progress", ResidualLikelihood: 2, ResidualImpact: 3},
	}

	controller := NewDashboardController(
		fakeContractRepository{},
		nil,
		fakeRiskRepository{open: risks, overdue: 1},
		nil,
	)

	rec := httptest.NewRecorder()
	err := controller.OpenRisks(dashboardContext(e, rec, org))

	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)

	var widget dtos.OpenRisksWidgetDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &widget))

	assert.Equal(t, 2, widget.Open)
	assert.Equal(t, 1, widget.InProgress)
	// only the 4x4 risk exceeds a tolerance of 9
	assert.Equal(t, 1, widget.AboveTolerance)
	assert.Equal(t, 1, widget.ReviewOverdue)
	assert.Equal(t, 1, widget.ByLevel["low"])
	assert.Equal(t, 1, widget.ByLevel["medium"])
	assert.Equal(t, 1, widget.ByLevel["critical"])
}

func TestContractExpiryWidget(t *testing.T) {
	e := echo.New()
	org := models.Org{Name: "Acme Bank"}

	now := time.Now()
	expired := now.Add(-24 * time.Hour)
	soon := now.Add(30 * 24 * time.Hour)
	far := now.Add(365 * 24 * time.Hour)

	contracts := []models.Contract{
		{ContractRef: "c-expired", ExpiryDate: &expired},
		{ContractRef: "c-soon", ExpiryDate: &soon},
		{ContractRef: "c-far", ExpiryDate: &far},
		{ContractRef: "c-evergreen"},
	}

	controller := NewDashboardController(
		fakeContractRepository{contracts: contracts},
		nil,
		fakeRiskRepository{},
		nil,
	)

	rec := httptest.NewRecorder()
	err := controller.ContractExpiry(dashboardContext(e, rec, org))

	require.NoError(t, err)

	var widget dtos.ContractExpiryWidgetDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &widget))

	assert.Equal(t, 1, widget.Expired)
	assert.Equal(t, 1, widget.ExpiringSoon)
	assert.Equal(t, 2, widget.Active)

	require.Len(t, widget.NextToExpire, 2)
	assert.Equal(t, "c-soon", widget.NextToExpire[0].ContractRef)
	assert.Equal(t, "c-far", widget.NextToExpire[1].ContractRef)
}
