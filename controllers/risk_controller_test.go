// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type recordingDispatcher struct {
	events []dtos.WebhookEventType
}

func (d *recordingDispatcher) Dispatch(org models.Org, eventType dtos.WebhookEventType, payload any) {
	d.events = append(d.events, eventType)
}

func (d *recordingDispatcher) Deliver(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope) (*http.Response, error) {
	return nil, nil
}

type createRecordingRiskRepository struct {
	shared.RiskRepository
	created *models.Risk
}

func (f *createRecordingRiskRepository) Create(tx shared.DB, risk *models.Risk) error {
	risk.ID = uuid.New()
	f.created = risk
	return nil
}

func TestRiskCreation(t *testing.T) {
	e := echo.New()
	org := models.Org{Name: "Acme Bank", RiskTolerance: 9}
	org.ID = uuid.New()

	t.Run("should persist the risk and dispatch risk.created", func(t *testing.T) {
		repository := &createRecordingRiskRepository{}
		dispatcher := &recordingDispatcher{}
		controller := NewRiskController(repository, dispatcher)

		body := `{"title":"Cloud provider outage","category":"business_continuity","inherentLikelihood":4,"inherentImpact":5,"residualLikelihood":2,"residualImpact":4,"treatment":"mitigate"}`
		req := httptest.NewRequest("POST", "/risks/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		ctx := e.NewContext(req, rec)
		shared.SetOrg(ctx, org)

		require.NoError(t, controller.Create(ctx))
		assert.Equal(t, 200, rec.Code)

		require.NotNil(t, repository.created)
		assert.Equal(t, org.ID, repository.created.OrgID)
		assert.Equal(t, []dtos.WebhookEventType{dtos.EventRiskCreated}, dispatcher.events)

		var dto dtos.RiskDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, 20, dto.InherentScore)
		assert.Equal(t, 8, dto.ResidualScore)
	})

	t.Run("should reject a likelihood outside the 1..5 scale", func(t *testing.T) {
		controller := NewRiskController(&createRecordingRiskRepository{}, &recordingDispatcher{})

		body := `{"title":"Bad risk","category":"supply_chain","inherentLikelihood":7,"inherentImpact":5,"residualLikelihood":2,"residualImpact":4,"treatment":"accept"}`
		req := httptest.NewRequest("POST", "/risks/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		ctx := e.NewContext(req, rec)
		shared.SetOrg(ctx, org)

		err := controller.Create(ctx)
		require.Error(t, err)

		httpErr := &echo.HTTPError{}
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}
