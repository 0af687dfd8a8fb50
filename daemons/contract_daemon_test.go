// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package daemons

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type fakeContractRepository struct {
	shared.ContractRepository
	contracts []models.Contract
}

func (f fakeContractRepository) GetExpiringBefore(deadline time.Time) ([]models.Contract, error) {
	return f.contracts, nil
}

type fakeOrganizationRepository struct {
	shared.OrganizationRepository
	org models.Org
}

func (f fakeOrganizationRepository) GetOrgByID(id uuid.UUID) (models.Org, error) {
	return f.org, nil
}

type recordingDispatcher struct {
	events []dtos.WebhookEventType
}

func (d *recordingDispatcher) Dispatch(org models.Org, eventType dtos.WebhookEventType, payload any) {
	d.events = append(d.events, eventType)
}

func (d *recordingDispatcher) Deliver(integration models.WebhookIntegration, envelope dtos.WebhookEnvelope) (*http.Response, error) {
	return nil, nil
}

type recordingNotificationService struct {
	titles []string
}

func (s *recordingNotificationService) Notify(orgID uuid.UUID, userID *string, notificationType dtos.NotificationType, title, body string) error {
	s.titles = append(s.titles, title)
	return nil
}

func TestCheckContractStatus(t *testing.T) {
	org := models.Org{Name: "Acme Bank", Slug: "acme-bank"}
	org.ID = uuid.New()

	now := time.Now()
	lastRun := now.Add(-24 * time.Hour)

	newRunner := func(contracts []models.Contract) (*DaemonRunner, *recordingDispatcher, *recordingNotificationService) {
		dispatcher := &recordingDispatcher{}
		notifications := &recordingNotificationService{}
		runner := &DaemonRunner{
			contractRepository:     fakeContractRepository{contracts: contracts},
			organizationRepository: fakeOrganizationRepository{org: org},
			dispatcher:             dispatcher,
			notificationService:    notifications,
		}
		return runner, dispatcher, notifications
	}

	t.Run("should fire contract.expired when the expiry date passed since the last run", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		contract := models.Contract{OrgID: org.ID, ContractRef: "msa-1", Title: "MSA", ExpiryDate: &expiry}

		runner, dispatcher, notifications := newRunner([]models.Contract{contract})

		require.NoError(t, runner.CheckContractStatus(lastRun))
		assert.Equal(t, []dtos.WebhookEventType{dtos.EventContractExpired}, dispatcher.events)
		assert.Equal(t, []string{"Contract expired"}, notifications.titles)
	})

	t.Run("should fire contract.expiring when the contract entered the expiring window", func(t *testing.T) {
		// the expiring boundary (expiry - 90 days) lies a few hours in the past
		expiry := now.Add(models.ExpiringSoonWindow - 2*time.Hour)
		contract := models.Contract{OrgID: org.ID, ContractRef: "msa-2", Title: "MSA", ExpiryDate: &expiry}

		runner, dispatcher, notifications := newRunner([]models.Contract{contract})

		require.NoError(t, runner.CheckContractStatus(lastRun))
		assert.Equal(t, []dtos.WebhookEventType{dtos.EventContractExpiring}, dispatcher.events)
		assert.Equal(t, []string{"Contract expiring soon"}, notifications.titles)
	})

	t.Run("should not fire twice for a boundary crossed before the last run", func(t *testing.T) {
		// expired two days ago, already handled by the previous run
		expiry := now.Add(-48 * time.Hour)
		contract := models.Contract{OrgID: org.ID, ContractRef: "msa-3", Title: "MSA", ExpiryDate: &expiry}

		runner, dispatcher, notifications := newRunner([]models.Contract{contract})

		require.NoError(t, runner.CheckContractStatus(lastRun))
		assert.Empty(t, dispatcher.events)
		assert.Empty(t, notifications.titles)
	})
}
