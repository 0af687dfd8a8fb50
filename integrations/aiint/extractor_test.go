// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package aiint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	t.Run("valid extraction", func(t *testing.T) {
		raw := []byte(`{
			"auditFirm": "Deloitte & Touche LLP",
			"opinion": "unqualified",
			"periodStart": "2025-01-01",
			"periodEnd": "2025-12-31",
			"trustCriteria": ["security", "availability"],
			"controls": [
				{"controlId": "CC6.1", "tscCategory": "CC6", "description": "Logical access controls restrict access."},
				{"controlId": "A1.2", "tscCategory": "A", "description": "Recovery plans are tested annually."}
			],
			"exceptions": [
				{"controlId": "CC6.1", "description": "One terminated user retained access for 12 days.", "severity": "medium"}
			],
			"subserviceOrgs": [
				{"name": "Amazon Web Services", "serviceType": "cloud hosting", "carveout": true}
			],
			"cuecs": [
				{"id": "CUEC-1", "description": "Customers must configure MFA for their users."}
			]
		}`)

		extraction, err := ParseExtraction(raw)
		require.NoError(t, err)
		assert.Equal(t, "Deloitte & Touche LLP", extraction.AuditFirm)
		assert.Equal(t, "unqualified", extraction.Opinion)
		assert.Len(t, extraction.Controls, 2)
		assert.Equal(t, "CC6", extraction.Controls[0].TSCCategory)
		assert.Len(t, extraction.SubserviceOrgs, 1)
		assert.True(t, extraction.SubserviceOrgs[0].Carveout)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseExtraction([]byte("I could not parse the report, sorry!"))
		assert.Error(t, err)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := ParseExtraction([]byte(`{"auditFirm": "KPMG"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema")
	})

	t.Run("invalid opinion enum", func(t *testing.T) {
		_, err := ParseExtraction([]byte(`{
			"auditFirm": "KPMG",
			"opinion": "glowing",
			"periodStart": "2025-01-01",
			"periodEnd": "2025-12-31",
			"controls": []
		}`))
		assert.Error(t, err)
	})

	t.Run("control without category", func(t *testing.T) {
		_, err := ParseExtraction([]byte(`{
			"auditFirm": "KPMG",
			"opinion": "qualified",
			"periodStart": "2025-01-01",
			"periodEnd": "2025-12-31",
			"controls": [{"controlId": "CC1.1", "description": "x"}]
		}`))
		assert.Error(t, err)
	})
}
