// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package gleifint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doracomply/doracomply/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLEI(t *testing.T) {
	t.Run("valid checksums", func(t *testing.T) {
		assert.NoError(t, ValidateLEI("HWUPKR0MPOU8FGXBT394"))
		assert.NoError(t, ValidateLEI("529900T8BM49AURSDO55"))
	})

	t.Run("wrong length", func(t *testing.T) {
		err := ValidateLEI("HWUPKR0MPOU8FGXBT39")
		require.Error(t, err)
		assert.Equal(t, dtos.ErrCodeValidation, err.(dtos.APIError).Code)
	})

	t.Run("lowercase rejected", func(t *testing.T) {
		assert.Error(t, ValidateLEI("hwupkr0mpou8fgxbt394"))
	})

	t.Run("bad checksum", func(t *testing.T) {
		assert.Error(t, ValidateLEI("HWUPKR0MPOU8FGXBT395"))
	})
}

func TestLookupLEI(t *testing.T) {
	t.Run("parses the lei record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/lei-records/HWUPKR0MPOU8FGXBT394", r.URL.Path)
			w.Header().Set("Content-Type", "application/vnd.api+json")
			w.Write([]byte(`{
				"data": {
					"attributes": {
						"lei": "HWUPKR0MPOU8FGXBT394",
						"entity": {
							"legalName": {"name": "Apple Inc."},
							"jurisdiction": "US-CA",
							"status": "ACTIVE"
						},
						"registration": {
							"status": "ISSUED",
							"nextRenewalDate": "2026-12-12T00:00:00Z"
						}
					}
				}
			}`))
		}))
		defer srv.Close()

		client := &GleifClient{httpClient: srv.Client(), baseURL: srv.URL}

		record, err := client.LookupLEI(context.Background(), "HWUPKR0MPOU8FGXBT394")
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", record.LegalName)
		assert.Equal(t, "US-CA", record.Jurisdiction)
		assert.Equal(t, "ACTIVE", record.Status)
		assert.Equal(t, "ISSUED", record.RegistrationStatus)
		require.NotNil(t, record.NextRenewal)
		assert.Equal(t, 2026, record.NextRenewal.Year())
	})

	t.Run("404 maps to validation error without retrying", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := &GleifClient{httpClient: srv.Client(), baseURL: srv.URL}

		_, err := client.LookupLEI(context.Background(), "HWUPKR0MPOU8FGXBT394")
		require.Error(t, err)
		apiErr, ok := err.(dtos.APIError)
		require.True(t, ok)
		assert.Equal(t, dtos.ErrCodeValidation, apiErr.Code)
		assert.Equal(t, "LEI not found", apiErr.Message)
		assert.Equal(t, 1, calls)
	})

	t.Run("syntax is checked before any request", func(t *testing.T) {
		client := &GleifClient{httpClient: http.DefaultClient, baseURL: "http://127.0.0.1:1"}
		_, err := client.LookupLEI(context.Background(), "NOT-A-LEI")
		assert.Error(t, err)
	})
}
