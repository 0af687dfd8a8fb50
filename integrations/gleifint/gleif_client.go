// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package gleifint talks to the public GLEIF registry to validate and enrich
// legal entity identifiers.
package gleifint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/doracomply/doracomply/common"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/monitoring"
)

const defaultBaseURL = "https://api.gleif.org"

type GleifClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGleifClient() *GleifClient {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	// GLEIF records change rarely, a day of caching is safe
	common.WrapHTTPClient(client, common.NewCacheTransport(1024, 24*time.Hour).Handler())

	return &GleifClient{
		httpClient: client,
		baseURL:    defaultBaseURL,
	}
}

// ValidateLEI checks the ISO 17442 syntax of an LEI: 20 alphanumeric
// characters with a mod 97-10 checksum over the full string.
func ValidateLEI(lei string) error {
	if len(lei) != 20 {
		return dtos.NewAPIError(dtos.ErrCodeValidation, "LEI must be exactly 20 characters")
	}

	// mod 97 over the digit expansion, A=10 .. Z=35
	remainder := 0
	for _, r := range lei {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
			remainder = (remainder*10 + v) % 97
		case r >= 'A' && r <= 'Z':
			v = int(r-'A') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return dtos.NewAPIError(dtos.ErrCodeValidation, "LEI must be uppercase alphanumeric")
		}
	}

	if remainder != 1 {
		return dtos.NewAPIError(dtos.ErrCodeValidation, "LEI checksum is invalid")
	}
	return nil
}

// leiRecordResponse mirrors the JSON:API shape of the GLEIF lei-records
// endpoint, reduced to the fields we keep.
type leiRecordResponse struct {
	Data struct {
		Attributes struct {
			LEI    string `json:"lei"`
			Entity struct {
				LegalName struct {
					Name string `json:"name"`
				} `json:"legalName"`
				Jurisdiction string `json:"jurisdiction"`
				Status       string `json:"status"`
			} `json:"entity"`
			Registration struct {
				Status          string `json:"status"`
				NextRenewalDate string `json:"nextRenewalDate"`
			} `json:"registration"`
		} `json:"attributes"`
	} `json:"data"`
}

func (c *GleifClient) LookupLEI(ctx context.Context, lei string) (dtos.GleifRecordDTO, error) {
	if err := ValidateLEI(lei); err != nil {
		return dtos.GleifRecordDTO{}, err
	}

	monitoring.GleifLookupAmount.Inc()

	var record dtos.GleifRecordDTO
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/api/v1/lei-records/%s", c.baseURL, lei), nil)
		if err != nil {
			return retry.Unrecoverable(err)
		}
		req.Header.Set("Accept", "application/vnd.api+json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return retry.Unrecoverable(dtos.NewAPIError(dtos.ErrCodeValidation, "LEI not found"))
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("gleif lookup failed, status: %s, body: %s", resp.Status, body)
		}

		var parsed leiRecordResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return retry.Unrecoverable(fmt.Errorf("could not decode gleif response: %w", err))
		}

		record = dtos.GleifRecordDTO{
			LEI:                parsed.Data.Attributes.LEI,
			LegalName:          parsed.Data.Attributes.Entity.LegalName.Name,
			Jurisdiction:       parsed.Data.Attributes.Entity.Jurisdiction,
			Status:             parsed.Data.Attributes.Entity.Status,
			RegistrationStatus: parsed.Data.Attributes.Registration.Status,
			NextRenewal:        parseRenewalDate(parsed.Data.Attributes.Registration.NextRenewalDate),
		}
		return nil
	}, retry.Attempts(3), retry.Delay(1*time.Second), retry.DelayType(retry.BackOffDelay), retry.Context(ctx), retry.LastErrorOnly(true))

	if err != nil {
		monitoring.GleifLookupFailedAmount.Inc()
		var apiErr dtos.APIError
		if errors.As(err, &apiErr) {
			return dtos.GleifRecordDTO{}, apiErr
		}
		return dtos.GleifRecordDTO{}, err
	}

	return record, nil
}

func parseRenewalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
