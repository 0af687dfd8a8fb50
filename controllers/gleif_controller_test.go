// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doracomply/doracomply/dtos"
)

type fakeGleifClient struct {
	record dtos.GleifRecordDTO
	err    error
}

func (f fakeGleifClient) LookupLEI(ctx context.Context, lei string) (dtos.GleifRecordDTO, error) {
	return f.record, f.err
}

func TestGleifValidate(t *testing.T) {
	e := echo.New()

	t.Run("should return the record for a known LEI", func(t *testing.T) {
		controller := NewGleifController(fakeGleifClient{
			record: dtos.GleifRecordDTO{
				LEI:       "HWUPKR0MPOU8FGXBT394",
				LegalName: "Apple Inc.",
			},
		})

		req := httptest.NewRequest("POST", "/gleif/validate/", strings.NewReader(`{"lei":"HWUPKR0MPOU8FGXBT394"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := controller.Validate(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var record dtos.GleifRecordDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
		assert.Equal(t, "Apple Inc.", record.LegalName)
	})

	t.Run("should reject an LEI with the wrong length", func(t *testing.T) {
		controller := NewGleifController(fakeGleifClient{})

		req := httptest.NewRequest("POST", "/gleif/validate/", strings.NewReader(`{"lei":"TOOSHORT"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := controller.Validate(e.NewContext(req, rec))

		require.Error(t, err)
		httpErr := &echo.HTTPError{}
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should map an unknown LEI to a 400", func(t *testing.T) {
		controller := NewGleifController(fakeGleifClient{
			err: dtos.NewAPIError(dtos.ErrCodeValidation, "LEI not found"),
		})

		req := httptest.NewRequest("POST", "/gleif/validate/", strings.NewReader(`{"lei":"HWUPKR0MPOU8FGXBT394"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := controller.Validate(e.NewContext(req, rec))

		require.Error(t, err)
		httpErr := &echo.HTTPError{}
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}
