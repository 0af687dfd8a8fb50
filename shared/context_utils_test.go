// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, target string) Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetFilterQuery(t *testing.T) {
	ctx := queryContext(t, "/?filterQuery[criticality][is]=critical&filterQuery[name][like]=cloud&page=2")

	filter := GetFilterQuery(ctx)
	require.Len(t, filter, 2)

	// query param iteration order is not stable
	byField := map[string]FilterQuery{}
	for _, f := range filter {
		byField[f.field] = f
	}

	criticality := byField["criticality"]
	assert.Equal(t, `"criticality" = ?`, criticality.SQL())
	assert.Equal(t, "critical", criticality.Value())

	name := byField["name"]
	assert.Equal(t, `"name" LIKE ?`, name.SQL())
	assert.Equal(t, "%cloud%", name.Value())
}

func TestGetSortQuery(t *testing.T) {
	ctx := queryContext(t, "/?sort[expiry_date]=desc")

	sort := GetSortQuery(ctx)
	require.Len(t, sort, 1)
	assert.Equal(t, `"expiry_date" desc NULLS LAST`, sort[0].SQL())
}
