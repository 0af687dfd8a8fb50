// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

// httpError maps domain errors onto HTTP status codes. Duplicate LEIs and
// contract refs answer 409, unknown rows 404, everything else passes through
// to the central error handler.
func httpError(err error) error {
	var apiErr dtos.APIError
	if errors.As(err, &apiErr) {
		code := 500
		switch apiErr.Code {
		case dtos.ErrCodeValidation:
			code = 400
		case dtos.ErrCodeNotFound:
			code = 404
		case dtos.ErrCodeUnauthorized:
			code = 401
		case dtos.ErrCodeDuplicateLEI, dtos.ErrCodeDuplicateRef:
			code = 409
		}
		return echo.NewHTTPError(code, apiErr)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	}
	return err
}

// FetchMembersOfOrganization lists every member of the org bound to the
// request, with their most powerful role.
func FetchMembersOfOrganization(ctx shared.Context) ([]dtos.MemberDTO, error) {
	rbac := shared.GetRBAC(ctx)

	members, err := rbac.GetAllMembersOfOrganization()
	if err != nil {
		return nil, err
	}

	result := make([]dtos.MemberDTO, 0, len(members))
	for _, member := range members {
		role, err := rbac.GetDomainRole(member)
		if err != nil {
			role = shared.RoleMember
		}
		result = append(result, dtos.MemberDTO{
			ID:   member,
			Role: string(role),
		})
	}
	return result, nil
}
