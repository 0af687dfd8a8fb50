// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/doracomply/doracomply/shared"
)

// VendorMiddleware resolves the :vendorSlug path parameter within the already
// bound organization and sets the vendor on the request context.
func VendorMiddleware(vendorRepository shared.VendorRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			vendorSlug, err := shared.GetVendorSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid vendor slug")
			}

			org := shared.GetOrg(ctx)
			vendor, err := vendorRepository.ReadBySlug(org.ID, vendorSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find vendor").WithInternal(err)
			}

			shared.SetVendor(ctx, vendor)
			return next(ctx)
		}
	}
}
