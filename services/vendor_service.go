// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
)

type VendorService struct {
	vendorRepository shared.VendorRepository
	gleifClient      shared.GleifClient
}

func NewVendorService(vendorRepository shared.VendorRepository, gleifClient shared.GleifClient) *VendorService {
	return &VendorService{
		vendorRepository: vendorRepository,
		gleifClient:      gleifClient,
	}
}

func (s *VendorService) CreateVendor(ctx shared.Context, vendor *models.Vendor) error {
	if vendor.Name == "" || vendor.Slug == "" {
		return fmt.Errorf("vendors with an empty name or an empty slug are not allowed")
	}

	return s.vendorRepository.Create(nil, vendor)
}

// SyncGleif enriches the vendor from the GLEIF registry and persists the
// result. Vendors without an LEI cannot be synced.
func (s *VendorService) SyncGleif(ctx context.Context, vendor *models.Vendor) error {
	if vendor.LEI == nil {
		return fmt.Errorf("vendor has no LEI to sync")
	}

	record, err := s.gleifClient.LookupLEI(ctx, *vendor.LEI)
	if err != nil {
		return err
	}

	now := time.Now()
	vendor.LegalName = &record.LegalName
	vendor.Jurisdiction = &record.Jurisdiction
	vendor.GleifStatus = &record.Status
	vendor.LastGleifSync = &now

	return s.vendorRepository.Update(nil, vendor)
}
