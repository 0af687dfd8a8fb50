// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

import "time"

type GleifValidateRequest struct {
	LEI string `json:"lei" validate:"required,len=20,alphanum"`
}

// GleifRecordDTO is the subset of a GLEIF LEI record the platform keeps.
type GleifRecordDTO struct {
	LEI                string     `json:"lei"`
	LegalName          string     `json:"legalName"`
	Jurisdiction       string     `json:"jurisdiction"`
	Status             string     `json:"status"`
	RegistrationStatus string     `json:"registrationStatus"`
	NextRenewal        *time.Time `json:"nextRenewal"`
}
