// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

// Error codes used in API error bodies. Clients branch on the code, the
// message is for humans.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeDatabase     = "DATABASE_ERROR"
	ErrCodeDuplicateLEI = "DUPLICATE_LEI"
	ErrCodeDuplicateRef = "DUPLICATE_REF"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}
