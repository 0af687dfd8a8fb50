// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package dtos

type CopilotMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type CopilotRequest struct {
	Messages []CopilotMessage `json:"messages" validate:"required,min=1,dive"`
}

type CopilotResponse struct {
	Reply string `json:"reply"`
}
