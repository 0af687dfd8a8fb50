// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/dtos"
	"github.com/doracomply/doracomply/shared"
)

type CopilotService struct {
	extractor        shared.DocumentExtractor
	vendorRepository shared.VendorRepository
	riskRepository   shared.RiskRepository
	contractRepo     shared.ContractRepository
}

func NewCopilotService(extractor shared.DocumentExtractor, vendorRepository shared.VendorRepository, riskRepository shared.RiskRepository, contractRepo shared.ContractRepository) *CopilotService {
	return &CopilotService{
		extractor:        extractor,
		vendorRepository: vendorRepository,
		riskRepository:   riskRepository,
		contractRepo:     contractRepo,
	}
}

// Chat answers a compliance question with the organization's current
// register state as context.
func (s *CopilotService) Chat(ctx context.Context, org models.Org, messages []dtos.CopilotMessage) (string, error) {
	system, err := s.systemPrompt(org)
	if err != nil {
		return "", err
	}
	return s.extractor.Chat(ctx, system, messages)
}

func (s *CopilotService) systemPrompt(org models.Org) (string, error) {
	vendors, err := s.vendorRepository.GetByOrgID(org.ID)
	if err != nil {
		return "", err
	}
	openRisks, err := s.riskRepository.GetOpenByOrgID(org.ID)
	if err != nil {
		return "", err
	}
	contracts, err := s.contractRepo.GetByOrgID(org.ID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a DORA and NIS2 compliance assistant for the organization ")
	b.WriteString(org.Name)
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "NIS2 classification: %s. Financial entity: %t. Risk tolerance: %d on the 1-25 matrix scale.\n", org.NIS2Classification, org.FinancialEntity, org.RiskTolerance)
	fmt.Fprintf(&b, "The organization manages %d vendors, %d contracts and has %d open risks.\n", len(vendors), len(contracts), len(openRisks))

	critical := 0
	for _, vendor := range vendors {
		if vendor.Criticality == "critical" {
			critical++
		}
	}
	fmt.Fprintf(&b, "%d vendors are classified as critical ICT third-party providers.\n\n", critical)

	b.WriteString("Answer questions about vendor risk, the register of information, contract provisions and DORA article coverage. Be precise and cite the relevant DORA article when applicable. If you do not know something about the organization's data, say so.")
	return b.String(), nil
}
