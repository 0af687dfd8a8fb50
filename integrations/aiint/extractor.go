// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package aiint wraps the LLM used for SOC 2 report extraction and the
// compliance copilot. Extraction output is schema validated before anything
// is stored.
package aiint

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/doracomply/doracomply/dtos"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sashabaranov/go-openai"
)

//go:embed soc2_extraction_schema.json
var soc2SchemaJSON []byte

var soc2Schema = mustCompileSchema("soc2_extraction_schema.json", soc2SchemaJSON)

func mustCompileSchema(name string, raw []byte) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

const extractionSystemPrompt = `You are an expert SOC 2 auditor extracting structured data from a SOC 2 report.

Extract ALL controls, do not summarize or skip any. Map each control to its Trust Services Criteria (TSC) category:
CC1 control environment, CC2 communication, CC3 risk assessment, CC4 monitoring, CC5 control activities, CC6 logical and physical access, CC7 system operations, CC8 change management, CC9 risk mitigation, A availability, PI processing integrity, C confidentiality, P privacy.

Also extract the audit firm, the opinion (unqualified, qualified or adverse), the audit period, every exception, every subservice organization and every complementary user entity control (CUEC).

Respond with a single JSON object conforming exactly to the provided schema. No markdown, no commentary.`

type AIExtractor struct {
	client *openai.Client
	model  string
}

func NewAIExtractor() (*AIExtractor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &AIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// ExtractSOC2 runs the extraction prompt over the report text and validates
// the result against the embedded schema. Invalid model output is an error,
// never stored.
func (a *AIExtractor) ExtractSOC2(ctx context.Context, text string) (dtos.SOC2Extraction, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		return dtos.SOC2Extraction{}, fmt.Errorf("extraction request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return dtos.SOC2Extraction{}, fmt.Errorf("extraction returned no choices")
	}

	content := resp.Choices[0].Message.Content
	extraction, err := ParseExtraction([]byte(content))
	if err != nil {
		slog.Error("model produced invalid extraction", "err", err)
		return dtos.SOC2Extraction{}, err
	}
	return extraction, nil
}

// ParseExtraction validates raw extraction JSON against the schema and
// unmarshals it.
func ParseExtraction(raw []byte) (dtos.SOC2Extraction, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return dtos.SOC2Extraction{}, fmt.Errorf("extraction is not valid JSON: %w", err)
	}

	if err := soc2Schema.Validate(generic); err != nil {
		return dtos.SOC2Extraction{}, fmt.Errorf("extraction does not match schema: %w", err)
	}

	var extraction dtos.SOC2Extraction
	if err := json.Unmarshal(raw, &extraction); err != nil {
		return dtos.SOC2Extraction{}, err
	}
	return extraction, nil
}

// Chat answers a copilot conversation. The system prompt carries the org
// context assembled by the service layer.
func (a *AIExtractor) Chat(ctx context.Context, system string, messages []dtos.CopilotMessage) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: chatMessages,
	})
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
