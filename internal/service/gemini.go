package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "medical-report-analyzer/pkg/errors"

	"cloud.google.com/go/vertexai/genai"
)

// GeminiClient is the adapter over the Vertex AI Gemini model. It makes a
// single synchronous completion per call; no streaming, no partial
// results.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates the Vertex AI client
func NewGeminiClient(ctx context.Context, projectID, location, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete sends the prompt to the model and returns its text response.
// Every provider-level failure, including an empty candidate list, is
// classified uniformly as a provider error for the retry policy.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", apperrors.NewProviderError("gemini call failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewProviderError("empty response from model", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", apperrors.NewProviderError("model returned no text parts", nil)
	}

	return sb.String(), nil
}

// Available reports whether the underlying client was initialized.
func (c *GeminiClient) Available() bool {
	return c != nil && c.client != nil
}
