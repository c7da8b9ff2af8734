package service

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/jjenkins/volume/internal/model"
)

const defaultModel = "gemini-1.5-flash"

// GeminiConfig holds the settings for the Gemini API client
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient is optional; tests point it at an httptest server.
	HTTPClient *http.Client
}

// GeminiClient is the AI gateway backed by Google's Gemini API.
// It is constructed once and passed to the services that need it.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
	}, nil
}

// CompleteText sends a prompt and returns the free-text reply
func (g *GeminiClient) CompleteText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}

// CompleteStructured sends a prompt constrained to a JSON response schema
func (g *GeminiClient) CompleteStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini structured generate failed: %w", err)
	}
	return resp.Text(), nil
}

// Converse sends the whole transcript with a system instruction
func (g *GeminiClient) Converse(ctx context.Context, systemInstruction string, transcript model.Transcript) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("empty transcript")
	}

	contents := make([]*genai.Content, len(transcript))
	for i, msg := range transcript {
		var role genai.Role = genai.RoleUser
		if msg.Role == model.RoleModel {
			role = genai.RoleModel
		}
		contents[i] = genai.NewContentFromText(msg.Text, role)
	}

	var config *genai.GenerateContentConfig
	if systemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}
	return resp.Text(), nil
}
