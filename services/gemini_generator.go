package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/models"

	"google.golang.org/genai"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator connects to the Gemini API. BaseURL is only set when
// talking to a proxy or a test server.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig, httpClient *http.Client) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is empty", config.ErrMissingCredential)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	log.Printf("SERVICE: Gemini client ready (model %s)", cfg.Model)

	return &geminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string, params models.DecodingParams) ([]string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.Temperature)),
		MaxOutputTokens: int32(params.MaxNewTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini api call failed: %w", err)
	}

	candidates := make([]string, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		var text strings.Builder
		if c.Content != nil {
			for _, p := range c.Content.Parts {
				if p != nil && p.Text != "" {
					text.WriteString(p.Text)
				}
			}
		}
		// Blocked candidates stay as empty strings so indices match the response.
		candidates = append(candidates, text.String())
	}
	return candidates, nil
}
