package services

import (
	"context"
	"fmt"
	"net/http"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/models"
)

// TextGenerator is a handle on a hosted text-generation model. Implementations
// are immutable after construction and safe for concurrent use.
type TextGenerator interface {
	// Generate sends prompt with the given decoding parameters and returns the
	// candidates in the order the service produced them.
	Generate(ctx context.Context, prompt string, params models.DecodingParams) ([]string, error)
}

// NewTextGenerator builds the generator for the configured provider.
func NewTextGenerator(ctx context.Context, cfg *config.Config, httpClient *http.Client) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.Gemini, httpClient)
	case config.ProviderHuggingFace:
		return NewHuggingFaceGenerator(cfg.HuggingFace)
	case config.ProviderWatsonx:
		return NewWatsonxGenerator(cfg.Watsonx, httpClient)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
