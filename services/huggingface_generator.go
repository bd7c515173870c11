package services

import (
	"context"
	"fmt"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/huggingface"
)

type huggingFaceGenerator struct {
	llm *huggingface.LLM
}

// NewHuggingFaceGenerator talks to the Hugging Face inference API through
// langchaingo. The default model is the one the first demo ran locally.
func NewHuggingFaceGenerator(cfg config.HuggingFaceConfig) (TextGenerator, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: hugging face token is empty", config.ErrMissingCredential)
	}

	opts := []huggingface.Option{
		huggingface.WithToken(cfg.Token),
		huggingface.WithModel(cfg.Model),
	}
	if cfg.URL != "" {
		opts = append(opts, huggingface.WithURL(cfg.URL))
	}

	llm, err := huggingface.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create hugging face client: %w", err)
	}
	return &huggingFaceGenerator{llm: llm}, nil
}

func (h *huggingFaceGenerator) Generate(ctx context.Context, prompt string, params models.DecodingParams) ([]string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	// The inference adapter ignores MaxTokens and only forwards MaxLength.
	resp, err := h.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(params.Temperature),
		llms.WithMaxLength(params.MaxNewTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("hugging face api call failed: %w", err)
	}

	candidates := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		candidates = append(candidates, choice.Content)
	}
	return candidates, nil
}
