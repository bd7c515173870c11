package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github/itish2003/smartcity/models"
)

// WarningMessage is returned instead of calling the model when the query is blank.
const WarningMessage = "⚠️ Please enter a question."

var ErrNoCandidates = errors.New("model returned no candidates")

// AssistantService answers citizen questions with the configured model.
type AssistantService interface {
	Ask(ctx context.Context, query string) (string, error)
}

type assistantServiceImpl struct {
	generator TextGenerator
	params    models.DecodingParams
}

// NewAssistantService binds a generator to fixed decoding parameters.
func NewAssistantService(generator TextGenerator, params models.DecodingParams) AssistantService {
	return &assistantServiceImpl{
		generator: generator,
		params:    params,
	}
}

// Ask forwards query verbatim and returns the first candidate unmodified.
func (a *assistantServiceImpl) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return WarningMessage, nil
	}

	log.Printf("SERVICE: Asking model (%d chars)", len(query))
	candidates, err := a.generator.Generate(ctx, query, a.params)
	if err != nil {
		return "", fmt.Errorf("could not generate response: %w", err)
	}
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[0], nil
}
