package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the width of every stored embedding. The
// destinations table declares vector(768), so both providers must produce
// exactly this many values.
const EmbeddingDimensions = 768

// AIClientInterface is the outbound contract with the generation provider.
// GenerateItineraryText issues exactly one completion call and returns the
// raw text; callers own JSON extraction and parsing. GetEmbedding backs the
// destination-suggestion matching.
type AIClientInterface interface {
	GenerateItineraryText(ctx context.Context, prompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// AIClientFactory builds a client bound to a specific API key. The itinerary
// service resolves the key from the persistence store per request, so clients
// are constructed per call rather than held for the process lifetime.
type AIClientFactory func(apiKey string) (AIClientInterface, error)

// NewAIClient creates a provider client based on configuration.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// NewAIClientFactory fixes provider and model so only the key varies per call.
func NewAIClientFactory(provider, model string) AIClientFactory {
	return func(apiKey string) (AIClientInterface, error) {
		return NewAIClient(provider, apiKey, model)
	}
}
