package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type DestinationServiceInterface interface {
	// SuggestByInterests embeds the interest tags and returns the nearest
	// destinations by vector distance. With no interests it falls back to a
	// rating-ordered list.
	SuggestByInterests(ctx context.Context, interests []string, limit int) ([]response_models.DestinationSuggestion, error)
	AddDestination(ctx context.Context, req request_models.DestinationRequest) (response_models.DestinationSuggestion, error)
}

func NewDestinationService(
	repo repositories.DestinationRepositoryInterface,
	store repositories.KVRepositoryInterface,
	newClient utils.AIClientFactory,
) DestinationServiceInterface {
	return &DestinationService{
		repo:      repo,
		store:     store,
		newClient: newClient,
	}
}

type DestinationService struct {
	repo      repositories.DestinationRepositoryInterface
	store     repositories.KVRepositoryInterface
	newClient utils.AIClientFactory
}

// resolveAPIKey prefers the environment key and falls back to the one the
// user stored through settings, so suggestions work in both deployments.
func (s *DestinationService) resolveAPIKey(ctx context.Context) (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}
	key, ok, err := s.store.Get(ctx, StoreKeyAPIKey)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", utils.ErrCredentialMissing
	}
	return key, nil
}

func (s *DestinationService) SuggestByInterests(ctx context.Context, interests []string, limit int) ([]response_models.DestinationSuggestion, error) {
	if limit < 1 || limit > 50 {
		limit = 6
	}

	var destinations []db_models.Destination
	if len(interests) == 0 {
		all, err := s.repo.GetAll(ctx, limit)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		destinations = all
	} else {
		embedding, err := s.embedText(ctx, strings.Join(interests, ", "))
		if err != nil {
			// Suggestions are decoration, not the core flow; degrade to the
			// rating-ordered list instead of failing the page.
			log.Printf("Interest embedding failed (%v); falling back to rating order", err)
			all, repoErr := s.repo.GetAll(ctx, limit)
			if repoErr != nil {
				return nil, utils.ErrDatabaseError
			}
			destinations = all
		} else {
			nearest, err := s.repo.GetNearest(ctx, embedding, limit)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			destinations = nearest
		}
	}

	suggestions := make([]response_models.DestinationSuggestion, 0, len(destinations))
	for _, d := range destinations {
		suggestions = append(suggestions, toSuggestion(d))
	}
	return suggestions, nil
}

func (s *DestinationService) AddDestination(ctx context.Context, req request_models.DestinationRequest) (response_models.DestinationSuggestion, error) {
	if strings.TrimSpace(req.Name) == "" {
		return response_models.DestinationSuggestion{}, fmt.Errorf("destination name is required")
	}

	embedding, err := s.embedText(ctx, embeddingText(req))
	if err != nil {
		return response_models.DestinationSuggestion{}, err
	}

	destination := db_models.Destination{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Tags:        pq.StringArray(req.Tags),
		Embedding:   embedding,
	}
	if err := s.repo.Create(ctx, &destination); err != nil {
		return response_models.DestinationSuggestion{}, utils.ErrDatabaseError
	}

	return toSuggestion(destination), nil
}

func (s *DestinationService) embedText(ctx context.Context, text string) (pgvector.Vector, error) {
	apiKey, err := s.resolveAPIKey(ctx)
	if err != nil {
		return pgvector.Vector{}, err
	}
	client, err := s.newClient(apiKey)
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("%w: %v", utils.ErrProviderTransport, err)
	}
	defer client.Close()
	return client.GetEmbedding(ctx, text)
}

func embeddingText(req request_models.DestinationRequest) string {
	parts := []string{req.Name, req.Country, req.Description}
	if len(req.Tags) > 0 {
		parts = append(parts, strings.Join(req.Tags, ", "))
	}
	return strings.Join(parts, ". ")
}

func toSuggestion(d db_models.Destination) response_models.DestinationSuggestion {
	return response_models.DestinationSuggestion{
		ID:          d.ID.String(),
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Rating:      d.Rating,
		Tags:        []string(d.Tags),
	}
}
