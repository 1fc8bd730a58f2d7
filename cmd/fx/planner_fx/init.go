package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClientFactory,
	ProvidePreferenceService,
	ProvideItineraryService,
)

// ProvideAIClientFactory fixes the provider and model from the environment.
// The API key is not part of the factory: the itinerary service resolves it
// from the persistence store per request.
func ProvideAIClientFactory() utils.AIClientFactory {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")
	model := os.Getenv("AI_MODEL")
	log.Printf("Using %s as the generation provider", provider)
	return utils.NewAIClientFactory(provider, model)
}

func ProvidePreferenceService() services.PreferenceServiceInterface {
	return services.NewPreferenceService()
}

func ProvideItineraryService(
	store repositories.KVRepositoryInterface,
	newClient utils.AIClientFactory,
) services.ItineraryServiceInterface {
	mode := services.ParseGenerationMode(getEnvWithDefault("GENERATION_MODE", "lenient"))
	log.Printf("Itinerary generation mode: %s", mode)
	return services.NewItineraryService(store, newClient, mode)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
