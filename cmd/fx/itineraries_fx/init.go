package itineraries_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideSavedItineraryRepository,
	ProvideSavedItineraryService,
)

func ProvideSavedItineraryRepository(db *gorm.DB) repositories.SavedItineraryRepositoryInterface {
	return repositories.NewSavedItineraryRepository(db)
}

func ProvideSavedItineraryService(
	repo repositories.SavedItineraryRepositoryInterface,
	itineraries services.ItineraryServiceInterface,
) services.SavedItineraryServiceInterface {
	return services.NewSavedItineraryService(repo, itineraries)
}
