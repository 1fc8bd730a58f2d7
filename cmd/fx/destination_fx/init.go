package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideDestinationRepository,
	ProvideDestinationService,
)

func ProvideDestinationRepository(db *gorm.DB) repositories.DestinationRepositoryInterface {
	return repositories.NewDestinationRepository(db)
}

func ProvideDestinationService(
	repo repositories.DestinationRepositoryInterface,
	store repositories.KVRepositoryInterface,
	newClient utils.AIClientFactory,
) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, store, newClient)
}
