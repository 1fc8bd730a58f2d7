package store_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideKVRepository,
	ProvideSettingsService,
)

// ProvideKVRepository picks the store backend. Postgres is the default;
// STORAGE_MODE=memory runs without any handoff persistence surviving a
// restart, which is fine for local development.
func ProvideKVRepository(db *gorm.DB) repositories.KVRepositoryInterface {
	if strings.EqualFold(os.Getenv("STORAGE_MODE"), "memory") {
		log.Println("Using in-memory key-value store")
		return repositories.NewMemoryKVRepository()
	}
	return repositories.NewKVRepository(db)
}

func ProvideSettingsService(store repositories.KVRepositoryInterface) services.SettingsServiceInterface {
	return services.NewSettingsService(store)
}
