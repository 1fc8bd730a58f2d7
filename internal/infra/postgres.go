package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

// AutoMigrate creates the store, destination and saved-itinerary tables. The
// destinations table needs the pgvector extension before the embedding
// column can exist.
func AutoMigrate(db *gorm.DB) {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Could not ensure pgvector extension: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.StoreEntry{},
		&db_models.Destination{},
		&db_models.SavedItinerary{},
	); err != nil {
		log.Fatalf("Auto-migration failed: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
