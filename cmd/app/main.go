package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/destination_fx"
	"voyago/cmd/fx/itineraries_fx"
	"voyago/cmd/fx/planner_fx"
	"voyago/cmd/fx/store_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		fx.Provide(infra.InitPostgresql),
		store_fx.Module,
		planner_fx.Module,
		destination_fx.Module,
		itineraries_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(SeedCredential),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SeedCredential primes the store with the environment API key when the user
// has not supplied one through settings yet. Never overwrites a stored key.
func SeedCredential(store repositories.KVRepositoryInterface) {
	envKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if envKey == "" {
		return
	}

	ctx := context.Background()
	value, ok, err := store.Get(ctx, services.StoreKeyAPIKey)
	if err != nil {
		log.Printf("Could not check stored API key: %v", err)
		return
	}
	if ok && strings.TrimSpace(value) != "" {
		return
	}
	if err := store.Set(ctx, services.StoreKeyAPIKey, envKey); err != nil {
		log.Printf("Could not seed API key: %v", err)
		return
	}
	log.Println("Seeded generation API key from environment")
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	settingsController *controllers.SettingsController,
	destinationsController *controllers.DestinationsController,
	itinerariesController *controllers.ItinerariesController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, settingsController, destinationsController, itinerariesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	settingsController *controllers.SettingsController,
	destinationsController *controllers.DestinationsController,
	itinerariesController *controllers.ItinerariesController,
) {
	planner := r.Group("/planner")
	planner.GET("/interests", plannerController.InterestsHandler)
	planner.POST("/steps/validate", plannerController.ValidateStepHandler)
	planner.POST("/itineraries", plannerController.GenerateHandler)
	planner.GET("/itinerary", plannerController.ItineraryHandler)

	settings := r.Group("/settings")
	settings.GET("/api-key", settingsController.StatusHandler)
	settings.PUT("/api-key", settingsController.SaveHandler)
	settings.DELETE("/api-key", settingsController.DeleteHandler)

	destinations := r.Group("/destinations")
	destinations.GET("/suggestions", destinationsController.SuggestionsHandler)
	destinations.POST("", destinationsController.CreateHandler)

	saved := r.Group("/itineraries")
	saved.Use(middleware.JWTAuthMiddleware())
	saved.POST("", itinerariesController.SaveHandler)
	saved.GET("", itinerariesController.ListHandler)
	saved.GET("/:id", itinerariesController.GetHandler)
	saved.DELETE("/:id", itinerariesController.DeleteHandler)
}
