package main

import (
	"context"
	"strconv"
	"time"

	"search-battle-backend/config"
	"search-battle-backend/middleware"
	"search-battle-backend/seeds"

	// Search battle
	search_controllers "search-battle-backend/search/controllers"
	search_repositories "search-battle-backend/search/repositories"
	search_routes "search-battle-backend/search/routes"
	search_services "search-battle-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	ctx := context.Background()

	// Backend clients (long-lived, shared across requests)
	db := config.ConfigureDatabase()
	esClient := config.InitElasticsearch(ctx)
	redisClient := config.InitRedisServer(ctx)

	port := config.GetEnvOrDefault("PORT", "8080")
	searchIndex := config.GetEnvOrDefault("ELASTICSEARCH_REVIEWS_INDEX", "reviews")

	timeoutSeconds, err := strconv.Atoi(config.GetEnvOrDefault("SEARCH_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		config.Logger.Fatal("SEARCH_TIMEOUT_SECONDS must be a positive integer")
	}

	// Seed the corpus into both stores when requested
	if config.GetEnv("SEED_ON_START") == "true" {
		config.Logger.Info("Starting corpus seeding...")
		if err := seeds.SeedReviews(ctx, db, esClient, searchIndex); err != nil {
			config.Logger.Error("Corpus seeding failed", zap.Error(err))
		} else {
			config.Logger.Info("Corpus seeding completed successfully")
		}
	}

	// Repositories
	reviewRepo := search_repositories.NewReviewRepository(db)
	elasticRepo := search_repositories.NewElasticRepository(esClient, searchIndex)

	// Services
	scoreboard := search_services.NewScoreboardService(redisClient, config.Logger)
	coordinator := search_services.NewSearchCoordinator(
		reviewRepo,
		elasticRepo,
		scoreboard,
		time.Duration(timeoutSeconds)*time.Second,
		config.Logger,
	)

	// Routes
	searchController := search_controllers.NewSearchController(coordinator, scoreboard, config.Logger)
	search_routes.InitSearchRoutes(app, searchController)

	// Start the application
	config.Logger.Info("Search battle server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
