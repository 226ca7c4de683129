package config

import (
	"os"
	"time"

	"github.com/doyoonear/motsulmoo/internal/api/handlers"
	"github.com/doyoonear/motsulmoo/internal/api/routes"
	"github.com/doyoonear/motsulmoo/internal/middleware"
	"github.com/doyoonear/motsulmoo/internal/utils"
	"github.com/doyoonear/motsulmoo/internal/utils/storage"
	"github.com/doyoonear/motsulmoo/pkg/analyzer"
	"github.com/doyoonear/motsulmoo/pkg/analyzer/claude"
	"github.com/doyoonear/motsulmoo/pkg/analyzer/gemini"
	"github.com/doyoonear/motsulmoo/pkg/fridge"
	"github.com/doyoonear/motsulmoo/pkg/ocr"
	"github.com/doyoonear/motsulmoo/pkg/purchase"
	"github.com/doyoonear/motsulmoo/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	textExtractor := ocr.NewGoogleVision(utils.GetConfig("GOOGLE_CLOUD_API_KEY"))
	textAnalyzer := newAnalyzer()

	// Repository
	purchaseRepository := purchase.NewPurchaseRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)

	// Service
	purchaseService := purchase.NewPurchaseService(purchaseRepository, s3, textExtractor, textAnalyzer)
	recipeService := recipe.NewRecipeService(recipeRepository, textExtractor, textAnalyzer)
	fridgeService := fridge.NewFridgeService(fridgeRepository)

	// Handler
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PurchaseHandler: purchaseHandler,
		RecipeHandler:   recipeHandler,
		FridgeHandler:   fridgeHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func newAnalyzer() analyzer.Analyzer {
	switch utils.GetConfig("ANALYZER_BACKEND") {
	case "claude":
		return claude.NewClient(
			utils.GetConfig("CLAUDE_API_KEY"),
			utils.GetConfig("CLAUDE_MODEL"),
		)
	default:
		return gemini.NewClient(
			utils.GetConfig("GEMINI_API_KEY"),
			utils.GetConfig("GEMINI_MODEL"),
		)
	}
}
