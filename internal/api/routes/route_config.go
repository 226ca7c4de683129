package routes

import (
	"github.com/doyoonear/motsulmoo/internal/api/handlers"
	"github.com/doyoonear/motsulmoo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	PurchaseHandler handlers.PurchaseHandler
	RecipeHandler   handlers.RecipeHandler
	FridgeHandler   handlers.FridgeHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Analyze()
	c.PurchaseReceipts()
	c.Recipes()
	c.Fridge()
	c.GuestRoute()
}

func (c *Config) Analyze() {
	api := c.App.Group("/api")
	{
		api.Post("/analyze-purchase", c.PurchaseHandler.AnalyzePurchase)
		api.Post("/analyze-receipt", c.PurchaseHandler.AnalyzeReceipt)
		api.Post("/analyze-recipe", c.RecipeHandler.AnalyzeRecipe)
	}
}

func (c *Config) PurchaseReceipts() {
	receipts := c.App.Group("/api/purchase-receipts")
	{
		receipts.Get("", c.PurchaseHandler.GetPurchaseReceipts)
		receipts.Delete("/:id", c.PurchaseHandler.DeletePurchaseReceipt)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Post("", c.RecipeHandler.SaveRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("/:id/variants", c.RecipeHandler.CreateVariant)
	}
}

func (c *Config) Fridge() {
	c.App.Get("/api/fridge-items", c.FridgeHandler.GetFridgeItems)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
