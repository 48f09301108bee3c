package routes

import (
	"github.com/gofiber/fiber/v2"

	"sustainable-bao-backend/internal/api/handlers"
	"sustainable-bao-backend/internal/middleware"
	"sustainable-bao-backend/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	GroceryHandler handlers.GroceryHandler
	RecipeHandler  handlers.RecipeHandler
	WasteHandler   handlers.WasteHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Groceries()
	c.Recipes()
	c.Calculator()
	c.Waste()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangePassword)
	}
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries", c.Middleware.AuthMiddleware(c.JWTService))

	groceries.Post("", c.GroceryHandler.AddGroceryItem)
	groceries.Get("", c.GroceryHandler.GetGroceryItems)
	groceries.Get("/:id", c.GroceryHandler.GetGroceryItemDetails)
	groceries.Put("/:id", c.GroceryHandler.UpdateGroceryItem)
	groceries.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)
	groceries.Post("/:id/image", c.GroceryHandler.UploadGroceryImage)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/recommendations", c.RecipeHandler.GetRecommendations)

	// The catalog is global, so only admins may change it.
	recipes.Post("", c.Middleware.AdminMiddleware(), c.RecipeHandler.AddRecipe)
	recipes.Delete("/:id", c.Middleware.AdminMiddleware(), c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Calculator() {
	calculator := c.App.Group("/api/v1/calculator", c.Middleware.AuthMiddleware(c.JWTService))

	calculator.Get("/:recipeId/leftovers", c.RecipeHandler.GetLeftovers)
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))

	waste.Get("/summary", c.WasteHandler.GetWasteSummary)
	waste.Get("/weekly", c.WasteHandler.GetWeeklyWaste)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())

	admin.Get("/users", c.UserHandler.GetUsers)
	admin.Delete("/users/:id", c.UserHandler.DeleteUser)
	admin.Put("/users/:id/reset-password", c.UserHandler.ResetPassword)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
