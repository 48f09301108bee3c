package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sustainable-bao-backend/internal/api/handlers"
	"sustainable-bao-backend/internal/api/routes"
	"sustainable-bao-backend/internal/middleware"
	"sustainable-bao-backend/internal/scheduler"
	"sustainable-bao-backend/internal/utils"
	"sustainable-bao-backend/internal/utils/storage"
	"sustainable-bao-backend/pkg/grocery"
	"sustainable-bao-backend/pkg/jwt"
	"sustainable-bao-backend/pkg/logger"
	"sustainable-bao-backend/pkg/recipe"
	"sustainable-bao-backend/pkg/user"
	"sustainable-bao-backend/pkg/waste"
)

func NewApp(db *gorm.DB, zapLogger *zap.Logger) (*fiber.App, *scheduler.Scheduler, error) {
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
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	wasteRepository := waste.NewWasteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	groceryService := grocery.NewGroceryService(groceryRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, groceryRepository)
	wasteService := waste.NewWasteService(wasteRepository, groceryRepository, userRepository, logger.Named(zapLogger, "waste"))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		GroceryHandler: groceryHandler,
		RecipeHandler:  recipeHandler,
		WasteHandler:   wasteHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()

	sched := scheduler.NewScheduler(wasteService, logger.Named(zapLogger, "scheduler"))

	return app, sched, nil
}
