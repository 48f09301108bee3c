package main

import (
	"go.uber.org/zap"

	"sustainable-bao-backend/cmd/config"
	migration "sustainable-bao-backend/cmd/database/migrate"
	"sustainable-bao-backend/internal/utils"
	"sustainable-bao-backend/pkg/logger"
)

func main() {
	utils.LoadConfig()

	zapLogger := logger.Must(logger.New())
	defer zapLogger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		zapLogger.Fatal("failed connecting to database", zap.Error(err))
	}

	if err := migration.Migrate(db); err != nil {
		zapLogger.Fatal("failed migrating database", zap.Error(err))
	}

	app, sched, err := config.NewApp(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed setting up app", zap.Error(err))
	}

	sched.Start()

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}

	if err := app.Listen(":" + port); err != nil {
		sched.Stop()
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	sched.Stop()
}
