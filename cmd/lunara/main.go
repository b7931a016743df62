package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lunara-app/lunara/internal/api"
	"github.com/lunara-app/lunara/internal/config"
	"github.com/lunara-app/lunara/internal/db"
	"github.com/lunara-app/lunara/internal/logger"
	"github.com/lunara-app/lunara/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.WithField("environment", cfg.Environment).Info("starting lunara")

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLogger.WithError(err).Fatal("open database")
	}

	repos := db.NewRepositories(database)
	authService := services.NewAuthService(repos.Users)
	cycleService := services.NewCycleService(repos.Cycles, repos.DailyLogs)
	dailyLogService := services.NewDailyLogService(repos.DailyLogs, cycleService)

	handler := api.NewHandler(authService, cycleService, dailyLogService, cfg.SecretKey, cfg.TokenTTL, appLogger)

	app := fiber.New(fiber.Config{AppName: "Lunara v0.1.0"})
	api.RegisterRoutes(app, handler)

	appLogger.WithField("addr", cfg.ListenAddr).Info("listening")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		appLogger.WithError(err).Fatal("server stopped")
	}
}
