package main

import (
	"context"
	"log"

	"github.com/Freeeeeet/studybuddy/internal/app"
	"github.com/Freeeeeet/studybuddy/internal/config"
	"github.com/Freeeeeet/studybuddy/internal/controller"
	"github.com/Freeeeeet/studybuddy/internal/repository"
	"github.com/Freeeeeet/studybuddy/internal/service"
	"go.uber.org/zap"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	store, err := repository.NewStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open data store", zap.Error(err))
	}

	profiles := service.NewProfileService(store, logger)
	courses := service.NewCourseService(store, logger)
	availability := service.NewAvailabilityService(store, logger)
	matches := service.NewMatchService(store, courses, logger)
	sessions := service.NewSessionService(store, courses, availability, logger)

	logger.Sugar().Infow("Starting study buddy CLI",
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	cli := controller.NewCLI(profiles, courses, availability, matches, sessions, logger)
	if err := cli.Run(context.Background()); err != nil {
		logger.Fatal("Shell terminated", zap.Error(err))
	}
}
