package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tasktracker-webui/config"
	_ "tasktracker-webui/docs" // Swagger docs
	"tasktracker-webui/internal/httpserver"
	"tasktracker-webui/internal/middleware"
	formHTTP "tasktracker-webui/internal/task/delivery/http"
	"tasktracker-webui/internal/task/repository/tracker"
	"tasktracker-webui/internal/task/usecase"
	"tasktracker-webui/pkg/datetime"
	"tasktracker-webui/pkg/log"
)

// @title       TaskTracker WebUI
// @description Single-page form for adding tasks to a TaskTracker instance.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, OS env vars win either way)
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskTracker WebUI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Tracker endpoint: %s", cfg.Tracker.AddTaskURL())

	// 3. Task form domain
	trackerClient := tracker.NewClient(cfg.Tracker.AddTaskURL(), cfg.Tracker.InsecureSkipVerify)
	taskRepo := tracker.New(trackerClient, logger)

	composer, err := datetime.NewComposer(cfg.Form.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to server local time: %v", cfg.Form.Timezone, err)
		composer, _ = datetime.NewComposer("")
	}

	taskUC := usecase.New(logger, taskRepo, composer)
	formHandler := formHTTP.New(logger, taskUC)

	// 4. HTTP Server
	mw := middleware.New(logger, cfg)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		TemplateGlob: cfg.HTTPServer.TemplateGlob,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		Middleware:   mw,
		FormHandler:  formHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
